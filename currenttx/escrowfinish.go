package currenttx

import (
	"github.com/xrpl-wasm/xrpl-wasm-go/host"
	"github.com/xrpl-wasm/xrpl-wasm-go/locator"
	"github.com/xrpl-wasm/xrpl-wasm-go/sfield"
	"github.com/xrpl-wasm/xrpl-wasm-go/types"
)

// EscrowFinish exposes the fields of the finishing transaction by name. The
// zero value is ready to use; all state lives on the host side.
type EscrowFinish struct{}

// Finishing returns the current EscrowFinish transaction.
func Finishing() EscrowFinish { return EscrowFinish{} }

// Common transaction fields.

func (EscrowFinish) Account() (types.AccountID, error) {
	return AccountID(sfield.Account)
}

func (EscrowFinish) TransactionType() (uint16, error) {
	return UInt16(sfield.TransactionType)
}

func (EscrowFinish) Fee() (types.Amount, error) {
	return Amount(sfield.Fee)
}

func (EscrowFinish) Sequence() (uint32, error) {
	return UInt32(sfield.Sequence)
}

func (EscrowFinish) AccountTxnID() (types.Hash256, bool, error) {
	return Hash256Optional(sfield.AccountTxnID)
}

func (EscrowFinish) Flags() (uint32, bool, error) {
	return UInt32Optional(sfield.Flags)
}

func (EscrowFinish) LastLedgerSequence() (uint32, bool, error) {
	return UInt32Optional(sfield.LastLedgerSequence)
}

func (EscrowFinish) NetworkID() (uint32, bool, error) {
	return UInt32Optional(sfield.NetworkID)
}

func (EscrowFinish) SourceTag() (uint32, bool, error) {
	return UInt32Optional(sfield.SourceTag)
}

func (EscrowFinish) TicketSequence() (uint32, bool, error) {
	return UInt32Optional(sfield.TicketSequence)
}

func (EscrowFinish) SigningPubKey() (types.PublicKey, error) {
	var key types.PublicKey
	if err := host.ReadFixed(field(sfield.SigningPubKey), key[:]); err != nil {
		return types.PublicKey{}, err
	}
	return key, nil
}

// TxnSignature is absent on multi-signed transactions.
func (EscrowFinish) TxnSignature(out []byte) (int, bool, error) {
	return BlobOptional(sfield.TxnSignature, out)
}

// EscrowFinish-specific fields.

func (EscrowFinish) Owner() (types.AccountID, error) {
	return AccountID(sfield.Owner)
}

func (EscrowFinish) OfferSequence() (uint32, error) {
	return UInt32(sfield.OfferSequence)
}

func (EscrowFinish) ComputationAllowance() (uint32, error) {
	return UInt32(sfield.ComputationAllowance)
}

func (EscrowFinish) Condition() (types.ConditionBlob, bool, error) {
	var c types.ConditionBlob
	n, ok, err := BlobOptional(sfield.Condition, c.Data[:])
	if err != nil || !ok {
		return types.ConditionBlob{}, false, err
	}
	c.Len = n
	return c, true, nil
}

func (EscrowFinish) Fulfillment() (types.FulfillmentBlob, bool, error) {
	var f types.FulfillmentBlob
	n, ok, err := BlobOptional(sfield.Fulfillment, f.Data[:])
	if err != nil || !ok {
		return types.FulfillmentBlob{}, false, err
	}
	f.Len = n
	return f, true, nil
}

// MemoCount returns the number of attached memos, zero when the Memos array
// is absent.
func (EscrowFinish) MemoCount() (int, error) {
	n, err := ArrayLen(sfield.Memos)
	if err == host.ErrFieldNotFound {
		return 0, nil
	}
	return n, err
}

// MemoData copies the MemoData of the memo at index into out.
func (EscrowFinish) MemoData(index int, out []byte) (int, error) {
	loc := locator.New()
	loc.Pack(sfield.Memos)
	loc.PackIndex(int32(index))
	loc.Pack(sfield.MemoData)
	return NestedBlob(&loc, out)
}
