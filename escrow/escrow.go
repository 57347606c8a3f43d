// Package escrow is the named facade over the escrow ledger entry. Current
// returns the entry the contract is attached to; FromSlot wraps any escrow
// previously cached from another ledger position.
package escrow

import (
	"github.com/xrpl-wasm/xrpl-wasm-go/currentobj"
	"github.com/xrpl-wasm/xrpl-wasm-go/host"
	"github.com/xrpl-wasm/xrpl-wasm-go/ledgerobj"
	"github.com/xrpl-wasm/xrpl-wasm-go/sfield"
	"github.com/xrpl-wasm/xrpl-wasm-go/types"
)

// CurrentEscrow reads the escrow entry under evaluation. The zero value is
// ready to use.
type CurrentEscrow struct{}

// Current returns the escrow entry the executing contract belongs to.
func Current() CurrentEscrow { return CurrentEscrow{} }

func (CurrentEscrow) LedgerEntryType() (uint16, error) {
	return currentobj.UInt16(sfield.LedgerEntryType)
}

func (CurrentEscrow) Flags() (uint32, error) {
	return currentobj.UInt32(sfield.Flags)
}

// Account is the owner that funded the escrow and recovers it on cancel.
func (CurrentEscrow) Account() (types.AccountID, error) {
	return currentobj.AccountID(sfield.Account)
}

func (CurrentEscrow) Amount() (types.Amount, error) {
	return currentobj.Amount(sfield.Amount)
}

// CancelAfter is the Ripple-epoch time after which the escrow can be
// canceled, judged against the close time of the previous validated ledger.
func (CurrentEscrow) CancelAfter() (uint32, bool, error) {
	return currentobj.UInt32Optional(sfield.CancelAfter)
}

func (CurrentEscrow) Condition() (types.ConditionBlob, bool, error) {
	var c types.ConditionBlob
	n, ok, err := currentobj.BlobOptional(sfield.Condition, c.Data[:])
	if err != nil || !ok {
		return types.ConditionBlob{}, false, err
	}
	c.Len = n
	return c, true, nil
}

func (CurrentEscrow) Destination() (types.AccountID, error) {
	return currentobj.AccountID(sfield.Destination)
}

// DestinationNode is absent on escrows created before the fix1523 amendment.
func (CurrentEscrow) DestinationNode() (uint64, bool, error) {
	return currentobj.UInt64Optional(sfield.DestinationNode)
}

func (CurrentEscrow) DestinationTag() (uint32, bool, error) {
	return currentobj.UInt32Optional(sfield.DestinationTag)
}

func (CurrentEscrow) FinishAfter() (uint32, bool, error) {
	return currentobj.UInt32Optional(sfield.FinishAfter)
}

func (CurrentEscrow) OwnerNode() (uint64, error) {
	return currentobj.UInt64(sfield.OwnerNode)
}

func (CurrentEscrow) PreviousTxnID() (types.Hash256, error) {
	return currentobj.Hash256(sfield.PreviousTxnID)
}

func (CurrentEscrow) PreviousTxnLgrSeq() (uint32, error) {
	return currentobj.UInt32(sfield.PreviousTxnLgrSeq)
}

func (CurrentEscrow) SourceTag() (uint32, bool, error) {
	return currentobj.UInt32Optional(sfield.SourceTag)
}

// FinishFunction is the WASM module being executed.
func (CurrentEscrow) FinishFunction() (types.Blob, bool, error) {
	var b types.Blob
	n, ok, err := currentobj.BlobOptional(sfield.FinishFunction, b.Data[:])
	if err != nil || !ok {
		return types.Blob{}, false, err
	}
	b.Len = n
	return b, true, nil
}

// Data reads the escrow's persistent contract data. An escrow without a
// Data field yields an empty ContractData.
func (CurrentEscrow) Data() (types.ContractData, error) {
	var d types.ContractData
	n, err := currentobj.Blob(sfield.Data, d.Data[:])
	if err != nil {
		return types.ContractData{}, err
	}
	d.Len = n
	return d, nil
}

// SetData replaces the escrow's contract data. The host discards any
// previous bytes; the new length is exactly len of the stored data.
func (CurrentEscrow) SetData(d types.ContractData) error {
	code := host.UpdateData(d.Bytes())
	_, err := host.DecodeExpected(code, int32(d.Len), func() struct{} { return struct{}{} })
	return err
}

// Escrow reads an escrow entry cached in a host slot.
type Escrow struct {
	slot int32
}

// FromSlot wraps the escrow loaded into slot by cache_ledger_obj.
func FromSlot(slot int32) Escrow { return Escrow{slot: slot} }

// Slot returns the host slot backing this escrow.
func (e Escrow) Slot() int32 { return e.slot }

func (e Escrow) LedgerEntryType() (uint16, error) {
	return ledgerobj.UInt16(e.slot, sfield.LedgerEntryType)
}

func (e Escrow) Flags() (uint32, error) {
	return ledgerobj.UInt32(e.slot, sfield.Flags)
}

func (e Escrow) Account() (types.AccountID, error) {
	return ledgerobj.AccountID(e.slot, sfield.Account)
}

func (e Escrow) Amount() (types.Amount, error) {
	return ledgerobj.Amount(e.slot, sfield.Amount)
}

func (e Escrow) CancelAfter() (uint32, bool, error) {
	return ledgerobj.UInt32Optional(e.slot, sfield.CancelAfter)
}

func (e Escrow) Condition() (types.ConditionBlob, bool, error) {
	var c types.ConditionBlob
	n, ok, err := ledgerobj.BlobOptional(e.slot, sfield.Condition, c.Data[:])
	if err != nil || !ok {
		return types.ConditionBlob{}, false, err
	}
	c.Len = n
	return c, true, nil
}

func (e Escrow) Destination() (types.AccountID, error) {
	return ledgerobj.AccountID(e.slot, sfield.Destination)
}

func (e Escrow) DestinationNode() (uint64, bool, error) {
	return ledgerobj.UInt64Optional(e.slot, sfield.DestinationNode)
}

func (e Escrow) DestinationTag() (uint32, bool, error) {
	return ledgerobj.UInt32Optional(e.slot, sfield.DestinationTag)
}

func (e Escrow) FinishAfter() (uint32, bool, error) {
	return ledgerobj.UInt32Optional(e.slot, sfield.FinishAfter)
}

func (e Escrow) OwnerNode() (uint64, error) {
	return ledgerobj.UInt64(e.slot, sfield.OwnerNode)
}

func (e Escrow) PreviousTxnID() (types.Hash256, error) {
	return ledgerobj.Hash256(e.slot, sfield.PreviousTxnID)
}

func (e Escrow) PreviousTxnLgrSeq() (uint32, error) {
	return ledgerobj.UInt32(e.slot, sfield.PreviousTxnLgrSeq)
}

func (e Escrow) SourceTag() (uint32, bool, error) {
	return ledgerobj.UInt32Optional(e.slot, sfield.SourceTag)
}

func (e Escrow) Data() (types.ContractData, error) {
	var d types.ContractData
	n, err := ledgerobj.Blob(e.slot, sfield.Data, d.Data[:])
	if err != nil {
		return types.ContractData{}, err
	}
	d.Len = n
	return d, nil
}
