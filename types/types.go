// Package types defines the fixed-size value types that cross the host ABI.
// None of them own heap memory: every type is a plain array or a bounded
// buffer paired with a length, so accessors stay allocation-free.
package types

// Sizes of the fixed-width field types, in bytes. Every fixed-width accessor
// passes exactly one of these as its expected byte count.
const (
	AccountIDSize = 20
	Hash128Size   = 16
	Hash160Size   = 20
	Hash192Size   = 24
	Hash256Size   = 32
	AmountSize    = 48
	PublicKeySize = 33
)

// Bounded buffer capacities for variable-width fields. The host enforces
// ContractDataSize as the hard cap on any blob payload.
const (
	DefaultBlobSize     = 1024
	ConditionBlobSize   = 128
	FulfillmentBlobSize = 256
	ContractDataSize    = 4096
)

// AccountID is an opaque 20-byte account identifier.
type AccountID [AccountIDSize]byte

// Hash128 is a 128-bit hash.
type Hash128 [Hash128Size]byte

// Hash160 is a 160-bit hash.
type Hash160 [Hash160Size]byte

// Hash192 is a 192-bit hash.
type Hash192 [Hash192Size]byte

// Hash256 is a 256-bit hash. Ledger object identifiers carried in memos and
// contract data are Hash256 values.
type Hash256 [Hash256Size]byte

// PublicKey is a 33-byte compressed signing key.
type PublicKey [PublicKeySize]byte

// Amount is a serialized amount field: XRP drops, IOU or MPT. The layer
// treats it as opaque bytes; compare and arithmetic go through the host
// float functions.
type Amount struct {
	Data [AmountSize]byte
	Len  int
}

// Bytes returns the serialized amount.
func (a *Amount) Bytes() []byte { return a.Data[:a.Len] }

// Blob is a bounded variable-length field payload.
type Blob struct {
	Data [DefaultBlobSize]byte
	Len  int
}

// Bytes returns the payload.
func (b *Blob) Bytes() []byte { return b.Data[:b.Len] }

// ConditionBlob holds a PREIMAGE-SHA-256 crypto-condition.
type ConditionBlob struct {
	Data [ConditionBlobSize]byte
	Len  int
}

// Bytes returns the condition bytes.
func (b *ConditionBlob) Bytes() []byte { return b.Data[:b.Len] }

// FulfillmentBlob holds a crypto-condition fulfillment.
type FulfillmentBlob struct {
	Data [FulfillmentBlobSize]byte
	Len  int
}

// Bytes returns the fulfillment bytes.
func (b *FulfillmentBlob) Bytes() []byte { return b.Data[:b.Len] }

// ContractData is the persistent Data field of an escrow. Same shape as
// Blob with the host's hard size cap.
type ContractData struct {
	Data [ContractDataSize]byte
	Len  int
}

// Bytes returns the stored data.
func (c *ContractData) Bytes() []byte { return c.Data[:c.Len] }

// SetBytes copies p into the buffer and reports false when p exceeds the
// capacity, leaving the data unchanged.
func (c *ContractData) SetBytes(p []byte) bool {
	if len(p) > ContractDataSize {
		return false
	}
	copy(c.Data[:], p)
	c.Len = len(p)
	return true
}

// TransactionType is the 16-bit transaction type code.
type TransactionType uint16

const (
	TxPayment       TransactionType = 0
	TxEscrowCreate  TransactionType = 1
	TxEscrowFinish  TransactionType = 2
	TxAccountSet    TransactionType = 3
	TxEscrowCancel  TransactionType = 4
	TxSetRegularKey TransactionType = 5
)

// LedgerEntryType is the 16-bit ledger entry type code.
type LedgerEntryType uint16

const (
	EntryAccountRoot LedgerEntryType = 0x0061
	EntryEscrow      LedgerEntryType = 0x0075
	EntryRippleState LedgerEntryType = 0x0072
	EntryOracle      LedgerEntryType = 0x0080
	EntryCredential  LedgerEntryType = 0x0081
)
