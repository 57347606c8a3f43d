// Package currenttx reads fields of the transaction being applied, the
// EscrowFinish that invoked the contract. Top-level fields are addressed by
// sfield id; nested fields inside objects and arrays take a locator path.
//
// Optional variants distinguish an absent field from a host failure. For
// variable-width fields a zero-length result also reports absence.
package currenttx

import (
	"github.com/xrpl-wasm/xrpl-wasm-go/host"
	"github.com/xrpl-wasm/xrpl-wasm-go/locator"
	"github.com/xrpl-wasm/xrpl-wasm-go/types"
)

func field(f int32) host.FieldFunc {
	return func(out []byte) int32 { return host.GetTxField(f, out) }
}

func nested(loc *locator.Locator) host.FieldFunc {
	return func(out []byte) int32 { return host.GetTxNestedField(loc.Bytes(), out) }
}

func UInt16(f int32) (uint16, error) { return host.ReadUInt16(field(f)) }

func UInt32(f int32) (uint32, error) { return host.ReadUInt32(field(f)) }

func UInt32Optional(f int32) (uint32, bool, error) { return host.ReadUInt32Optional(field(f)) }

func UInt64(f int32) (uint64, error) { return host.ReadUInt64(field(f)) }

func UInt64Optional(f int32) (uint64, bool, error) { return host.ReadUInt64Optional(field(f)) }

func AccountID(f int32) (types.AccountID, error) { return host.ReadAccountID(field(f)) }

func AccountIDOptional(f int32) (types.AccountID, bool, error) {
	return host.ReadAccountIDOptional(field(f))
}

func Hash256(f int32) (types.Hash256, error) { return host.ReadHash256(field(f)) }

func Hash256Optional(f int32) (types.Hash256, bool, error) {
	return host.ReadHash256Optional(field(f))
}

func Amount(f int32) (types.Amount, error) { return host.ReadAmount(field(f)) }

func AmountOptional(f int32) (types.Amount, bool, error) {
	return host.ReadAmountOptional(field(f))
}

// Blob copies a variable-width field into out and returns the byte count.
func Blob(f int32, out []byte) (int, error) { return host.ReadVar(field(f), out) }

func BlobOptional(f int32, out []byte) (int, bool, error) {
	return host.ReadVarOptional(field(f), out)
}

// ArrayLen returns the element count of a top-level array field.
func ArrayLen(f int32) (int, error) {
	code := host.GetTxArrayLen(f)
	return host.Decode(code, func() int { return int(code) })
}

// Nested accessors. An empty locator is rejected before reaching the host.

func NestedUInt32(loc *locator.Locator) (uint32, error) {
	if loc.IsEmpty() {
		return 0, host.ErrLocatorMalformed
	}
	return host.ReadUInt32(nested(loc))
}

func NestedAccountID(loc *locator.Locator) (types.AccountID, error) {
	if loc.IsEmpty() {
		return types.AccountID{}, host.ErrLocatorMalformed
	}
	return host.ReadAccountID(nested(loc))
}

func NestedHash256(loc *locator.Locator) (types.Hash256, error) {
	if loc.IsEmpty() {
		return types.Hash256{}, host.ErrLocatorMalformed
	}
	return host.ReadHash256(nested(loc))
}

func NestedBlob(loc *locator.Locator, out []byte) (int, error) {
	if loc.IsEmpty() {
		return 0, host.ErrLocatorMalformed
	}
	return host.ReadVar(nested(loc), out)
}

func NestedBlobOptional(loc *locator.Locator, out []byte) (int, bool, error) {
	if loc.IsEmpty() {
		return 0, false, host.ErrLocatorMalformed
	}
	return host.ReadVarOptional(nested(loc), out)
}

func NestedArrayLen(loc *locator.Locator) (int, error) {
	if loc.IsEmpty() {
		return 0, host.ErrLocatorMalformed
	}
	code := host.GetTxNestedArrayLen(loc.Bytes())
	return host.Decode(code, func() int { return int(code) })
}
