// Package ledgerobj reads fields of a ledger object previously loaded into a
// host slot with cache_ledger_obj. Every accessor takes the slot number as
// its first argument; see keylet.Keylet.Cache for obtaining one.
package ledgerobj

import (
	"github.com/xrpl-wasm/xrpl-wasm-go/host"
	"github.com/xrpl-wasm/xrpl-wasm-go/locator"
	"github.com/xrpl-wasm/xrpl-wasm-go/types"
)

func field(slot, f int32) host.FieldFunc {
	return func(out []byte) int32 { return host.GetLedgerObjField(slot, f, out) }
}

func nested(slot int32, loc *locator.Locator) host.FieldFunc {
	return func(out []byte) int32 { return host.GetLedgerObjNestedField(slot, loc.Bytes(), out) }
}

func UInt16(slot, f int32) (uint16, error) { return host.ReadUInt16(field(slot, f)) }

func UInt32(slot, f int32) (uint32, error) { return host.ReadUInt32(field(slot, f)) }

func UInt32Optional(slot, f int32) (uint32, bool, error) {
	return host.ReadUInt32Optional(field(slot, f))
}

func UInt64(slot, f int32) (uint64, error) { return host.ReadUInt64(field(slot, f)) }

func UInt64Optional(slot, f int32) (uint64, bool, error) {
	return host.ReadUInt64Optional(field(slot, f))
}

func AccountID(slot, f int32) (types.AccountID, error) {
	return host.ReadAccountID(field(slot, f))
}

func AccountIDOptional(slot, f int32) (types.AccountID, bool, error) {
	return host.ReadAccountIDOptional(field(slot, f))
}

func Hash256(slot, f int32) (types.Hash256, error) {
	return host.ReadHash256(field(slot, f))
}

func Hash256Optional(slot, f int32) (types.Hash256, bool, error) {
	return host.ReadHash256Optional(field(slot, f))
}

func Amount(slot, f int32) (types.Amount, error) { return host.ReadAmount(field(slot, f)) }

func AmountOptional(slot, f int32) (types.Amount, bool, error) {
	return host.ReadAmountOptional(field(slot, f))
}

func Blob(slot, f int32, out []byte) (int, error) {
	return host.ReadVar(field(slot, f), out)
}

func BlobOptional(slot, f int32, out []byte) (int, bool, error) {
	return host.ReadVarOptional(field(slot, f), out)
}

func ArrayLen(slot, f int32) (int, error) {
	code := host.GetLedgerObjArrayLen(slot, f)
	return host.Decode(code, func() int { return int(code) })
}

func NestedUInt32(slot int32, loc *locator.Locator) (uint32, error) {
	if loc.IsEmpty() {
		return 0, host.ErrLocatorMalformed
	}
	return host.ReadUInt32(nested(slot, loc))
}

func NestedUInt64(slot int32, loc *locator.Locator) (uint64, error) {
	if loc.IsEmpty() {
		return 0, host.ErrLocatorMalformed
	}
	return host.ReadUInt64(nested(slot, loc))
}

func NestedAccountID(slot int32, loc *locator.Locator) (types.AccountID, error) {
	if loc.IsEmpty() {
		return types.AccountID{}, host.ErrLocatorMalformed
	}
	return host.ReadAccountID(nested(slot, loc))
}

func NestedHash256(slot int32, loc *locator.Locator) (types.Hash256, error) {
	if loc.IsEmpty() {
		return types.Hash256{}, host.ErrLocatorMalformed
	}
	return host.ReadHash256(nested(slot, loc))
}

func NestedBlob(slot int32, loc *locator.Locator, out []byte) (int, error) {
	if loc.IsEmpty() {
		return 0, host.ErrLocatorMalformed
	}
	return host.ReadVar(nested(slot, loc), out)
}

func NestedBlobOptional(slot int32, loc *locator.Locator, out []byte) (int, bool, error) {
	if loc.IsEmpty() {
		return 0, false, host.ErrLocatorMalformed
	}
	return host.ReadVarOptional(nested(slot, loc), out)
}

func NestedArrayLen(slot int32, loc *locator.Locator) (int, error) {
	if loc.IsEmpty() {
		return 0, host.ErrLocatorMalformed
	}
	code := host.GetLedgerObjNestedArrayLen(slot, loc.Bytes())
	return host.Decode(code, func() int { return int(code) })
}
