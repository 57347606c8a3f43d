package host

import (
	"encoding/binary"

	"github.com/xrpl-wasm/xrpl-wasm-go/types"
)

// Typed readers over FieldFunc. Fixed-width scalars are little-endian in the
// host's out buffer regardless of their network-order wire form.

func ReadUInt16(call FieldFunc) (uint16, error) {
	var buf [2]byte
	code := call(buf[:])
	return DecodeExpected(code, 2, func() uint16 { return binary.LittleEndian.Uint16(buf[:]) })
}

func ReadUInt16Optional(call FieldFunc) (uint16, bool, error) {
	var buf [2]byte
	code := call(buf[:])
	return DecodeExpectedOptional(code, 2, func() uint16 { return binary.LittleEndian.Uint16(buf[:]) })
}

func ReadUInt32(call FieldFunc) (uint32, error) {
	var buf [4]byte
	code := call(buf[:])
	return DecodeExpected(code, 4, func() uint32 { return binary.LittleEndian.Uint32(buf[:]) })
}

func ReadUInt32Optional(call FieldFunc) (uint32, bool, error) {
	var buf [4]byte
	code := call(buf[:])
	return DecodeExpectedOptional(code, 4, func() uint32 { return binary.LittleEndian.Uint32(buf[:]) })
}

func ReadUInt64(call FieldFunc) (uint64, error) {
	var buf [8]byte
	code := call(buf[:])
	return DecodeExpected(code, 8, func() uint64 { return binary.LittleEndian.Uint64(buf[:]) })
}

func ReadUInt64Optional(call FieldFunc) (uint64, bool, error) {
	var buf [8]byte
	code := call(buf[:])
	return DecodeExpectedOptional(code, 8, func() uint64 { return binary.LittleEndian.Uint64(buf[:]) })
}

func ReadAccountID(call FieldFunc) (types.AccountID, error) {
	var id types.AccountID
	if err := ReadFixed(call, id[:]); err != nil {
		return types.AccountID{}, err
	}
	return id, nil
}

func ReadAccountIDOptional(call FieldFunc) (types.AccountID, bool, error) {
	var id types.AccountID
	ok, err := ReadFixedOptional(call, id[:])
	if err != nil || !ok {
		return types.AccountID{}, false, err
	}
	return id, true, nil
}

func ReadHash128(call FieldFunc) (types.Hash128, error) {
	var h types.Hash128
	if err := ReadFixed(call, h[:]); err != nil {
		return types.Hash128{}, err
	}
	return h, nil
}

func ReadHash160(call FieldFunc) (types.Hash160, error) {
	var h types.Hash160
	if err := ReadFixed(call, h[:]); err != nil {
		return types.Hash160{}, err
	}
	return h, nil
}

func ReadHash192(call FieldFunc) (types.Hash192, error) {
	var h types.Hash192
	if err := ReadFixed(call, h[:]); err != nil {
		return types.Hash192{}, err
	}
	return h, nil
}

func ReadHash256(call FieldFunc) (types.Hash256, error) {
	var h types.Hash256
	if err := ReadFixed(call, h[:]); err != nil {
		return types.Hash256{}, err
	}
	return h, nil
}

func ReadHash256Optional(call FieldFunc) (types.Hash256, bool, error) {
	var h types.Hash256
	ok, err := ReadFixedOptional(call, h[:])
	if err != nil || !ok {
		return types.Hash256{}, false, err
	}
	return h, true, nil
}

// ReadAmount reads a variable-width amount. The host writes 8 bytes for XRP
// drops and up to types.AmountSize for issued currencies and MPTs.
func ReadAmount(call FieldFunc) (types.Amount, error) {
	var a types.Amount
	n, err := ReadVar(call, a.Data[:])
	if err != nil {
		return types.Amount{}, err
	}
	a.Len = n
	return a, nil
}

func ReadAmountOptional(call FieldFunc) (types.Amount, bool, error) {
	var a types.Amount
	n, ok, err := ReadVarOptional(call, a.Data[:])
	if err != nil || !ok {
		return types.Amount{}, false, err
	}
	a.Len = n
	return a, true, nil
}
