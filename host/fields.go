package host

// FieldFunc is a host call that fills out and returns the signed result
// code. Accessor packages capture the field id, slot handle or locator in a
// closure and let the helpers below apply the decoding discipline.
type FieldFunc func(out []byte) int32

// ReadFixed drives call for a fixed-width field: the host must write exactly
// len(out) bytes or the read fails.
func ReadFixed(call FieldFunc, out []byte) error {
	code := call(out)
	_, err := DecodeExpected(code, int32(len(out)), func() struct{} { return struct{}{} })
	return err
}

// ReadFixedOptional is the optional variant of ReadFixed. It reports whether
// the field was present; an absent field leaves out untouched.
func ReadFixedOptional(call FieldFunc, out []byte) (bool, error) {
	code := call(out)
	_, ok, err := DecodeExpectedOptional(code, int32(len(out)), func() struct{} { return struct{}{} })
	return ok, err
}

// ReadVar drives call for a variable-width field and returns the byte count
// the host wrote. Zero means "present, empty".
func ReadVar(call FieldFunc, out []byte) (int, error) {
	code := call(out)
	return Decode(code, func() int { return int(code) })
}

// ReadVarOptional is the optional variant of ReadVar. Both ErrFieldNotFound
// and a zero-length result report absence; a variable field that can be
// legitimately empty must be read with ReadVar instead.
func ReadVarOptional(call FieldFunc, out []byte) (int, bool, error) {
	code := call(out)
	n, ok, err := DecodeOptional(code, func() int { return int(code) })
	if err != nil || !ok {
		return 0, false, err
	}
	if n == 0 {
		return 0, false, nil
	}
	return n, true, nil
}
