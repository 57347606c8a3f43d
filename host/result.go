package host

// The decoders below turn a signed host result code into a typed value, an
// optional typed value, or an Error. The build callback interprets the
// already-filled output buffer; it runs at most once and only on success, so
// failure paths never pay for decoding.

// Decode returns build() when code is non-negative, otherwise the Error for
// code. Zero is a legitimate success ("present, empty" for variable fields).
func Decode[T any](code int32, build func() T) (T, error) {
	if code >= 0 {
		return build(), nil
	}
	var zero T
	return zero, ErrorFromCode(code)
}

// DecodeOptional behaves like Decode but maps ErrFieldNotFound to an absent
// value instead of an error. Every other negative code remains an error.
func DecodeOptional[T any](code int32, build func() T) (T, bool, error) {
	var zero T
	switch {
	case code >= 0:
		return build(), true, nil
	case Error(code) == ErrFieldNotFound:
		return zero, false, nil
	default:
		return zero, false, ErrorFromCode(code)
	}
}

// DecodeExpected returns build() only when code equals expected. A
// non-negative code that differs from expected is an ABI violation and
// yields ErrInternal. Used for fixed-width fields, where the host must
// write exactly the declared byte count.
func DecodeExpected[T any](code, expected int32, build func() T) (T, error) {
	var zero T
	switch {
	case code == expected:
		return build(), nil
	case code >= 0:
		return zero, ErrInternal
	default:
		return zero, ErrorFromCode(code)
	}
}

// DecodeExpectedOptional combines DecodeOptional and DecodeExpected:
// ErrFieldNotFound becomes an absent value, an exact match on expected
// becomes a present value, and any other outcome is an error.
func DecodeExpectedOptional[T any](code, expected int32, build func() T) (T, bool, error) {
	var zero T
	switch {
	case code == expected:
		return build(), true, nil
	case Error(code) == ErrFieldNotFound:
		return zero, false, nil
	case code >= 0:
		return zero, false, ErrInternal
	default:
		return zero, false, ErrorFromCode(code)
	}
}
