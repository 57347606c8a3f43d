package host

import (
	"errors"
	"testing"
)

func TestErrorFromCodeCoversClosedSet(t *testing.T) {
	for code := int32(-20); code <= -1; code++ {
		err := ErrorFromCode(code)
		if err.Code() != code {
			t.Errorf("ErrorFromCode(%d).Code() = %d", code, err.Code())
		}
		if err.Error() == "" {
			t.Errorf("ErrorFromCode(%d) has empty message", code)
		}
	}
}

func TestErrorFromCodeOutOfRange(t *testing.T) {
	for _, code := range []int32{0, 1, 42, -21, -100} {
		if got := ErrorFromCode(code); got != ErrInternal {
			t.Errorf("ErrorFromCode(%d) = %v, want ErrInternal", code, got)
		}
	}
}

func TestDecode(t *testing.T) {
	built := 0
	v, err := Decode(7, func() int { built++; return 99 })
	if err != nil || v != 99 {
		t.Fatalf("Decode(7) = (%d, %v)", v, err)
	}
	if built != 1 {
		t.Fatalf("builder ran %d times, want 1", built)
	}

	// zero is success for variable fields
	v, err = Decode(0, func() int { return -1 })
	if err != nil || v != -1 {
		t.Fatalf("Decode(0) = (%d, %v)", v, err)
	}

	built = 0
	_, err = Decode(ErrFieldNotFound.Code(), func() int { built++; return 0 })
	if !errors.Is(err, ErrFieldNotFound) {
		t.Fatalf("Decode(-2) err = %v", err)
	}
	if built != 0 {
		t.Fatal("builder ran on failure")
	}
}

func TestDecodeOptional(t *testing.T) {
	v, ok, err := DecodeOptional(3, func() string { return "x" })
	if err != nil || !ok || v != "x" {
		t.Fatalf("DecodeOptional(3) = (%q, %v, %v)", v, ok, err)
	}

	v, ok, err = DecodeOptional(ErrFieldNotFound.Code(), func() string { return "x" })
	if err != nil || ok || v != "" {
		t.Fatalf("DecodeOptional(field not found) = (%q, %v, %v)", v, ok, err)
	}

	_, ok, err = DecodeOptional(ErrBufferTooSmall.Code(), func() string { return "x" })
	if ok || !errors.Is(err, ErrBufferTooSmall) {
		t.Fatalf("DecodeOptional(-3) = (_, %v, %v)", ok, err)
	}
}

func TestDecodeExpected(t *testing.T) {
	v, err := DecodeExpected(4, 4, func() uint32 { return 11 })
	if err != nil || v != 11 {
		t.Fatalf("exact match = (%d, %v)", v, err)
	}

	// wrong non-negative byte count is an ABI violation
	_, err = DecodeExpected(3, 4, func() uint32 { return 11 })
	if !errors.Is(err, ErrInternal) {
		t.Fatalf("short write err = %v, want ErrInternal", err)
	}
	_, err = DecodeExpected(5, 4, func() uint32 { return 11 })
	if !errors.Is(err, ErrInternal) {
		t.Fatalf("long write err = %v, want ErrInternal", err)
	}

	_, err = DecodeExpected(ErrSlotsFull.Code(), 4, func() uint32 { return 11 })
	if !errors.Is(err, ErrSlotsFull) {
		t.Fatalf("negative code err = %v", err)
	}
}

func TestDecodeExpectedOptional(t *testing.T) {
	v, ok, err := DecodeExpectedOptional(2, 2, func() uint16 { return 9 })
	if err != nil || !ok || v != 9 {
		t.Fatalf("exact match = (%d, %v, %v)", v, ok, err)
	}

	_, ok, err = DecodeExpectedOptional(ErrFieldNotFound.Code(), 2, func() uint16 { return 9 })
	if err != nil || ok {
		t.Fatalf("absent = (_, %v, %v)", ok, err)
	}

	_, _, err = DecodeExpectedOptional(1, 2, func() uint16 { return 9 })
	if !errors.Is(err, ErrInternal) {
		t.Fatalf("size mismatch err = %v", err)
	}
}

func TestReadVarOptionalTreatsEmptyAsAbsent(t *testing.T) {
	empty := func(out []byte) int32 { return 0 }
	n, ok, err := ReadVarOptional(empty, make([]byte, 8))
	if err != nil || ok || n != 0 {
		t.Fatalf("ReadVarOptional(empty) = (%d, %v, %v)", n, ok, err)
	}

	// the non-optional reader reports "present, empty" instead
	n, err = ReadVar(empty, make([]byte, 8))
	if err != nil || n != 0 {
		t.Fatalf("ReadVar(empty) = (%d, %v)", n, err)
	}
}

func TestReadFixed(t *testing.T) {
	fill := func(v byte, code int32) FieldFunc {
		return func(out []byte) int32 {
			for i := range out {
				out[i] = v
			}
			return code
		}
	}

	var buf [4]byte
	if err := ReadFixed(fill(0xab, 4), buf[:]); err != nil {
		t.Fatalf("ReadFixed: %v", err)
	}
	if buf != [4]byte{0xab, 0xab, 0xab, 0xab} {
		t.Fatalf("buf = %x", buf)
	}

	if err := ReadFixed(fill(0, 3), buf[:]); !errors.Is(err, ErrInternal) {
		t.Fatalf("short fixed read err = %v", err)
	}

	ok, err := ReadFixedOptional(fill(0, ErrFieldNotFound.Code()), buf[:])
	if err != nil || ok {
		t.Fatalf("ReadFixedOptional(absent) = (%v, %v)", ok, err)
	}
}
