package locator

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func TestPackRoundTrip(t *testing.T) {
	var l Locator
	fields := []int32{983064, 0, 196631}
	for _, f := range fields {
		if !l.Pack(f) {
			t.Fatalf("Pack(%d) failed", f)
		}
	}

	if l.Len() != SlotSize*len(fields) {
		t.Fatalf("Len() = %d, want %d", l.Len(), SlotSize*len(fields))
	}

	want := make([]byte, 0, SlotSize*len(fields))
	for _, f := range fields {
		var slot [SlotSize]byte
		binary.LittleEndian.PutUint32(slot[:], uint32(f))
		want = append(want, slot[:]...)
	}
	if !bytes.Equal(l.Bytes(), want) {
		t.Fatalf("Bytes() = %x, want %x", l.Bytes(), want)
	}
}

func TestPackOverflow(t *testing.T) {
	var l Locator
	for i := 0; i < BufferSize/SlotSize; i++ {
		if !l.Pack(int32(i)) {
			t.Fatalf("Pack %d failed before capacity", i)
		}
	}
	snapshot := append([]byte(nil), l.Bytes()...)

	if l.Pack(99) {
		t.Fatal("Pack succeeded past capacity")
	}
	if l.Len() != BufferSize {
		t.Fatalf("Len() changed to %d", l.Len())
	}
	if !bytes.Equal(l.Bytes(), snapshot) {
		t.Fatal("buffer changed on failed Pack")
	}
}

func TestRepackLast(t *testing.T) {
	var l Locator
	if l.RepackLast(1) {
		t.Fatal("RepackLast succeeded on empty locator")
	}

	l.Pack(10)
	l.PackIndex(2)
	l.Pack(20)
	n := l.Len()

	if !l.RepackLast(30) {
		t.Fatal("RepackLast failed")
	}
	if l.Len() != n {
		t.Fatalf("Len() changed: %d -> %d", n, l.Len())
	}
	last := l.Bytes()[l.Len()-SlotSize:]
	if binary.LittleEndian.Uint32(last) != 30 {
		t.Fatalf("last slot = %x", last)
	}
}

func TestReset(t *testing.T) {
	var l Locator
	l.Pack(1)
	l.Reset()
	if !l.IsEmpty() || l.Len() != 0 {
		t.Fatal("Reset did not empty the locator")
	}
}
