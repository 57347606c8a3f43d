package types

import (
	"bytes"
	"testing"
)

func TestContractDataSetBytes(t *testing.T) {
	var d ContractData

	if !d.SetBytes([]byte("abc")) {
		t.Fatal("SetBytes rejected small payload")
	}
	if !bytes.Equal(d.Bytes(), []byte("abc")) {
		t.Errorf("Bytes = %q", d.Bytes())
	}

	full := make([]byte, ContractDataSize)
	if !d.SetBytes(full) {
		t.Error("SetBytes rejected payload at capacity")
	}

	over := make([]byte, ContractDataSize+1)
	if d.SetBytes(over) {
		t.Error("SetBytes accepted oversized payload")
	}
	if d.Len != ContractDataSize {
		t.Errorf("Len changed on rejected write: %d", d.Len)
	}
}

func TestBlobBytesViewsLength(t *testing.T) {
	var b Blob
	copy(b.Data[:], "hello world")
	b.Len = 5
	if !bytes.Equal(b.Bytes(), []byte("hello")) {
		t.Errorf("Bytes = %q", b.Bytes())
	}
}
