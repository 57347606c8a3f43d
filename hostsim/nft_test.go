package hostsim

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"testing"

	"github.com/xrpl-wasm/xrpl-wasm-go/host"
)

func nftID() []byte {
	id := make([]byte, 32)
	binary.BigEndian.PutUint16(id[0:2], 0x0008)  // flags
	binary.BigEndian.PutUint16(id[2:4], 314)     // transfer fee
	for i := 4; i < 24; i++ {                    // issuer
		id[i] = 0x5a
	}
	binary.BigEndian.PutUint32(id[24:28], 146810) // taxon
	binary.BigEndian.PutUint32(id[28:32], 91)     // serial
	return id
}

func nftEnv(t *testing.T, id []byte) *Env {
	t.Helper()
	fix, err := Parse([]byte(`{"ledger":{"sequence":1},"transaction":{},"escrow":{}}`))
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	fix.NFTs = map[string]string{
		hex.EncodeToString(id): hex.EncodeToString([]byte("ipfs://metadata")),
	}
	return New(fix)
}

func TestNFTMetadataFromID(t *testing.T) {
	id := nftID()
	env := nftEnv(t, id)

	if got := env.GetNFTFlags(id); got != 0x0008 {
		t.Errorf("flags = %d", got)
	}
	if got := env.GetNFTTransferFee(id); got != 314 {
		t.Errorf("transfer fee = %d", got)
	}

	var issuer [20]byte
	if got := env.GetNFTIssuer(id, issuer[:]); got != 20 {
		t.Fatalf("issuer = %d", got)
	}
	if issuer[0] != 0x5a || issuer[19] != 0x5a {
		t.Errorf("issuer bytes = %x", issuer)
	}

	var word [4]byte
	if got := env.GetNFTTaxon(id, word[:]); got != 4 {
		t.Fatalf("taxon = %d", got)
	}
	if binary.LittleEndian.Uint32(word[:]) != 146810 {
		t.Errorf("taxon value = %d", binary.LittleEndian.Uint32(word[:]))
	}

	if got := env.GetNFTSerial(id, word[:]); got != 4 {
		t.Fatalf("serial = %d", got)
	}
	if binary.LittleEndian.Uint32(word[:]) != 91 {
		t.Errorf("serial value = %d", binary.LittleEndian.Uint32(word[:]))
	}
}

func TestNFTURILookup(t *testing.T) {
	id := nftID()
	env := nftEnv(t, id)

	owner := make([]byte, 20)
	var uri [64]byte
	n := env.GetNFT(owner, id, uri[:])
	if n <= 0 || !bytes.Equal(uri[:n], []byte("ipfs://metadata")) {
		t.Fatalf("GetNFT = %d, %q", n, uri[:n])
	}

	unknown := make([]byte, 32)
	if got := env.GetNFT(owner, unknown, uri[:]); got != host.ErrFieldNotFound.Code() {
		t.Errorf("unknown id = %d", got)
	}
	if got := env.GetNFT(owner, id[:16], uri[:]); got != host.ErrInvalidArgument.Code() {
		t.Errorf("short id = %d", got)
	}
	if got := env.GetNFT(owner[:5], id, uri[:]); got != host.ErrInvalidAccount.Code() {
		t.Errorf("bad account = %d", got)
	}
}
