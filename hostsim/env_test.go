package hostsim

import (
	"bytes"
	"crypto/ed25519"
	"crypto/sha512"
	"encoding/binary"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/xrpl-wasm/xrpl-wasm-go/host"
	"github.com/xrpl-wasm/xrpl-wasm-go/locator"
	"github.com/xrpl-wasm/xrpl-wasm-go/sfield"
)

const envFixture = `{
	"ledger": {
		"sequence": 12345,
		"parent_close_time": 600000000,
		"parent_hash": "` + parentHashHex + `",
		"base_fee": 10,
		"amendments": ["` + amendmentHex + `"]
	},
	"transaction": {
		"TransactionType": 2,
		"Account": "1111111111111111111111111111111111111111",
		"Sequence": 7,
		"Memos": [{"MemoData": "61626364656667"}]
	},
	"escrow": {
		"Account": "1111111111111111111111111111111111111111",
		"Destination": "2222222222222222222222222222222222222222",
		"Balance": {"OwnerCount": 3}
	},
	"entries": {
		"0075eeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeee": {
			"LedgerEntryType": 117,
			"CancelAfter": 800000000
		}
	}
}`

const (
	parentHashHex = "ab" + "00000000000000000000000000000000000000000000000000000000000000"
	amendmentHex  = "cd" + "00000000000000000000000000000000000000000000000000000000000000"
)

func newEnv(t *testing.T) *Env {
	t.Helper()
	fix, err := Parse([]byte(envFixture))
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	return New(fix)
}

func TestLedgerHeaderAccess(t *testing.T) {
	env := newEnv(t)

	if got := env.GetLedgerSqn(); got != 12345 {
		t.Errorf("GetLedgerSqn = %d", got)
	}
	if got := env.GetParentLedgerTime(); got != 600000000 {
		t.Errorf("GetParentLedgerTime = %d", got)
	}
	if got := env.GetBaseFee(); got != 10 {
		t.Errorf("GetBaseFee = %d", got)
	}

	var hash [32]byte
	if got := env.GetParentLedgerHash(hash[:]); got != 32 {
		t.Fatalf("GetParentLedgerHash = %d", got)
	}
	if hash[0] != 0xab {
		t.Errorf("parent hash = %x", hash)
	}

	var short [16]byte
	if got := env.GetParentLedgerHash(short[:]); got != host.ErrBufferTooSmall.Code() {
		t.Errorf("short buffer = %d", got)
	}
}

func TestAmendmentEnabled(t *testing.T) {
	env := newEnv(t)

	enabled, _ := hex.DecodeString(amendmentHex)
	if got := env.AmendmentEnabled(enabled); got != 1 {
		t.Errorf("enabled amendment = %d", got)
	}

	other := make([]byte, 32)
	if got := env.AmendmentEnabled(other); got != 0 {
		t.Errorf("unknown amendment = %d", got)
	}
	if got := env.AmendmentEnabled(other[:10]); got != host.ErrInvalidArgument.Code() {
		t.Errorf("short amendment = %d", got)
	}
}

func TestTxFieldAccess(t *testing.T) {
	env := newEnv(t)

	var buf [64]byte
	n := env.GetTxField(sfield.Sequence, buf[:])
	if n != 4 || binary.LittleEndian.Uint32(buf[:4]) != 7 {
		t.Errorf("Sequence read = %d, %x", n, buf[:4])
	}

	if got := env.GetTxField(sfield.SourceTag, buf[:]); got != host.ErrFieldNotFound.Code() {
		t.Errorf("absent field = %d", got)
	}
	if got := env.GetTxField(-99, buf[:]); got != host.ErrInvalidField.Code() {
		t.Errorf("unknown field = %d", got)
	}
	if got := env.GetTxField(sfield.Memos, buf[:]); got != host.ErrNotLeafField.Code() {
		t.Errorf("array field = %d", got)
	}
	if got := env.GetTxField(sfield.Account, buf[:2]); got != host.ErrBufferTooSmall.Code() {
		t.Errorf("short buffer = %d", got)
	}

	if got := env.GetTxArrayLen(sfield.Memos); got != 1 {
		t.Errorf("Memos len = %d", got)
	}
	if got := env.GetTxArrayLen(sfield.Sequence); got != host.ErrNoArray.Code() {
		t.Errorf("scalar array len = %d", got)
	}
}

func TestNestedFieldAccess(t *testing.T) {
	env := newEnv(t)

	loc := locator.New()
	loc.Pack(sfield.Memos)
	loc.PackIndex(0)
	loc.Pack(sfield.MemoData)

	var buf [32]byte
	n := env.GetTxNestedField(loc.Bytes(), buf[:])
	if n != 7 || !bytes.Equal(buf[:7], []byte("abcdefg")) {
		t.Errorf("nested read = %d, %q", n, buf[:n])
	}

	loc.RepackLast(sfield.MemoType)
	if got := env.GetTxNestedField(loc.Bytes(), buf[:]); got != host.ErrFieldNotFound.Code() {
		t.Errorf("absent nested = %d", got)
	}

	bad := locator.New()
	bad.Pack(sfield.Memos)
	bad.PackIndex(5)
	bad.Pack(sfield.MemoData)
	if got := env.GetTxNestedField(bad.Bytes(), buf[:]); got != host.ErrIndexOutOfBounds.Code() {
		t.Errorf("out of range index = %d", got)
	}

	if got := env.GetTxNestedField(nil, buf[:]); got != host.ErrLocatorMalformed.Code() {
		t.Errorf("empty locator = %d", got)
	}
	if got := env.GetTxNestedField([]byte{1, 2, 3}, buf[:]); got != host.ErrLocatorMalformed.Code() {
		t.Errorf("ragged locator = %d", got)
	}
}

func TestVector256FieldAccess(t *testing.T) {
	fix, err := Parse([]byte(`{
		"ledger": {"sequence": 1},
		"transaction": {
			"TransactionType": 2,
			"CredentialIDs": [
				"` + strings.Repeat("ab", 32) + `",
				"` + strings.Repeat("cd", 32) + `"
			]
		},
		"escrow": {}
	}`))
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	env := New(fix)

	if got := env.GetTxArrayLen(sfield.CredentialIDs); got != 2 {
		t.Errorf("CredentialIDs len = %d", got)
	}

	var buf [64]byte
	if got := env.GetTxField(sfield.CredentialIDs, buf[:]); got != host.ErrNotLeafField.Code() {
		t.Errorf("direct leaf read = %d", got)
	}

	loc := locator.New()
	loc.Pack(sfield.CredentialIDs)
	loc.PackIndex(1)
	n := env.GetTxNestedField(loc.Bytes(), buf[:])
	if n != 32 {
		t.Fatalf("element read = %d", n)
	}
	for _, b := range buf[:32] {
		if b != 0xcd {
			t.Fatalf("element bytes = %x", buf[:32])
		}
	}
}

func TestSlotCache(t *testing.T) {
	env := newEnv(t)

	keylet, _ := hex.DecodeString("0075" + strings.Repeat("ee", 32))

	slot := env.CacheLedgerObj(keylet, 0)
	if slot < 1 {
		t.Fatalf("auto slot = %d", slot)
	}

	// bare 32-byte index resolves by suffix
	if got := env.CacheLedgerObj(keylet[2:], 0); got < 1 {
		t.Errorf("index lookup = %d", got)
	}

	if got := env.CacheLedgerObj(keylet, 42); got != 42 {
		t.Errorf("explicit slot = %d", got)
	}

	var buf [8]byte
	n := env.GetLedgerObjField(42, sfield.CancelAfter, buf[:])
	if n != 4 || binary.LittleEndian.Uint32(buf[:4]) != 800000000 {
		t.Errorf("slot field read = %d, %x", n, buf[:4])
	}

	if got := env.CacheLedgerObj(keylet, slotCount+1); got != host.ErrSlotOutOfRange.Code() {
		t.Errorf("slot out of range = %d", got)
	}
	if got := env.CacheLedgerObj(keylet[:10], 0); got != host.ErrInvalidArgument.Code() {
		t.Errorf("bad keylet length = %d", got)
	}

	missing := make([]byte, 34)
	if got := env.CacheLedgerObj(missing, 0); got != host.ErrLedgerObjNotFound.Code() {
		t.Errorf("missing entry = %d", got)
	}

	if got := env.GetLedgerObjField(99, sfield.CancelAfter, buf[:]); got != host.ErrEmptySlot.Code() {
		t.Errorf("empty slot read = %d", got)
	}
	if got := env.GetLedgerObjField(-1, sfield.CancelAfter, buf[:]); got != host.ErrSlotOutOfRange.Code() {
		t.Errorf("negative slot read = %d", got)
	}
}

func TestUpdateData(t *testing.T) {
	env := newEnv(t)

	payload := []byte("state v1")
	if got := env.UpdateData(payload); got != int32(len(payload)) {
		t.Fatalf("UpdateData = %d", got)
	}
	if !bytes.Equal(env.UpdatedData(), payload) {
		t.Errorf("UpdatedData = %q", env.UpdatedData())
	}

	huge := make([]byte, 4097)
	if got := env.UpdateData(huge); got != host.ErrDataFieldTooLarge.Code() {
		t.Errorf("oversized UpdateData = %d", got)
	}
}

func TestComputeSha512Half(t *testing.T) {
	env := newEnv(t)

	msg := []byte("hello")
	var out [32]byte
	if got := env.ComputeSha512Half(msg, out[:]); got != 32 {
		t.Fatalf("ComputeSha512Half = %d", got)
	}
	sum := sha512.Sum512(msg)
	if !bytes.Equal(out[:], sum[:32]) {
		t.Errorf("digest mismatch")
	}

	var short [16]byte
	if got := env.ComputeSha512Half(msg, short[:]); got != host.ErrBufferTooSmall.Code() {
		t.Errorf("short digest buffer = %d", got)
	}
}

func TestCheckSig(t *testing.T) {
	env := newEnv(t)

	pub, priv, err := ed25519.GenerateKey(nil)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}
	msg := []byte("signed payload")
	sig := ed25519.Sign(priv, msg)
	key := append([]byte{0xED}, pub...)

	if got := env.CheckSig(msg, sig, key); got != 1 {
		t.Errorf("valid signature = %d", got)
	}
	if got := env.CheckSig([]byte("other payload"), sig, key); got != 0 {
		t.Errorf("wrong message = %d", got)
	}

	secpKey := append([]byte{0x02}, pub...)
	if got := env.CheckSig(msg, sig, secpKey); got != 0 {
		t.Errorf("non-ed25519 key = %d", got)
	}
}

func TestTraceCapture(t *testing.T) {
	env := newEnv(t)

	env.Trace([]byte("hello"), []byte("world"), 0)
	env.TraceNum([]byte("count"), 42)

	traces := env.Traces()
	if len(traces) != 2 {
		t.Fatalf("traces = %d", len(traces))
	}
	if traces[0].Message != "hello" || !bytes.Equal(traces[0].Data, []byte("world")) {
		t.Errorf("trace[0] = %+v", traces[0])
	}
	if !traces[1].HasNum || traces[1].Number != 42 {
		t.Errorf("trace[1] = %+v", traces[1])
	}
}
