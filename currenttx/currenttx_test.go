package currenttx

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/xrpl-wasm/xrpl-wasm-go/host"
	"github.com/xrpl-wasm/xrpl-wasm-go/hostsim"
	"github.com/xrpl-wasm/xrpl-wasm-go/locator"
	"github.com/xrpl-wasm/xrpl-wasm-go/sfield"
)

const txFixture = `{
	"ledger": {"sequence": 100, "parent_close_time": 600000000},
	"transaction": {
		"TransactionType": 2,
		"Account": "1111111111111111111111111111111111111111",
		"Owner": "2222222222222222222222222222222222222222",
		"OfferSequence": 42,
		"Sequence": 9,
		"Fee": 10,
		"ComputationAllowance": 1000000,
		"Memos": [
			{"MemoData": "61626364656667"},
			{"MemoData": "ff00ff"}
		]
	},
	"escrow": {
		"Account": "1111111111111111111111111111111111111111",
		"Destination": "2222222222222222222222222222222222222222"
	}
}`

func withTx(t *testing.T, fixture string) {
	t.Helper()
	fix, err := hostsim.Parse([]byte(fixture))
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	prev := host.SetBindings(hostsim.New(fix))
	t.Cleanup(func() { host.SetBindings(prev) })
}

func TestEscrowFinishGetters(t *testing.T) {
	withTx(t, txFixture)
	tx := Finishing()

	tt, err := tx.TransactionType()
	if err != nil || tt != 2 {
		t.Errorf("TransactionType = %d, %v", tt, err)
	}

	acct, err := tx.Account()
	if err != nil {
		t.Fatalf("Account: %v", err)
	}
	for _, b := range acct {
		if b != 0x11 {
			t.Fatalf("Account = %x", acct)
		}
	}

	owner, err := tx.Owner()
	if err != nil {
		t.Fatalf("Owner: %v", err)
	}
	if owner[0] != 0x22 {
		t.Errorf("Owner = %x", owner)
	}

	seq, err := tx.OfferSequence()
	if err != nil || seq != 42 {
		t.Errorf("OfferSequence = %d, %v", seq, err)
	}

	allowance, err := tx.ComputationAllowance()
	if err != nil || allowance != 1000000 {
		t.Errorf("ComputationAllowance = %d, %v", allowance, err)
	}

	fee, err := tx.Fee()
	if err != nil {
		t.Fatalf("Fee: %v", err)
	}
	if fee.Len != 8 || binary.LittleEndian.Uint64(fee.Bytes()) != 10 {
		t.Errorf("Fee = %x", fee.Bytes())
	}
}

func TestEscrowFinishOptionalAbsent(t *testing.T) {
	withTx(t, txFixture)
	tx := Finishing()

	if _, ok, err := tx.SourceTag(); err != nil || ok {
		t.Errorf("SourceTag = present %v, err %v", ok, err)
	}
	if _, ok, err := tx.Condition(); err != nil || ok {
		t.Errorf("Condition = present %v, err %v", ok, err)
	}
	if _, ok, err := tx.Fulfillment(); err != nil || ok {
		t.Errorf("Fulfillment = present %v, err %v", ok, err)
	}
}

func TestMemoAccess(t *testing.T) {
	withTx(t, txFixture)
	tx := Finishing()

	n, err := tx.MemoCount()
	if err != nil || n != 2 {
		t.Fatalf("MemoCount = %d, %v", n, err)
	}

	var buf [64]byte
	got, err := tx.MemoData(0, buf[:])
	if err != nil {
		t.Fatalf("MemoData: %v", err)
	}
	if got != 7 || !bytes.Equal(buf[:got], []byte("abcdefg")) {
		t.Errorf("MemoData(0) = %q", buf[:got])
	}

	got, err = tx.MemoData(1, buf[:])
	if err != nil || got != 3 {
		t.Fatalf("MemoData(1) = %d, %v", got, err)
	}

	if _, err := tx.MemoData(5, buf[:]); !errors.Is(err, host.ErrIndexOutOfBounds) {
		t.Errorf("MemoData(5) err = %v", err)
	}
}

func TestMemoCountAbsentArray(t *testing.T) {
	withTx(t, `{
		"ledger": {"sequence": 1},
		"transaction": {"TransactionType": 2},
		"escrow": {}
	}`)

	n, err := Finishing().MemoCount()
	if err != nil || n != 0 {
		t.Errorf("MemoCount = %d, %v", n, err)
	}
}

func TestNestedBlobLocatorDiscipline(t *testing.T) {
	withTx(t, txFixture)

	var buf [16]byte
	var empty locator.Locator
	if _, err := NestedBlob(&empty, buf[:]); !errors.Is(err, host.ErrLocatorMalformed) {
		t.Errorf("empty locator err = %v", err)
	}

	loc := locator.New()
	loc.Pack(sfield.Memos)
	loc.PackIndex(0)
	loc.Pack(sfield.MemoData)
	n, ok, err := NestedBlobOptional(&loc, buf[:])
	if err != nil || !ok || n != 7 {
		t.Errorf("NestedBlobOptional = %d, %v, %v", n, ok, err)
	}

	loc.RepackLast(sfield.MemoType)
	if _, ok, err := NestedBlobOptional(&loc, buf[:]); err != nil || ok {
		t.Errorf("absent MemoType = present %v, err %v", ok, err)
	}
}
