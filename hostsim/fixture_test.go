package hostsim

import (
	"errors"
	"strings"
	"testing"

	xerrors "github.com/xrpl-wasm/xrpl-wasm-go/errors"
)

func TestParseLowercasesEntryKeys(t *testing.T) {
	fix, err := Parse([]byte(`{
		"ledger": {"sequence": 1},
		"transaction": {},
		"escrow": {},
		"entries": {
			"0075AABBAABBAABBAABBAABBAABBAABBAABBAABBAABBAABBAABBAABBAABBAABBAABB": {"OwnerNode": 0}
		}
	}`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(fix.Entries) != 1 {
		t.Fatalf("entries = %d", len(fix.Entries))
	}
	for k := range fix.Entries {
		if k != strings.ToLower(k) {
			t.Errorf("entry key not lowercased: %s", k)
		}
	}
}

func TestParseRejectsInvalidFixtures(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		kind xerrors.Kind
	}{
		{
			name: "not json",
			doc:  `{`,
			kind: xerrors.KindInvalidData,
		},
		{
			name: "missing transaction",
			doc:  `{"ledger": {"sequence": 1}, "escrow": {}}`,
			kind: xerrors.KindFieldMissing,
		},
		{
			name: "missing escrow",
			doc:  `{"ledger": {"sequence": 1}, "transaction": {}}`,
			kind: xerrors.KindFieldMissing,
		},
		{
			name: "short parent hash",
			doc:  `{"ledger": {"parent_hash": "abcd"}, "transaction": {}, "escrow": {}}`,
			kind: xerrors.KindInvalidData,
		},
		{
			name: "non-hex entry key",
			doc:  `{"ledger": {}, "transaction": {}, "escrow": {}, "entries": {"zz": {}}}`,
			kind: xerrors.KindInvalidData,
		},
		{
			name: "short entry key",
			doc:  `{"ledger": {}, "transaction": {}, "escrow": {}, "entries": {"0075aabb": {}}}`,
			kind: xerrors.KindInvalidData,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.doc))
			if err == nil {
				t.Fatal("Parse accepted invalid fixture")
			}
			var xe *xerrors.Error
			if !errors.As(err, &xe) {
				t.Fatalf("error type = %T", err)
			}
			if xe.Phase != xerrors.PhaseFixture || xe.Kind != tc.kind {
				t.Errorf("phase/kind = %s/%s, want fixture/%s", xe.Phase, xe.Kind, tc.kind)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("testdata/definitely-not-there.json")
	var xe *xerrors.Error
	if !errors.As(err, &xe) || xe.Kind != xerrors.KindNotFound {
		t.Fatalf("Load err = %v", err)
	}
}
