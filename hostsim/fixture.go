// Package hostsim is a fixture-driven implementation of the host interface.
// It serves two callers: native contract tests install an Env with
// host.SetBindings, and the runner exposes the same Env to real WASM
// contracts through the host_lib module.
//
// A fixture is a JSON document holding the ledger header, the finishing
// transaction, the escrow entry under evaluation and any additional ledger
// entries addressable by keylet. Byte-valued fields are lowercase hex;
// unsigned fields are JSON numbers.
package hostsim

import (
	"encoding/hex"
	"encoding/json"
	"os"
	"strings"

	"github.com/xrpl-wasm/xrpl-wasm-go/errors"
)

// Object is one transaction or ledger entry, field name to value. Values
// are JSON numbers for unsigned fields, hex strings for byte fields, nested
// Objects and arrays of Objects for inner fields.
type Object = map[string]any

// Header carries the ledger-header values the host exposes.
type Header struct {
	Sequence        uint32   `json:"sequence"`
	ParentCloseTime uint32   `json:"parent_close_time"`
	ParentHash      string   `json:"parent_hash"`
	BaseFee         uint32   `json:"base_fee"`
	Amendments      []string `json:"amendments,omitempty"`
}

// Fixture is the parsed simulation input.
type Fixture struct {
	Ledger  Header            `json:"ledger"`
	Tx      Object            `json:"transaction"`
	Escrow  Object            `json:"escrow"`
	Entries map[string]Object `json:"entries,omitempty"`
	NFTs    map[string]string `json:"nfts,omitempty"`
}

// Parse decodes and validates a fixture document.
func Parse(data []byte) (*Fixture, error) {
	var fix Fixture
	if err := json.Unmarshal(data, &fix); err != nil {
		return nil, errors.Wrap(errors.PhaseFixture, errors.KindInvalidData, err, "decode fixture")
	}
	if err := fix.validate(); err != nil {
		return nil, err
	}
	if len(fix.Entries) > 0 {
		entries := make(map[string]Object, len(fix.Entries))
		for k, v := range fix.Entries {
			entries[strings.ToLower(k)] = v
		}
		fix.Entries = entries
	}
	return &fix, nil
}

// Load reads and parses a fixture file.
func Load(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseFixture, errors.KindNotFound, err, "read fixture")
	}
	return Parse(data)
}

func (f *Fixture) validate() error {
	if f.Tx == nil {
		return errors.FieldMissing(errors.PhaseFixture, nil, "transaction")
	}
	if f.Escrow == nil {
		return errors.FieldMissing(errors.PhaseFixture, nil, "escrow")
	}
	if f.Ledger.ParentHash != "" {
		if err := checkHex(f.Ledger.ParentHash, 32, "ledger", "parent_hash"); err != nil {
			return err
		}
	}
	for _, a := range f.Ledger.Amendments {
		if err := checkHex(a, 32, "ledger", "amendments"); err != nil {
			return err
		}
	}
	for k := range f.Entries {
		if err := checkHex(k, 34, "entries", k); err != nil {
			return err
		}
	}
	return nil
}

func checkHex(s string, wantLen int, path ...string) error {
	b, err := hex.DecodeString(s)
	if err != nil {
		return errors.InvalidData(errors.PhaseFixture, path, "malformed hex string")
	}
	if len(b) != wantLen {
		return errors.New(errors.PhaseFixture, errors.KindInvalidData).
			Path(path...).
			Detail("expected %d bytes, got %d", wantLen, len(b)).
			Build()
	}
	return nil
}

func hexBytes(s string) ([]byte, bool) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, false
	}
	return b, true
}
