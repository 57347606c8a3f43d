package errors

import (
	"errors"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:    PhaseFixture,
				Kind:     KindInvalidData,
				Path:     []string{"escrow", "Condition"},
				HostCode: -11,
				Detail:   "odd-length hex string",
			},
			contains: []string{"[fixture]", "invalid_data", "escrow.Condition", "code -11", "odd-length hex string"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseHost,
				Kind:  KindInvalidInput,
			},
			contains: []string{"[host]", "invalid_input"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseRun,
				Kind:   KindTrap,
				Detail: "contract trapped",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[run]", "trap", "contract trapped", "caused by", "underlying error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !containsSubstring(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseLoad,
		Kind:  KindInvalidData,
		Cause: cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}

	// Test with errors.Unwrap
	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Phase: PhaseFixture,
		Kind:  KindFieldMissing,
		Path:  []string{"foo"},
	}

	// Same phase and kind
	if !err.Is(&Error{Phase: PhaseFixture, Kind: KindFieldMissing}) {
		t.Error("Is should match same phase and kind")
	}

	// Different phase
	if err.Is(&Error{Phase: PhaseHost, Kind: KindFieldMissing}) {
		t.Error("Is should not match different phase")
	}

	// Different kind
	if err.Is(&Error{Phase: PhaseFixture, Kind: KindInvalidData}) {
		t.Error("Is should not match different kind")
	}

	// Test with errors.Is
	target := &Error{Phase: PhaseFixture, Kind: KindFieldMissing}
	if !errors.Is(err, target) {
		t.Error("errors.Is should match")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root")
	err := New(PhaseHost, KindInvalidInput).
		Path("tx", "Fee").
		HostCode(-15).
		Cause(cause).
		Detail("expected %s, got %s", "amount", "blob").
		Build()

	if err.Phase != PhaseHost {
		t.Errorf("Phase = %v, want %v", err.Phase, PhaseHost)
	}
	if err.Kind != KindInvalidInput {
		t.Errorf("Kind = %v, want %v", err.Kind, KindInvalidInput)
	}
	if len(err.Path) != 2 || err.Path[0] != "tx" || err.Path[1] != "Fee" {
		t.Errorf("Path = %v, want [tx Fee]", err.Path)
	}
	if err.HostCode != -15 {
		t.Errorf("HostCode = %v, want -15", err.HostCode)
	}
	if !errors.Is(err.Cause, cause) {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if err.Detail != "expected amount, got blob" {
		t.Errorf("Detail = %v, want 'expected amount, got blob'", err.Detail)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	t.Run("FieldMissing", func(t *testing.T) {
		err := FieldMissing(PhaseFixture, []string{"escrow"}, "Account")
		if err.Kind != KindFieldMissing {
			t.Errorf("Kind = %v, want %v", err.Kind, KindFieldMissing)
		}
		if !containsSubstring(err.Detail, "Account") {
			t.Errorf("Detail = %v, should contain field name", err.Detail)
		}
	})

	t.Run("InvalidData", func(t *testing.T) {
		err := InvalidData(PhaseFixture, []string{"ledger"}, "bad keylet length")
		if err.Kind != KindInvalidData {
			t.Errorf("Kind = %v, want %v", err.Kind, KindInvalidData)
		}
	})

	t.Run("NotFound", func(t *testing.T) {
		err := NotFound(PhaseRun, "export", "finish")
		if err.Kind != KindNotFound {
			t.Errorf("Kind = %v, want %v", err.Kind, KindNotFound)
		}
	})

	t.Run("Trap", func(t *testing.T) {
		err := Trap(errors.New("unreachable"))
		if err.Kind != KindTrap {
			t.Errorf("Kind = %v, want %v", err.Kind, KindTrap)
		}
		if err.Phase != PhaseRun {
			t.Errorf("Phase = %v, want %v", err.Phase, PhaseRun)
		}
	})
}

func TestMissingImportsError(t *testing.T) {
	t.Run("single import", func(t *testing.T) {
		err := NewMissingImportsError([]string{"host_lib#get_ledger_sqn"})
		if len(err.Imports) != 1 {
			t.Errorf("expected 1 import, got %d", len(err.Imports))
		}
		if err.Imports[0].Namespace != "host_lib" {
			t.Errorf("namespace = %q, want host_lib", err.Imports[0].Namespace)
		}
		if err.Imports[0].Function != "get_ledger_sqn" {
			t.Errorf("function = %q, want get_ledger_sqn", err.Imports[0].Function)
		}
	})

	t.Run("multiple imports same namespace", func(t *testing.T) {
		err := NewMissingImportsError([]string{
			"host_lib#get_tx_field",
			"host_lib#update_data",
		})
		if len(err.Imports) != 2 {
			t.Errorf("expected 2 imports, got %d", len(err.Imports))
		}

		msg := err.Error()
		if !containsSubstring(msg, "missing") {
			t.Errorf("error should contain 'missing'")
		}
		if !containsSubstring(msg, "2") {
			t.Errorf("error should contain count")
		}
		if !containsSubstring(msg, "host_lib") {
			t.Errorf("error should contain namespace")
		}
		if !containsSubstring(msg, "get_tx_field") {
			t.Errorf("error should contain function name")
		}
	})

	t.Run("multiple namespaces grouped", func(t *testing.T) {
		err := NewMissingImportsError([]string{
			"host_lib#get_tx_field",
			"wasi_snapshot_preview1#fd_write",
			"host_lib#trace",
		})
		msg := err.Error()
		// Verify grouping by namespace
		if !containsSubstring(msg, "host_lib:") {
			t.Errorf("error should group by namespace")
		}
		if !containsSubstring(msg, "wasi_snapshot_preview1:") {
			t.Errorf("error should contain second namespace")
		}
	})

	t.Run("empty imports", func(t *testing.T) {
		err := NewMissingImportsError([]string{})
		msg := err.Error()
		if !containsSubstring(msg, "no imports specified") {
			t.Errorf("empty error should have specific message, got: %s", msg)
		}
	})

	t.Run("errors.Is", func(t *testing.T) {
		err := NewMissingImportsError([]string{"ns#fn"})
		if !errors.Is(err, &MissingImportsError{}) {
			t.Error("errors.Is should match MissingImportsError")
		}
	})
}

func containsSubstring(s, substr string) bool {
	return len(s) >= len(substr) && (s == substr || len(substr) == 0 ||
		(len(s) > 0 && containsSubstringHelper(s, substr)))
}

func containsSubstringHelper(s, substr string) bool {
	for i := 0; i <= len(s)-len(substr); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}
