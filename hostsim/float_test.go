package hostsim

import (
	"testing"

	"github.com/xrpl-wasm/xrpl-wasm-go/host"
)

func floatEnv(t *testing.T) *Env {
	t.Helper()
	fix, err := Parse([]byte(`{"ledger":{"sequence":1},"transaction":{},"escrow":{}}`))
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	return New(fix)
}

func mustFloat(t *testing.T, env *Env, value int64) []byte {
	t.Helper()
	out := make([]byte, 8)
	if got := env.FloatFromInt(value, out, host.RoundToNearest); got != 8 {
		t.Fatalf("FloatFromInt(%d) = %d", value, got)
	}
	return out
}

func TestFloatCompare(t *testing.T) {
	env := floatEnv(t)

	two := mustFloat(t, env, 2)
	three := mustFloat(t, env, 3)

	tests := []struct {
		name string
		a, b []byte
		want int32
	}{
		{"equal", two, two, 0},
		{"greater", three, two, 1},
		{"less", two, three, 2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := env.FloatCompare(tc.a, tc.b); got != tc.want {
				t.Errorf("FloatCompare = %d, want %d", got, tc.want)
			}
		})
	}

	if got := env.FloatCompare(two[:4], three); got != host.ErrInvalidFloatInput.Code() {
		t.Errorf("truncated operand = %d", got)
	}
}

func TestFloatArithmetic(t *testing.T) {
	env := floatEnv(t)

	six := mustFloat(t, env, 6)
	two := mustFloat(t, env, 2)
	out := make([]byte, 8)

	if got := env.FloatAdd(six, two, out, host.RoundToNearest); got != 8 {
		t.Fatalf("FloatAdd = %d", got)
	}
	if env.FloatCompare(out, mustFloat(t, env, 8)) != 0 {
		t.Error("6 + 2 != 8")
	}

	if got := env.FloatDivide(six, two, out, host.RoundToNearest); got != 8 {
		t.Fatalf("FloatDivide = %d", got)
	}
	if env.FloatCompare(out, mustFloat(t, env, 3)) != 0 {
		t.Error("6 / 2 != 3")
	}

	zero := mustFloat(t, env, 0)
	if got := env.FloatDivide(six, zero, out, host.RoundToNearest); got != host.ErrInvalidFloatComputation.Code() {
		t.Errorf("divide by zero = %d", got)
	}
}

func TestFloatSet(t *testing.T) {
	env := floatEnv(t)

	out := make([]byte, 8)
	if got := env.FloatSet(2, 3, out, host.RoundToNearest); got != 8 {
		t.Fatalf("FloatSet = %d", got)
	}
	if env.FloatCompare(out, mustFloat(t, env, 300)) != 0 {
		t.Error("3e2 != 300")
	}

	if got := env.FloatSet(0, 1, out, 99); got != host.ErrInvalidArgument.Code() {
		t.Errorf("bad rounding mode = %d", got)
	}
}

func TestFloatRootAndLog(t *testing.T) {
	env := floatEnv(t)

	out := make([]byte, 8)
	nine := mustFloat(t, env, 9)

	if got := env.FloatRoot(nine, 2, out, host.RoundToNearest); got != 8 {
		t.Fatalf("FloatRoot = %d", got)
	}
	if env.FloatCompare(out, mustFloat(t, env, 3)) != 0 {
		t.Error("sqrt(9) != 3")
	}
	if got := env.FloatRoot(nine, 0, out, host.RoundToNearest); got != host.ErrInvalidFloatComputation.Code() {
		t.Errorf("zeroth root = %d", got)
	}
	if got := env.FloatRoot(mustFloat(t, env, -4), 2, out, host.RoundToNearest); got != host.ErrInvalidFloatComputation.Code() {
		t.Errorf("root of negative = %d", got)
	}

	if got := env.FloatLog(mustFloat(t, env, 1000), out, host.RoundToNearest); got != 8 {
		t.Fatalf("FloatLog = %d", got)
	}
	if env.FloatCompare(out, mustFloat(t, env, 3)) != 0 {
		t.Error("log10(1000) != 3")
	}
	if got := env.FloatLog(mustFloat(t, env, 0), out, host.RoundToNearest); got != host.ErrInvalidFloatComputation.Code() {
		t.Errorf("log of zero = %d", got)
	}
}
