package hostsim

import (
	"encoding/binary"
	"math"

	"github.com/xrpl-wasm/xrpl-wasm-go/host"
)

// opaqueFloatSize is the wire width of an opaque float value.
const opaqueFloatSize = 8

// The simulator realizes opaque floats as IEEE 754 doubles in little-endian
// byte order. Contracts treat the representation as opaque, so any faithful
// total order works; rounding modes beyond the default are accepted and
// ignored.

func floatValue(b []byte) (float64, host.Error) {
	if len(b) != opaqueFloatSize {
		return 0, host.ErrInvalidFloatInput
	}
	f := math.Float64frombits(binary.LittleEndian.Uint64(b))
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, host.ErrInvalidFloatInput
	}
	return f, 0
}

func putFloat(out []byte, f float64) int32 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fail(host.ErrInvalidFloatComputation)
	}
	if len(out) < opaqueFloatSize {
		return fail(host.ErrBufferTooSmall)
	}
	binary.LittleEndian.PutUint64(out, math.Float64bits(f))
	return opaqueFloatSize
}

func checkRounding(mode int32) bool {
	return mode >= host.RoundToNearest && mode <= host.RoundUpward
}

func (e *Env) FloatFromInt(value int64, out []byte, roundingMode int32) int32 {
	if !checkRounding(roundingMode) {
		return fail(host.ErrInvalidArgument)
	}
	return putFloat(out, float64(value))
}

func (e *Env) FloatFromUint(value, out []byte, roundingMode int32) int32 {
	if !checkRounding(roundingMode) {
		return fail(host.ErrInvalidArgument)
	}
	if len(value) != 8 {
		return fail(host.ErrInvalidFloatInput)
	}
	return putFloat(out, float64(binary.LittleEndian.Uint64(value)))
}

func (e *Env) FloatSet(exponent int32, mantissa int64, out []byte, roundingMode int32) int32 {
	if !checkRounding(roundingMode) {
		return fail(host.ErrInvalidArgument)
	}
	f := float64(mantissa) * math.Pow10(int(exponent))
	return putFloat(out, f)
}

func (e *Env) FloatCompare(a, b []byte) int32 {
	fa, errc := floatValue(a)
	if errc != 0 {
		return fail(errc)
	}
	fb, errc := floatValue(b)
	if errc != 0 {
		return fail(errc)
	}
	switch {
	case fa == fb:
		return 0
	case fa > fb:
		return 1
	default:
		return 2
	}
}

func (e *Env) floatBinop(a, b, out []byte, roundingMode int32, op func(x, y float64) float64) int32 {
	if !checkRounding(roundingMode) {
		return fail(host.ErrInvalidArgument)
	}
	fa, errc := floatValue(a)
	if errc != 0 {
		return fail(errc)
	}
	fb, errc := floatValue(b)
	if errc != 0 {
		return fail(errc)
	}
	return putFloat(out, op(fa, fb))
}

func (e *Env) FloatAdd(a, b, out []byte, roundingMode int32) int32 {
	return e.floatBinop(a, b, out, roundingMode, func(x, y float64) float64 { return x + y })
}

func (e *Env) FloatSubtract(a, b, out []byte, roundingMode int32) int32 {
	return e.floatBinop(a, b, out, roundingMode, func(x, y float64) float64 { return x - y })
}

func (e *Env) FloatMultiply(a, b, out []byte, roundingMode int32) int32 {
	return e.floatBinop(a, b, out, roundingMode, func(x, y float64) float64 { return x * y })
}

func (e *Env) FloatDivide(a, b, out []byte, roundingMode int32) int32 {
	fb, errc := floatValue(b)
	if errc != 0 {
		return fail(errc)
	}
	if fb == 0 {
		return fail(host.ErrInvalidFloatComputation)
	}
	return e.floatBinop(a, b, out, roundingMode, func(x, y float64) float64 { return x / y })
}

func (e *Env) FloatPow(a []byte, n int32, out []byte, roundingMode int32) int32 {
	if !checkRounding(roundingMode) {
		return fail(host.ErrInvalidArgument)
	}
	fa, errc := floatValue(a)
	if errc != 0 {
		return fail(errc)
	}
	return putFloat(out, math.Pow(fa, float64(n)))
}

func (e *Env) FloatRoot(a []byte, n int32, out []byte, roundingMode int32) int32 {
	if !checkRounding(roundingMode) {
		return fail(host.ErrInvalidArgument)
	}
	if n == 0 {
		return fail(host.ErrInvalidFloatComputation)
	}
	fa, errc := floatValue(a)
	if errc != 0 {
		return fail(errc)
	}
	if fa < 0 {
		return fail(host.ErrInvalidFloatComputation)
	}
	return putFloat(out, math.Pow(fa, 1/float64(n)))
}

func (e *Env) FloatLog(a, out []byte, roundingMode int32) int32 {
	if !checkRounding(roundingMode) {
		return fail(host.ErrInvalidArgument)
	}
	fa, errc := floatValue(a)
	if errc != 0 {
		return fail(errc)
	}
	if fa <= 0 {
		return fail(host.ErrInvalidFloatComputation)
	}
	return putFloat(out, math.Log10(fa))
}
