package host

// DataRepr selects how the host renders traced bytes.
type DataRepr int32

const (
	// AsUTF8 renders the data as text.
	AsUTF8 DataRepr = 0
	// AsHex renders the data as a hex string.
	AsHex DataRepr = 1
)

// The trace functions are fire-and-forget diagnostic sinks. Return codes are
// documented as ignorable; they are surfaced only so callers can assert on
// them in tests.

// Trace emits a log message.
func Trace(msg string) int32 {
	return rawTrace([]byte(msg), nil, int32(AsUTF8))
}

// TraceData emits a message together with arbitrary bytes in the chosen
// representation.
func TraceData(msg string, data []byte, repr DataRepr) int32 {
	return rawTrace([]byte(msg), data, int32(repr))
}

// TraceNum emits a message together with a number.
func TraceNum(msg string, number int64) int32 {
	return rawTraceNum([]byte(msg), number)
}

// TraceAccount emits a message together with a 20-byte account identifier.
func TraceAccount(msg string, account []byte) int32 {
	return rawTraceAccount([]byte(msg), account)
}

// TraceAmount emits a message together with a serialized amount.
func TraceAmount(msg string, amount []byte) int32 {
	return rawTraceAmount([]byte(msg), amount)
}

// TraceFloat emits a message together with an opaque float.
func TraceFloat(msg string, opaqueFloat []byte) int32 {
	return rawTraceOpaqueFloat([]byte(msg), opaqueFloat)
}
