package host

import "strconv"

// Error is a negative host result code. The set is closed: every error the
// host can return is one of the constants below. Error values are plain
// int32 codes so returning one never allocates, and errors.Is works through
// simple equality.
type Error int32

const (
	// ErrInternal is reserved for internal invariant trips, generally
	// unrelated to inputs.
	ErrInternal Error = -1
	// ErrFieldNotFound means the requested serialized field is absent from
	// the specified object or transaction.
	ErrFieldNotFound Error = -2
	// ErrBufferTooSmall means the caller's buffer cannot hold the value.
	ErrBufferTooSmall Error = -3
	// ErrNoArray means the object under analysis was assumed to be an
	// STArray but was not.
	ErrNoArray Error = -4
	// ErrNotLeafField means the field is not a leaf and cannot be read
	// directly.
	ErrNotLeafField Error = -5
	// ErrLocatorMalformed means the provided locator bytes are invalid.
	ErrLocatorMalformed Error = -6
	// ErrSlotOutOfRange means the slot number is outside the valid range.
	ErrSlotOutOfRange Error = -7
	// ErrSlotsFull means no free cache slots are available.
	ErrSlotsFull Error = -8
	// ErrEmptySlot means the slot did not contain any cached object.
	ErrEmptySlot Error = -9
	// ErrLedgerObjNotFound means no ledger object exists for the keylet.
	ErrLedgerObjNotFound Error = -10
	// ErrDecoding means serialized data could not be decoded.
	ErrDecoding Error = -11
	// ErrDataFieldTooLarge means the data field exceeds the host limit.
	ErrDataFieldTooLarge Error = -12
	// ErrPointerOutOfBounds means a pointer or length described memory
	// outside the guest's allowed region.
	ErrPointerOutOfBounds Error = -13
	// ErrNoMemoryExported means the module exports no linear memory.
	ErrNoMemoryExported Error = -14
	// ErrInvalidArgument means one or more parameters are invalid.
	ErrInvalidArgument Error = -15
	// ErrInvalidAccount means the account identifier is invalid.
	ErrInvalidAccount Error = -16
	// ErrInvalidField means the field identifier is not recognized.
	ErrInvalidField Error = -17
	// ErrIndexOutOfBounds means an array index is outside the collection.
	ErrIndexOutOfBounds Error = -18
	// ErrInvalidFloatInput means input for float parsing is malformed.
	ErrInvalidFloatInput Error = -19
	// ErrInvalidFloatComputation means a float computation failed.
	ErrInvalidFloatComputation Error = -20
)

// ErrorFromCode maps a negative host result code to its Error. Codes outside
// the closed set (including non-negative ones) collapse to ErrInternal,
// since a host that returns them has violated the ABI contract.
func ErrorFromCode(code int32) Error {
	if code <= int32(ErrInternal) && code >= int32(ErrInvalidFloatComputation) {
		return Error(code)
	}
	return ErrInternal
}

// Code returns the raw host result code, suitable for returning from
// finish() to surface the error to the host.
func (e Error) Code() int32 { return int32(e) }

func (e Error) Error() string {
	switch e {
	case ErrInternal:
		return "internal error"
	case ErrFieldNotFound:
		return "field not found"
	case ErrBufferTooSmall:
		return "buffer too small"
	case ErrNoArray:
		return "not an array"
	case ErrNotLeafField:
		return "not a leaf field"
	case ErrLocatorMalformed:
		return "locator malformed"
	case ErrSlotOutOfRange:
		return "slot out of range"
	case ErrSlotsFull:
		return "slots full"
	case ErrEmptySlot:
		return "empty slot"
	case ErrLedgerObjNotFound:
		return "ledger object not found"
	case ErrDecoding:
		return "invalid decoding"
	case ErrDataFieldTooLarge:
		return "data field too large"
	case ErrPointerOutOfBounds:
		return "pointer out of bounds"
	case ErrNoMemoryExported:
		return "no memory exported"
	case ErrInvalidArgument:
		return "invalid parameters"
	case ErrInvalidAccount:
		return "invalid account"
	case ErrInvalidField:
		return "invalid field"
	case ErrIndexOutOfBounds:
		return "index out of bounds"
	case ErrInvalidFloatInput:
		return "invalid float input"
	case ErrInvalidFloatComputation:
		return "invalid float computation"
	default:
		return "host error " + strconv.Itoa(int(e))
	}
}
