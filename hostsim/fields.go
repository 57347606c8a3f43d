package hostsim

import (
	"encoding/binary"

	"github.com/xrpl-wasm/xrpl-wasm-go/host"
	"github.com/xrpl-wasm/xrpl-wasm-go/locator"
)

func readField(obj Object, field int32, out []byte) int32 {
	info, ok := fieldTable[field]
	if !ok {
		return fail(host.ErrInvalidField)
	}
	if !info.kind.leaf() {
		return fail(host.ErrNotLeafField)
	}
	v, ok := obj[info.name]
	if !ok {
		return fail(host.ErrFieldNotFound)
	}
	return encodeValue(info.kind, v, out)
}

func readArrayLen(obj Object, field int32) int32 {
	info, ok := fieldTable[field]
	if !ok {
		return fail(host.ErrInvalidField)
	}
	if info.kind != kindArray && info.kind != kindVector256 {
		return fail(host.ErrNoArray)
	}
	v, ok := obj[info.name]
	if !ok {
		return fail(host.ErrFieldNotFound)
	}
	arr, ok := v.([]any)
	if !ok {
		return fail(host.ErrNoArray)
	}
	return int32(len(arr))
}

func readNested(obj Object, loc, out []byte) int32 {
	v, info, errc := walkLocator(obj, loc)
	if errc != 0 {
		return fail(errc)
	}
	if !info.kind.leaf() {
		return fail(host.ErrNotLeafField)
	}
	return encodeValue(info.kind, v, out)
}

func readNestedArrayLen(obj Object, loc []byte) int32 {
	v, info, errc := walkLocator(obj, loc)
	if errc != 0 {
		return fail(errc)
	}
	if info.kind != kindArray && info.kind != kindVector256 {
		return fail(host.ErrNoArray)
	}
	arr, ok := v.([]any)
	if !ok {
		return fail(host.ErrNoArray)
	}
	return int32(len(arr))
}

// walkLocator resolves a packed locator path against obj and returns the
// addressed value along with the field info of the last field slot. Inside
// an array the next slot is an element index; everywhere else it is an
// sfield id.
func walkLocator(obj Object, loc []byte) (any, fieldInfo, host.Error) {
	if len(loc) == 0 || len(loc) > locator.BufferSize || len(loc)%locator.SlotSize != 0 {
		return nil, fieldInfo{}, host.ErrLocatorMalformed
	}

	var cur any = obj
	var last fieldInfo
	for off := 0; off < len(loc); off += locator.SlotSize {
		slot := int32(binary.LittleEndian.Uint32(loc[off:]))
		switch node := cur.(type) {
		case Object:
			info, ok := fieldTable[slot]
			if !ok {
				return nil, fieldInfo{}, host.ErrInvalidField
			}
			v, ok := node[info.name]
			if !ok {
				return nil, fieldInfo{}, host.ErrFieldNotFound
			}
			cur, last = v, info
		case []any:
			if slot < 0 || int(slot) >= len(node) {
				return nil, fieldInfo{}, host.ErrIndexOutOfBounds
			}
			elem := node[slot]
			// Array elements are inner objects, except vector fields
			// whose elements are bare Hash256 values.
			if last.kind == kindVector256 {
				last.kind = kindHash256
			}
			cur = elem
		default:
			// A leaf field cannot be descended into.
			return nil, fieldInfo{}, host.ErrNotLeafField
		}
	}
	return cur, last, 0
}

// encodeValue writes a fixture value into out according to the field kind
// and returns the byte count.
func encodeValue(kind fieldKind, v any, out []byte) int32 {
	switch kind {
	case kindUInt16, kindUInt32, kindUInt64:
		num, ok := v.(float64)
		if !ok {
			return fail(host.ErrDecoding)
		}
		w := kind.width()
		if len(out) < w {
			return fail(host.ErrBufferTooSmall)
		}
		switch kind {
		case kindUInt16:
			binary.LittleEndian.PutUint16(out, uint16(num))
		case kindUInt32:
			binary.LittleEndian.PutUint32(out, uint32(num))
		default:
			binary.LittleEndian.PutUint64(out, uint64(num))
		}
		return int32(w)

	case kindHash128, kindHash160, kindHash192, kindHash256, kindAccount:
		s, ok := v.(string)
		if !ok {
			return fail(host.ErrDecoding)
		}
		b, ok := hexBytes(s)
		if !ok || len(b) != kind.width() {
			return fail(host.ErrDecoding)
		}
		if len(out) < len(b) {
			return fail(host.ErrBufferTooSmall)
		}
		copy(out, b)
		return int32(len(b))

	case kindAmount, kindBlob:
		b, errc := flexBytes(v)
		if errc != 0 {
			return fail(errc)
		}
		if len(out) < len(b) {
			return fail(host.ErrBufferTooSmall)
		}
		copy(out, b)
		return int32(len(b))

	default:
		return fail(host.ErrNotLeafField)
	}
}

// flexBytes accepts either a hex string (raw serialized bytes) or a JSON
// number, which is encoded as 8 little-endian bytes the way XRP drop
// amounts cross the ABI.
func flexBytes(v any) ([]byte, host.Error) {
	switch val := v.(type) {
	case string:
		b, ok := hexBytes(val)
		if !ok {
			return nil, host.ErrDecoding
		}
		return b, 0
	case float64:
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], uint64(val))
		return b[:], 0
	default:
		return nil, host.ErrDecoding
	}
}
