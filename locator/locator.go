// Package locator builds the compact byte paths used to address nested
// fields inside a transaction or ledger object, such as Memos[0].MemoData.
//
// A locator is a flat concatenation of 4-byte little-endian slots, each
// holding either a serialization-field id or an array index. There are no
// delimiters or type tags; position determines interpretation, which must
// match the shape of the targeted parent field. The encoded bytes are passed
// by pointer and length to the nested host getters.
package locator

import "encoding/binary"

// BufferSize caps the encoded path at 64 bytes, sixteen 4-byte slots. That
// comfortably holds any realistic nesting depth.
const BufferSize = 64

// SlotSize is the wire width of one packed sfield id or array index.
const SlotSize = 4

// Locator is a bounded, forward-only path encoder. The zero value is an
// empty locator ready for use. It lives on the stack for the duration of
// one host call; never heap-allocate one per element when iterating an
// array, use RepackLast instead.
type Locator struct {
	buf [BufferSize]byte
	n   int
}

// New returns an empty locator.
func New() Locator { return Locator{} }

// Pack appends a serialization-field id. It reports false, leaving the
// locator unchanged, when another slot would not fit.
func (l *Locator) Pack(field int32) bool {
	if l.n+SlotSize > BufferSize {
		return false
	}
	binary.LittleEndian.PutUint32(l.buf[l.n:], uint32(field))
	l.n += SlotSize
	return true
}

// PackIndex appends an array index. The wire form is identical to Pack; the
// separate name marks intent at call sites.
func (l *Locator) PackIndex(index int32) bool {
	return l.Pack(index)
}

// RepackLast overwrites the most recently packed slot without changing the
// length, so iterators can swap Memos[i].MemoType for Memos[i].MemoData
// without re-encoding the prefix. It reports false on an empty locator.
func (l *Locator) RepackLast(field int32) bool {
	if l.n < SlotSize {
		return false
	}
	binary.LittleEndian.PutUint32(l.buf[l.n-SlotSize:], uint32(field))
	return true
}

// Bytes returns the encoded path. The slice aliases the locator's buffer
// and is only valid while the locator is unchanged.
func (l *Locator) Bytes() []byte { return l.buf[:l.n] }

// Len returns the number of packed bytes, always a multiple of SlotSize.
func (l *Locator) Len() int { return l.n }

// IsEmpty reports whether nothing has been packed.
func (l *Locator) IsEmpty() bool { return l.n == 0 }

// Reset empties the locator for reuse.
func (l *Locator) Reset() { l.n = 0 }
