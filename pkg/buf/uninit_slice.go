// Package buf provides the readable and writable cursor capabilities
// shared by the zbytes buffer types, together with UninitSlice, a
// write-only view used to describe destination memory that has not been
// initialized yet.
package buf

import "fmt"

// UninitSlice is a view over a contiguous region of possibly
// uninitialized memory. It allows byte-for-byte writes and sub-ranging
// but never hands back a readable reference, so a BufMut implementation
// can expose its spare capacity without claiming it holds meaningful
// values.
//
// An UninitSlice never owns memory; it stays valid only as long as the
// buffer it was derived from.
type UninitSlice struct {
	b []byte
}

// NewUninitSlice wraps b in a write-only view.
func NewUninitSlice(b []byte) *UninitSlice {
	return &UninitSlice{b: b}
}

// Len returns the number of writable bytes.
func (s *UninitSlice) Len() int {
	return len(s.b)
}

// IsEmpty reports whether the view has no writable bytes.
func (s *UninitSlice) IsEmpty() bool {
	return len(s.b) == 0
}

// Slice returns a narrower view over [start, end).
func (s *UninitSlice) Slice(start, end int) *UninitSlice {
	if start > end {
		panic(fmt.Sprintf("buf: invalid range: start (%d) > end (%d)", start, end))
	}
	if end > len(s.b) {
		panic(fmt.Sprintf("buf: invalid range: end (%d) > len (%d)", end, len(s.b)))
	}
	return &UninitSlice{b: s.b[start:end]}
}

// From returns a narrower view over [start, len).
func (s *UninitSlice) From(start int) *UninitSlice {
	return s.Slice(start, len(s.b))
}

// CopyFromSlice fills the whole view with src.
func (s *UninitSlice) CopyFromSlice(src []byte) {
	if len(src) != len(s.b) {
		panic(fmt.Sprintf("buf: copy length mismatch: dst (%d) != src (%d)", len(s.b), len(src)))
	}
	copy(s.b, src)
}

// WriteByteAt writes c at the given index.
func (s *UninitSlice) WriteByteAt(index int, c byte) {
	if index >= len(s.b) {
		panic(fmt.Sprintf("buf: index out of bounds: index (%d) >= len (%d)", index, len(s.b)))
	}
	s.b[index] = c
}
