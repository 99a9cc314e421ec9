package buf

import "fmt"

// Buf is a readable cursor over a sequence of bytes.
//
// Implementations expose the bytes in one or more contiguous chunks;
// Advance consumes bytes from the front. Reading past the end is a
// contract violation and panics.
type Buf interface {
	// Remaining returns the number of bytes left to read.
	Remaining() int

	// Chunk returns a view of the next contiguous run of bytes. It is
	// non-empty whenever Remaining() > 0. The view is only valid until
	// the next call to Advance.
	Chunk() []byte

	// Advance consumes the next n bytes. Panics if n > Remaining().
	Advance(n int)
}

// HasRemaining reports whether b has bytes left to read.
func HasRemaining(b Buf) bool {
	return b.Remaining() > 0
}

// ReadByte consumes and returns the next byte of b.
func ReadByte(b Buf) byte {
	if !HasRemaining(b) {
		panic("buf: cannot read from buffer, no remaining bytes")
	}
	c := b.Chunk()[0]
	b.Advance(1)
	return c
}

// PeekByte returns the next byte of b without consuming it.
func PeekByte(b Buf) byte {
	if !HasRemaining(b) {
		panic("buf: cannot read from buffer, no remaining bytes")
	}
	return b.Chunk()[0]
}

// Reader is a Buf over a plain byte slice.
type Reader struct {
	b []byte
}

// NewReader returns a Buf reading from b. The slice is not copied.
func NewReader(b []byte) *Reader {
	return &Reader{b: b}
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.b)
}

// Chunk returns the unread bytes.
func (r *Reader) Chunk() []byte {
	return r.b
}

// Advance consumes the next n bytes.
func (r *Reader) Advance(n int) {
	if n > len(r.b) {
		panic(fmt.Sprintf("buf: cannot advance past end: count (%d) > remaining (%d)", n, len(r.b)))
	}
	r.b = r.b[n:]
}
