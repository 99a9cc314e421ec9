package zbytes

import "fmt"

// Iter is a forward cursor over the bytes of a Bytes. It borrows the
// buffer it was created from and stays valid until that buffer's last
// owner is freed; it holds no ownership participation of its own.
type Iter struct {
	b   *Bytes
	pos int
}

// Iter returns a cursor positioned at the start of b.
func (b *Bytes) Iter() *Iter {
	return &Iter{b: b}
}

// Pos returns the current position in the buffer.
func (it *Iter) Pos() int {
	return it.pos
}

// Len returns the number of bytes left.
func (it *Iter) Len() int {
	return it.b.Len() - it.pos
}

// IsEmpty reports whether the cursor is exhausted.
func (it *Iter) IsEmpty() bool {
	return it.pos >= it.b.Len()
}

// Next consumes and returns the next byte.
func (it *Iter) Next() (byte, bool) {
	if it.IsEmpty() {
		return 0, false
	}
	c := it.b.AsSlice()[it.pos]
	it.pos++
	return c, true
}

// Peek returns the byte at the current position without consuming it.
func (it *Iter) Peek() (byte, bool) {
	return it.PeekNth(0)
}

// PeekNth returns the byte n positions ahead without consuming it.
func (it *Iter) PeekNth(n int) (byte, bool) {
	pos := it.pos + n
	if pos >= it.b.Len() {
		return 0, false
	}
	return it.b.AsSlice()[pos], true
}

// PeekN returns the next n bytes without consuming them. The view is
// only valid while the underlying buffer is.
func (it *Iter) PeekN(n int) ([]byte, bool) {
	end := it.pos + n
	if end > it.b.Len() {
		return nil, false
	}
	return it.b.AsSlice()[it.pos:end], true
}

// NextN consumes and returns the next n bytes.
func (it *Iter) NextN(n int) ([]byte, bool) {
	b, ok := it.PeekN(n)
	if ok {
		it.pos += n
	}
	return b, ok
}

// Skip advances the cursor by n bytes.
func (it *Iter) Skip(n int) {
	if it.pos+n > it.b.Len() {
		panic(fmt.Sprintf("zbytes: cannot skip past end: pos (%d) + n (%d) > len (%d)",
			it.pos, n, it.b.Len()))
	}
	it.pos += n
}
