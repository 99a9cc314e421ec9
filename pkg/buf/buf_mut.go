package buf

import "fmt"

// BufMut is a writable cursor over a region of bytes.
//
// The next writable chunk is described as an UninitSlice so that an
// implementation can hand out memory it has not initialized yet;
// AdvanceMut is the sole operation that asserts written bytes are now
// initialized.
type BufMut interface {
	// RemainingMut returns how many more bytes can be written,
	// counting any growth the implementation is willing to perform.
	RemainingMut() int

	// ChunkMut returns a write-only view of the next writable run of
	// bytes. It is non-empty whenever RemainingMut() > 0. The view is
	// only valid until the next call to AdvanceMut.
	ChunkMut() *UninitSlice

	// AdvanceMut marks the next n bytes as written. The caller
	// guarantees those bytes were initialized through the view
	// returned by ChunkMut. Panics if n exceeds the writable
	// capacity.
	AdvanceMut(n int)
}

// Put copies all remaining bytes of src into dst, chunk by chunk. The
// destination capacity is checked up front; on insufficient capacity it
// panics before any byte is moved.
func Put(dst BufMut, src Buf) {
	if dst.RemainingMut() < src.Remaining() {
		panic(fmt.Sprintf("buf: not enough space remaining in BufMut: remaining (%d) < needed (%d)",
			dst.RemainingMut(), src.Remaining()))
	}

	for HasRemaining(src) {
		chunk := src.Chunk()
		d := dst.ChunkMut()

		cnt := len(chunk)
		if d.Len() < cnt {
			cnt = d.Len()
		}
		d.Slice(0, cnt).CopyFromSlice(chunk[:cnt])

		src.Advance(cnt)
		dst.AdvanceMut(cnt)
	}
}

// PutSlice copies src into dst. Same capacity check as Put.
func PutSlice(dst BufMut, src []byte) {
	if dst.RemainingMut() < len(src) {
		panic(fmt.Sprintf("buf: not enough space remaining in BufMut: remaining (%d) < needed (%d)",
			dst.RemainingMut(), len(src)))
	}

	for index := 0; index < len(src); {
		d := dst.ChunkMut()

		cnt := len(src) - index
		if d.Len() < cnt {
			cnt = d.Len()
		}
		d.Slice(0, cnt).CopyFromSlice(src[index : index+cnt])

		dst.AdvanceMut(cnt)
		index += cnt
	}
}

// PutByte writes a single byte into dst.
func PutByte(dst BufMut, c byte) {
	PutSlice(dst, []byte{c})
}

// Writer is a fixed-capacity BufMut over a caller-provided slice. It
// never grows; writes beyond the slice capacity panic.
type Writer struct {
	b []byte
	n int
}

// NewWriter returns a BufMut writing into b from the start. The slice
// is not copied; Written reports the initialized prefix.
func NewWriter(b []byte) *Writer {
	return &Writer{b: b}
}

// RemainingMut returns the unwritten capacity.
func (w *Writer) RemainingMut() int {
	return len(w.b) - w.n
}

// ChunkMut returns the unwritten tail of the destination.
func (w *Writer) ChunkMut() *UninitSlice {
	return NewUninitSlice(w.b[w.n:])
}

// AdvanceMut marks the next n bytes as written.
func (w *Writer) AdvanceMut(n int) {
	if n > len(w.b)-w.n {
		panic(fmt.Sprintf("buf: not enough space to advance: remaining (%d) < count (%d)", len(w.b)-w.n, n))
	}
	w.n += n
}

// Written returns the prefix of the destination written so far.
func (w *Writer) Written() []byte {
	return w.b[:w.n]
}
