package zbytes

import (
	"fmt"

	"github.com/rawbytedev/zbytes/internal/common"
	"github.com/rawbytedev/zbytes/pkg/buf"
)

// BytesMut is a growable, exclusively-owned byte buffer. It is the
// only type in this package that allocates or grows memory; freezing
// it hands the allocation to an immutable Bytes without copying.
//
// Not safe for concurrent use; exclusive ownership is the invariant
// that makes unsynchronized reads of frozen buffers sound.
type BytesMut struct {
	// len(data) is the initialized prefix, cap(data) the allocation.
	data []byte

	// Release callback for the allocation, threaded into Freeze.
	free func([]byte)
}

// NewMut returns an empty buffer with no allocation.
func NewMut() *BytesMut {
	return &BytesMut{}
}

// WithCapacity returns an empty buffer backed by a single allocation
// of exactly n bytes.
func WithCapacity(n int) *BytesMut {
	if n < 0 {
		panic(fmt.Sprintf("zbytes: capacity overflow: requested (%d)", n))
	}
	return &BytesMut{data: make([]byte, 0, n)}
}

// FromOwnedMut adopts b as the buffer's allocation, keeping its
// initialized length. The caller hands over ownership.
func FromOwnedMut(b []byte) *BytesMut {
	return &BytesMut{data: b}
}

// NewMutBuffer adopts b with a release callback that receives the full
// allocation when the frozen buffer's last owner is freed, or when a
// growth reallocation abandons it.
func NewMutBuffer(b []byte, free func([]byte)) *BytesMut {
	return &BytesMut{data: b, free: free}
}

// Len returns the number of initialized bytes.
func (m *BytesMut) Len() int {
	return len(m.data)
}

// IsEmpty reports whether no bytes have been written.
func (m *BytesMut) IsEmpty() bool {
	return len(m.data) == 0
}

// Cap returns the size of the allocation in bytes.
func (m *BytesMut) Cap() int {
	return cap(m.data)
}

// AsSlice returns the initialized bytes. The slice is invalidated by
// any subsequent growth.
func (m *BytesMut) AsSlice() []byte {
	return m.data
}

// Push appends one byte, doubling the capacity when full (starting at
// one for an empty buffer).
func (m *BytesMut) Push(c byte) {
	if len(m.data) == cap(m.data) {
		newCap := cap(m.data) * 2
		if newCap == 0 {
			newCap = 1
		}
		m.grow(newCap)
	}
	m.data = append(m.data, c)
}

// Pop removes and returns the last byte.
func (m *BytesMut) Pop() (byte, bool) {
	if len(m.data) == 0 {
		return 0, false
	}
	c := m.data[len(m.data)-1]
	m.data = m.data[:len(m.data)-1]
	return c, true
}

// Reserve ensures space for additional more bytes. Unlike Push it
// grows to exactly the requested need: bulk writers know their size up
// front, so geometric slack would only waste memory.
func (m *BytesMut) Reserve(additional int) {
	if additional < 0 {
		panic(fmt.Sprintf("zbytes: capacity overflow: requested (%d)", additional))
	}
	if cap(m.data)-len(m.data) >= additional {
		return
	}
	if additional > common.MaxInt-len(m.data) {
		panic(fmt.Sprintf("zbytes: capacity overflow: len (%d) + requested (%d) exceeds max", len(m.data), additional))
	}
	m.grow(len(m.data) + additional)
}

// ExtendFromSlice appends src, growing exactly as needed.
func (m *BytesMut) ExtendFromSlice(src []byte) {
	m.Reserve(len(src))
	m.data = append(m.data, src...)
}

// SetLen sets the initialized length to n. The caller guarantees that
// bytes [len, n) have already been written through the spare-capacity
// view; violating that exposes stale memory.
func (m *BytesMut) SetLen(n int) {
	if n < 0 || n > cap(m.data) {
		panic(fmt.Sprintf("zbytes: set_len out of bounds: n (%d) > cap (%d)", n, cap(m.data)))
	}
	m.data = m.data[:n]
}

// Take consumes the buffer and returns the initialized bytes as a
// plain slice. The buffer is left empty and detached from any release
// callback.
func (m *BytesMut) Take() []byte {
	b := m.data
	m.data, m.free = nil, nil
	return b
}

// Freeze consumes the buffer and returns an immutable Bytes over the
// exact same allocation. No bytes are copied and no reference count
// exists until the result is first cloned.
func (m *BytesMut) Freeze() *Bytes {
	data, free := m.data, m.free
	m.data, m.free = nil, nil
	if cap(data) == 0 {
		return Empty()
	}
	return &Bytes{view: data, vt: promotableVTable, buf: data[:cap(data)], free: free}
}

// grow reallocates to exactly newCap, preserving the initialized
// bytes. Every call invalidates raw views derived before it. The old
// allocation goes back through the release callback, if any.
func (m *BytesMut) grow(newCap int) {
	data := make([]byte, len(m.data), newCap)
	copy(data, m.data)
	if m.free != nil && cap(m.data) > 0 {
		old := m.data[:cap(m.data)]
		m.free(old)
		// The callback belongs to the abandoned allocation only.
		m.free = nil
	}
	m.data = data
}

// === BufMut ===

var _ buf.BufMut = (*BytesMut)(nil)

// RemainingMut returns how many more bytes can be written. The buffer
// grows on demand, so this is bounded by the platform, not the current
// allocation.
func (m *BytesMut) RemainingMut() int {
	return common.MaxInt - len(m.data)
}

// ChunkMut returns the spare capacity as a write-only view, growing
// first if there is none so copy loops always make progress.
func (m *BytesMut) ChunkMut() *buf.UninitSlice {
	if len(m.data) == cap(m.data) {
		extra := cap(m.data)
		if extra == 0 {
			extra = 64
		}
		m.Reserve(extra)
	}
	return buf.NewUninitSlice(m.data[len(m.data):cap(m.data)])
}

// AdvanceMut marks the next n spare bytes as initialized. The caller
// guarantees they were written through the ChunkMut view.
func (m *BytesMut) AdvanceMut(n int) {
	rem := cap(m.data) - len(m.data)
	if n > rem {
		panic(fmt.Sprintf("zbytes: not enough space to advance: remaining (%d) < count (%d)", rem, n))
	}
	m.data = m.data[:len(m.data)+n]
}
