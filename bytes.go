// Package zbytes provides cheap, shareable byte buffers.
//
// Bytes is an immutable, reference-counted, zero-copy view of a byte
// buffer whose backing storage may be a static (immutable) string, a
// uniquely-owned allocation, or an atomically reference-counted shared
// allocation; the ownership scheme is picked transparently at
// construction and upgraded lazily on first clone. BytesMut is the
// growable, exclusively-owned counterpart that can be frozen into a
// Bytes without copying.
//
// Reference counting only matters for buffers adopted with a release
// callback (typically bufpool.Pool.Put); for plain GC-owned buffers
// calling Free is optional and the protocol is maintained for free.
package zbytes

import (
	"bytes"
	"fmt"
	"sync/atomic"

	"github.com/rawbytedev/zbytes/internal/common"
	"github.com/rawbytedev/zbytes/pkg/buf"
)

// Bytes is an immutable view over a byte buffer. Cloning never copies
// bytes; clones share the backing allocation and only release it when
// the last participant is freed.
//
// A Bytes value must not be copied by assignment; pass the pointer.
// Each goroutine should work with its own clone. Clone may be called
// concurrently on the same value; any other concurrent mutation of a
// single value is a contract violation.
type Bytes struct {
	// The window this value exposes. Always within the backing
	// allocation; validity is guaranteed by the provenance below,
	// never by the slice header alone.
	view []byte

	// Dispatch table; fixed at construction, fully determines how the
	// fields below are interpreted.
	vt *vtable

	// Promotion cell. nil means "still uniquely owned" for promotable
	// provenance (unused for static); non-nil points at the installed
	// shared header.
	shared atomic.Pointer[shared]

	// Promotable only: the full backing allocation and its release
	// callback, moved into the header on promotion.
	buf  []byte
	free func([]byte)
}

type vtable struct {
	clone func(*Bytes) *Bytes
	drop  func(*Bytes)
}

// shared is the header of a reference-counted allocation. One header
// is installed per promotion cell, ever.
type shared struct {
	buf  []byte
	free func([]byte)
	refs atomic.Int64
}

// Empty returns a Bytes of length zero with no storage participation.
func Empty() *Bytes {
	return &Bytes{vt: staticVTable}
}

// FromStatic returns a zero-copy view of s. Go strings are immutable
// and garbage collected, which makes them the moral equivalent of
// program-embedded data: clone and free are no-ops. Never allocates.
func FromStatic(s string) *Bytes {
	return &Bytes{view: common.StringToBytes(s), vt: staticVTable}
}

// CopyFrom allocates an exclusively-owned copy of src. The result has
// promotable provenance: no reference count exists until it is first
// cloned.
func CopyFrom(src []byte) *Bytes {
	if len(src) == 0 {
		return Empty()
	}
	b := make([]byte, len(src))
	copy(b, src)
	return &Bytes{view: b, vt: promotableVTable, buf: b}
}

// FromOwned adopts b without copying. The caller hands over ownership
// and must not write to b afterwards.
func FromOwned(b []byte) *Bytes {
	return NewBuffer(b, nil)
}

// NewBuffer adopts b without copying, registering free as the release
// callback invoked exactly once when the last owner is freed. A nil
// free leaves release to the garbage collector.
//
// A slice with no spare capacity takes shared provenance directly
// (there is no slack to reclaim); otherwise the buffer starts uniquely
// owned and is promoted on first clone.
func NewBuffer(b []byte, free func([]byte)) *Bytes {
	if cap(b) == 0 {
		return Empty()
	}
	if len(b) == cap(b) {
		sh := &shared{buf: b, free: free}
		sh.refs.Store(1)
		out := &Bytes{view: b, vt: sharedVTable}
		out.shared.Store(sh)
		return out
	}
	return &Bytes{view: b, vt: promotableVTable, buf: b[:cap(b)], free: free}
}

// Len returns the length of the view in bytes.
func (b *Bytes) Len() int {
	return len(b.view)
}

// IsEmpty reports whether the view has length zero.
func (b *Bytes) IsEmpty() bool {
	return len(b.view) == 0
}

// At returns the byte at the given index.
func (b *Bytes) At(index int) byte {
	if index < 0 || index >= len(b.view) {
		panic(fmt.Sprintf("zbytes: index out of bounds: bound (0..%d) does not contain index (%d)",
			len(b.view), index))
	}
	return b.view[index]
}

// AsSlice returns a read-only view of the bytes. The slice must not be
// modified and is valid until the last clone of this buffer is freed.
func (b *Bytes) AsSlice() []byte {
	return b.view
}

// Equal reports whether b and other hold the same bytes.
func (b *Bytes) Equal(other *Bytes) bool {
	return bytes.Equal(b.view, other.view)
}

// EqualSlice reports whether b holds the same bytes as other.
func (b *Bytes) EqualSlice(other []byte) bool {
	return bytes.Equal(b.view, other)
}

// Slice returns a new buffer over [start, end) sharing the same
// storage. An empty range returns a detached empty buffer that holds
// no reference to the storage.
func (b *Bytes) Slice(start, end int) *Bytes {
	if start < 0 {
		panic(fmt.Sprintf("zbytes: invalid range: start (%d) < 0", start))
	}
	if start > end {
		panic(fmt.Sprintf("zbytes: invalid range: start (%d) > end (%d)", start, end))
	}
	if end > len(b.view) {
		panic(fmt.Sprintf("zbytes: invalid range: end (%d) > len (%d)", end, len(b.view)))
	}
	if start == end {
		return Empty()
	}

	s := b.Clone()
	s.view = s.view[start:end]
	return s
}

// SplitOff truncates b to [0, at) and returns a new buffer over
// [at, len) sharing the same storage.
func (b *Bytes) SplitOff(at int) *Bytes {
	if at < 0 || at > len(b.view) {
		panic(fmt.Sprintf("zbytes: index out of bounds: at (%d) > len (%d)", at, len(b.view)))
	}

	tail := b.Clone()
	tail.view = tail.view[at:]
	b.view = b.view[:at]
	return tail
}

// SplitTo returns a new buffer over [0, at) and advances b to
// [at, len), sharing the same storage.
func (b *Bytes) SplitTo(at int) *Bytes {
	if at < 0 || at > len(b.view) {
		panic(fmt.Sprintf("zbytes: index out of bounds: at (%d) > len (%d)", at, len(b.view)))
	}

	head := b.Clone()
	head.view = head.view[:at]
	b.view = b.view[at:]
	return head
}

// Clone returns a new view of the same bytes without copying them. For
// a uniquely-owned buffer this is the moment shared ownership is set
// up; see the promotable vtable below.
func (b *Bytes) Clone() *Bytes {
	return b.vt.clone(b)
}

// Free releases this value's ownership participation. The backing
// allocation's release callback runs exactly once, when the last owner
// is freed. Using b after Free is a contract violation.
func (b *Bytes) Free() {
	b.vt.drop(b)
	b.view = nil
}

// === Buf ===

var _ buf.Buf = (*Bytes)(nil)

// Remaining returns the number of unread bytes.
func (b *Bytes) Remaining() int {
	return len(b.view)
}

// Chunk returns the unread bytes. Bytes is contiguous, so this is the
// whole remainder.
func (b *Bytes) Chunk() []byte {
	return b.view
}

// Advance consumes the next n bytes by narrowing the view. Storage
// participation is unchanged: the allocation is released as one unit.
func (b *Bytes) Advance(n int) {
	if n < 0 || n > len(b.view) {
		panic(fmt.Sprintf("zbytes: cannot advance past end: count (%d) > remaining (%d)", n, len(b.view)))
	}
	b.view = b.view[n:]
}

// === Vtables ===

// The tables are populated in init rather than in the literals: the
// clone paths construct values carrying these same tables, which Go's
// initialization-cycle analysis rejects as a cycle.
var (
	staticVTable     = &vtable{}
	sharedVTable     = &vtable{}
	promotableVTable = &vtable{}
)

func init() {
	*staticVTable = vtable{clone: staticClone, drop: staticDrop}
	*sharedVTable = vtable{clone: sharedClone, drop: sharedDrop}
	*promotableVTable = vtable{clone: promotableClone, drop: promotableDrop}
}

// Static: backing memory is immutable and garbage collected, so clone
// and drop need no bookkeeping at all.

func staticClone(b *Bytes) *Bytes {
	return &Bytes{view: b.view, vt: staticVTable}
}

func staticDrop(*Bytes) {}

// Shared: a header holds the allocation and an atomic reference count.

func sharedClone(b *Bytes) *Bytes {
	return shallowCloneShared(b.shared.Load(), b.view)
}

func sharedDrop(b *Bytes) {
	releaseShared(b.shared.Load())
}

// Promotable: uniquely owned until the first clone installs a header.
// Go offers no safe pointer-bit tagging, so the tag collapses into the
// nil-ness of the promotion cell and a single code path replaces the
// original's odd/even split.

func promotableClone(b *Bytes) *Bytes {
	if sh := b.shared.Load(); sh != nil {
		return shallowCloneShared(sh, b.view)
	}

	// Not promoted yet. Install a header counting both owners: this
	// value and the clone being made.
	sh := &shared{buf: b.buf, free: b.free}
	sh.refs.Store(2)
	if b.shared.CompareAndSwap(nil, sh) {
		out := &Bytes{view: b.view, vt: sharedVTable}
		out.shared.Store(sh)
		return out
	}

	// A concurrent clone won the race. Our header was never observed
	// by anyone, so dropping it on the floor is safe; clone against
	// the winner instead. At most one header survives per cell.
	return shallowCloneShared(b.shared.Load(), b.view)
}

func promotableDrop(b *Bytes) {
	if sh := b.shared.Load(); sh != nil {
		releaseShared(sh)
		return
	}
	// Sole owner, no header was ever needed.
	if b.free != nil {
		b.free(b.buf)
	}
	b.buf = nil
}

func shallowCloneShared(sh *shared, view []byte) *Bytes {
	sh.refs.Add(1)
	out := &Bytes{view: view, vt: sharedVTable}
	out.shared.Store(sh)
	return out
}

func releaseShared(sh *shared) {
	if sh.refs.Add(-1) != 0 {
		return
	}
	// Observed the 1 -> 0 transition: this caller frees. Go atomics
	// are sequentially consistent, so every other owner's release
	// happened before this point.
	if sh.free != nil {
		sh.free(sh.buf)
	}
	sh.buf = nil
}
