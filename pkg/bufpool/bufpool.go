// Package bufpool provides a power-of-two size-classed byte pool and
// glue for adopting pooled buffers as zbytes values. Buffers handed
// out here come back through the release callback when the last clone
// of a frozen buffer is freed.
package bufpool

import (
	"math/bits"
	"sync"

	"github.com/rawbytedev/zbytes"
)

const (
	minClassBits = 6  // 64 B
	maxClassBits = 20 // 1 MiB
)

// Pool hands out byte slices with power-of-two capacities between 64 B
// and 1 MiB. Requests above the largest class fall through to plain
// allocations that are never pooled. The zero value is ready to use.
type Pool struct {
	classes [maxClassBits - minClassBits + 1]sync.Pool
}

// Get returns a slice of length n whose capacity is n rounded up to
// the pool's size class.
func (p *Pool) Get(n int) []byte {
	if n == 0 {
		return nil
	}
	if n > 1<<maxClassBits {
		return make([]byte, n)
	}
	i := classFor(n)
	if v := p.classes[i].Get(); v != nil {
		return (*(v.(*[]byte)))[:n]
	}
	return make([]byte, n, 1<<(minClassBits+i))
}

// Put returns b to the pool. Slices whose capacity is not one of the
// pool's classes are dropped for the garbage collector.
func (p *Pool) Put(b []byte) {
	c := cap(b)
	if c < 1<<minClassBits || c > 1<<maxClassBits || c&(c-1) != 0 {
		return
	}
	b = b[:0]
	p.classes[bits.TrailingZeros(uint(c))-minClassBits].Put(&b)
}

// Copy returns an immutable buffer holding a pooled copy of data. The
// pooled allocation is returned to p once the buffer's last clone is
// freed.
func (p *Pool) Copy(data []byte) *zbytes.Bytes {
	if len(data) == 0 {
		return zbytes.Empty()
	}
	b := p.Get(len(data))
	copy(b, data)
	return zbytes.NewBuffer(b, p.Put)
}

// GetMut returns an empty growable buffer with at least n bytes of
// pooled capacity. Freezing it threads the pool's release callback
// through to the resulting immutable buffer.
func (p *Pool) GetMut(n int) *zbytes.BytesMut {
	return zbytes.NewMutBuffer(p.Get(n)[:0], p.Put)
}

// classFor returns the smallest class index whose capacity fits n.
// Only valid for 0 < n <= 1<<maxClassBits.
func classFor(n int) int {
	b := bits.Len(uint(n - 1))
	if b < minClassBits {
		return 0
	}
	return b - minClassBits
}
