package zbytes

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIterNext(t *testing.T) {
	it := FromStatic("abc").Iter()

	for _, want := range []byte("abc") {
		c, ok := it.Next()
		require.True(t, ok)
		require.Equal(t, want, c)
	}
	_, ok := it.Next()
	require.False(t, ok)
	require.True(t, it.IsEmpty())
}

func TestIterPeek(t *testing.T) {
	it := FromStatic("a byte slice").Iter()

	c, ok := it.Peek()
	require.True(t, ok)
	require.Equal(t, byte('a'), c)
	// Peeking does not consume.
	require.Equal(t, 0, it.Pos())

	c, ok = it.PeekNth(3)
	require.True(t, ok)
	require.Equal(t, byte('y'), c)

	_, ok = it.PeekNth(12)
	require.False(t, ok)
}

func TestIterPeekN(t *testing.T) {
	it := FromStatic("a bytes slice").Iter()

	b, ok := it.PeekN(7)
	require.True(t, ok)
	require.Equal(t, []byte("a bytes"), b)
	require.Equal(t, 0, it.Pos())

	// Up to and including the end is fine.
	b, ok = it.PeekN(13)
	require.True(t, ok)
	require.Equal(t, []byte("a bytes slice"), b)

	_, ok = it.PeekN(14)
	require.False(t, ok)
}

func TestIterNextN(t *testing.T) {
	it := FromStatic("a bytes slice").Iter()

	b, ok := it.NextN(7)
	require.True(t, ok)
	require.Equal(t, []byte("a bytes"), b)

	c, ok := it.Next()
	require.True(t, ok)
	require.Equal(t, byte(' '), c)

	require.Equal(t, 5, it.Len())
}

func TestIterSkip(t *testing.T) {
	it := FromStatic("a bytes slice").Iter()
	it.Skip(8)

	c, ok := it.Next()
	require.True(t, ok)
	require.Equal(t, byte('s'), c)

	require.Panics(t, func() { it.Skip(10) })
}

func TestIterAgreesWithAsSlice(t *testing.T) {
	b := CopyFrom([]byte("iterate me"))
	it := b.Iter()
	got := []byte{}
	for {
		c, ok := it.Next()
		if !ok {
			break
		}
		got = append(got, c)
	}
	require.Equal(t, b.AsSlice(), got)
}
