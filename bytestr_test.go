package zbytes

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestByteStrFromStatic(t *testing.T) {
	s := ByteStrFromStatic("this is valid utf8")
	require.Equal(t, "this is valid utf8", s.AsStr())
	require.Equal(t, 18, s.Len())
	require.False(t, s.IsEmpty())
}

func TestByteStrFromStaticInvalidUTF8(t *testing.T) {
	require.Panics(t, func() { ByteStrFromStatic(string([]byte{0xff, 0xfe})) })
}

func TestByteStrFromString(t *testing.T) {
	s := ByteStrFromString("this is a string")
	require.Equal(t, "this is a string", s.AsStr())
}

func TestByteStrFromShared(t *testing.T) {
	s, err := ByteStrFromShared(FromStatic("héllo wörld"))
	require.NoError(t, err)
	require.Equal(t, "héllo wörld", s.AsStr())

	_, err = ByteStrFromShared(CopyFrom([]byte{0xff, 0xfe, 0xfd}))
	require.ErrorIs(t, err, ErrInvalidUTF8)
}

func TestByteStrAsStrIsZeroCopy(t *testing.T) {
	b := CopyFrom([]byte("no copy"))
	s := ByteStrFromSharedUnchecked(b)
	str := s.AsStr()
	require.Equal(t, "no copy", str)
	require.Same(t, sliceData(b.AsSlice()), unsafe.StringData(str))
}

func TestByteStrZeroValue(t *testing.T) {
	var s ByteStr
	require.Equal(t, "", s.AsStr())
	require.True(t, s.IsEmpty())
	require.True(t, s.Bytes().IsEmpty())
}

func TestByteStrClone(t *testing.T) {
	s := ByteStrFromString("clone me")
	c := s.Clone()
	require.Equal(t, s.AsStr(), c.AsStr())
	require.Same(t, sliceData(s.Bytes().AsSlice()), sliceData(c.Bytes().AsSlice()))
	c.Free()
	s.Free()
}

func TestByteStrString(t *testing.T) {
	s := ByteStrFromStatic("display me")
	require.Equal(t, "display me", s.String())
}
