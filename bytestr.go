package zbytes

import (
	"errors"
	"unicode/utf8"

	"github.com/rawbytedev/zbytes/internal/common"
)

// ErrInvalidUTF8 is returned when bytes offered as a ByteStr are not
// valid UTF-8.
var ErrInvalidUTF8 = errors.New("zbytes: invalid utf-8")

// ByteStr is a Bytes constrained to hold valid UTF-8. It shares the
// zero-copy clone and slice machinery of the buffer it wraps.
//
// Invariant: the wrapped bytes are always valid UTF-8.
type ByteStr struct {
	inner *Bytes
}

// NewByteStr returns an empty ByteStr.
func NewByteStr() ByteStr {
	return ByteStr{inner: Empty()}
}

// ByteStrFromStatic wraps s without copying. Unlike string literals,
// computed Go strings may hold arbitrary bytes, so validity is checked
// here; passing invalid UTF-8 is a contract violation. Computed
// strings of uncertain validity belong in ByteStrFromShared instead.
func ByteStrFromStatic(s string) ByteStr {
	if !utf8.ValidString(s) {
		panic("zbytes: ByteStrFromStatic on invalid utf-8")
	}
	return ByteStr{inner: FromStatic(s)}
}

// ByteStrFromString copies s into an owned buffer.
func ByteStrFromString(s string) ByteStr {
	return ByteStr{inner: CopyFrom(common.StringToBytes(s))}
}

// ByteStrFromShared wraps b after validating it, without copying.
// Invalid UTF-8 is a data error, not a contract violation, so it is
// reported rather than panicked.
func ByteStrFromShared(b *Bytes) (ByteStr, error) {
	if !utf8.Valid(b.AsSlice()) {
		return ByteStr{}, ErrInvalidUTF8
	}
	return ByteStr{inner: b}, nil
}

// ByteStrFromSharedUnchecked wraps b without validation. The caller
// guarantees b holds valid UTF-8; violating that breaks the ByteStr
// invariant for every value derived from the result.
func ByteStrFromSharedUnchecked(b *Bytes) ByteStr {
	return ByteStr{inner: b}
}

// AsStr returns the contents as a string without copying. Valid until
// the underlying buffer's last owner is freed.
func (s ByteStr) AsStr() string {
	if s.inner == nil {
		return ""
	}
	return common.BytesToString(s.inner.AsSlice())
}

// Len returns the length in bytes, not runes.
func (s ByteStr) Len() int {
	if s.inner == nil {
		return 0
	}
	return s.inner.Len()
}

// IsEmpty reports whether the string is empty.
func (s ByteStr) IsEmpty() bool {
	return s.Len() == 0
}

// Bytes returns the wrapped buffer.
func (s ByteStr) Bytes() *Bytes {
	if s.inner == nil {
		return Empty()
	}
	return s.inner
}

// Clone returns a new ByteStr sharing the same storage.
func (s ByteStr) Clone() ByteStr {
	return ByteStr{inner: s.Bytes().Clone()}
}

// Free releases the wrapped buffer's ownership participation.
func (s ByteStr) Free() {
	if s.inner != nil {
		s.inner.Free()
	}
}

func (s ByteStr) String() string {
	return s.AsStr()
}
