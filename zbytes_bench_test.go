package zbytes

import (
	"testing"

	"github.com/rawbytedev/zbytes/pkg/buf"
)

var benchPayload = make([]byte, 4096)

func BenchmarkCloneShared(b *testing.B) {
	src := FromOwned(append([]byte(nil), benchPayload...))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		c := src.Clone()
		c.Free()
	}
}

func BenchmarkCloneStatic(b *testing.B) {
	src := FromStatic("a static payload that never touches a counter")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		c := src.Clone()
		c.Free()
	}
}

func BenchmarkSliceZeroCopy(b *testing.B) {
	src := FromOwned(append([]byte(nil), benchPayload...))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s := src.Slice(128, 1024)
		s.Free()
	}
}

func BenchmarkCopyFrom(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = CopyFrom(benchPayload)
	}
}

func BenchmarkFreeze(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		m := WithCapacity(len(benchPayload))
		m.ExtendFromSlice(benchPayload)
		_ = m.Freeze()
	}
}

func BenchmarkPutSlice(b *testing.B) {
	m := WithCapacity(len(benchPayload) * 2)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		m.SetLen(0)
		buf.PutSlice(m, benchPayload)
	}
}
