//go:build arm64 && cgo

package simd

import (
	"runtime"
	"testing"

	"golang.org/x/sys/cpu"
)

func BenchmarkDotProduct_NEON(b *testing.B) {
	if runtime.GOARCH != "arm64" || !cpu.ARM64.HasASIMD {
		b.Skip("NEON not available")
	}
	va, vb := initBenchVectors()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = dotProductNEON(va, vb)
	}
}

func TestDotProduct_NEONMatchesGo(t *testing.T) {
	if !cpu.ARM64.HasASIMD {
		t.Skip("NEON not available")
	}
	checkKernel(t, dotProductNEON)
}
