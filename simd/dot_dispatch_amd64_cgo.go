//go:build amd64 && cgo

package simd

import "golang.org/x/sys/cpu"

func init() {
	switch {
	case cpu.X86.HasAVX512F:
		use(dotProductAVX512, "AVX-512")
	case cpu.X86.HasAVX2:
		use(dotProductAVX2, "AVX2")
	case cpu.X86.HasSSE41:
		use(dotProductSSE4, "SSE4")
	default:
		use(dotProductGo, "Go")
	}
}
