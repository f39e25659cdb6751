// Package simd provides AVX-512, AVX2, SSE4, and NEON accelerated float64 vector
// operations for vectors of any length. Automatically selects the best
// implementation based on GOARCH and CGO availability.
package simd

var (
	dotProductImpl     func(a, b []float64) float64
	dotProductImplDesc string
)

func init() {
	// Default; dispatch files override in init() based on GOARCH and CGO.
	if dotProductImpl == nil {
		dotProductImpl = dotProductGo
		dotProductImplDesc = "Go"
	}
}

// use installs impl as the DotProduct kernel.
func use(impl func(a, b []float64) float64, desc string) {
	dotProductImpl = impl
	dotProductImplDesc = desc
}

// DotProduct computes the dot product of two float64 vectors.
// Uses the best available SIMD implementation (AVX-512 > AVX2 > SSE4 on amd64; NEON on arm64).
// Vectors of different or zero length yield 0.
func DotProduct(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	if dotProductImpl != nil {
		return dotProductImpl(a, b)
	}
	return dotProductGo(a, b)
}

// DotProductDesc returns a description of the current dot product implementation (for logging).
func DotProductDesc() string {
	if dotProductImplDesc != "" {
		return dotProductImplDesc
	}
	return "Go"
}

// dotProductGo is the pure Go implementation (4-way unroll with a scalar tail).
func dotProductGo(a, b []float64) float64 {
	n := len(a)
	b = b[:n]
	var s0, s1, s2, s3 float64
	i := 0
	for ; i+4 <= n; i += 4 {
		s0 += a[i+0] * b[i+0]
		s1 += a[i+1] * b[i+1]
		s2 += a[i+2] * b[i+2]
		s3 += a[i+3] * b[i+3]
	}
	for ; i < n; i++ {
		s0 += a[i] * b[i]
	}
	return (s0 + s1) + (s2 + s3)
}
