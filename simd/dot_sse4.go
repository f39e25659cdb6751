//go:build amd64 && cgo

package simd

/*
#cgo CFLAGS: -msse4.1 -O3
#include <smmintrin.h>
#include <stddef.h>

static double DotProductSSE4(const double* a, const double* b, size_t n) {
	__m128d sum = _mm_setzero_pd();
	size_t i = 0;
	for (; i + 2 <= n; i += 2) {
		__m128d va = _mm_loadu_pd(a + i);
		__m128d vb = _mm_loadu_pd(b + i);
		sum = _mm_add_pd(sum, _mm_mul_pd(va, vb));
	}
	sum = _mm_hadd_pd(sum, sum);
	double s = _mm_cvtsd_f64(sum);
	for (; i < n; i++) s += a[i] * b[i];
	return s;
}
*/
import "C"

import "unsafe"

func dotProductSSE4(a, b []float64) float64 {
	n := len(a)
	if n == 0 {
		return 0
	}
	return float64(C.DotProductSSE4(
		(*C.double)(unsafe.Pointer(&a[0])),
		(*C.double)(unsafe.Pointer(&b[0])),
		C.size_t(n),
	))
}
