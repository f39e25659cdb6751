//go:build amd64 && cgo

package simd

/*
#cgo CFLAGS: -mavx512f -O3
#include <immintrin.h>
#include <stddef.h>

static double DotProductAVX512(const double* a, const double* b, size_t n) {
	__m512d sum = _mm512_setzero_pd();
	size_t i = 0;
	for (; i + 8 <= n; i += 8) {
		__m512d va = _mm512_loadu_pd(a + i);
		__m512d vb = _mm512_loadu_pd(b + i);
		sum = _mm512_fmadd_pd(va, vb, sum);
	}
	double result[8];
	_mm512_storeu_pd(result, sum);
	double s = 0;
	for (int j = 0; j < 8; j++) s += result[j];
	for (; i < n; i++) s += a[i] * b[i];
	return s;
}
*/
import "C"

import "unsafe"

func dotProductAVX512(a, b []float64) float64 {
	n := len(a)
	if n == 0 {
		return 0
	}
	return float64(C.DotProductAVX512(
		(*C.double)(unsafe.Pointer(&a[0])),
		(*C.double)(unsafe.Pointer(&b[0])),
		C.size_t(n),
	))
}
