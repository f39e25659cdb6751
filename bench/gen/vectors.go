// Package gen generates seeded benchmark inputs.
package gen

import (
	"math"
	"math/rand"
)

// RandomVectors returns n vectors of dimension dim with entries uniform in [-1, 1).
func RandomVectors(n, dim int, seed int64) [][]float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([][]float64, n)
	for i := range out {
		v := make([]float64, dim)
		for j := range v {
			v[j] = rng.Float64()*2 - 1
		}
		out[i] = v
	}
	return out
}

// Ints returns n integers uniform in [lo, hi].
func Ints(n, lo, hi int, seed int64) []int {
	rng := rand.New(rand.NewSource(seed))
	out := make([]int, n)
	for i := range out {
		out[i] = lo + rng.Intn(hi-lo+1)
	}
	return out
}

// Floats returns n reals uniform in [lo, hi).
func Floats(n int, lo, hi float64, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]float64, n)
	for i := range out {
		out[i] = lo + rng.Float64()*(hi-lo)
	}
	return out
}

// Matrix returns a rows x cols matrix with entries uniform in [lo, hi].
func Matrix(rows, cols, lo, hi int, seed int64) [][]int {
	rng := rand.New(rand.NewSource(seed))
	m := make([][]int, rows)
	for i := range m {
		m[i] = make([]int, cols)
		for j := range m[i] {
			m[i][j] = lo + rng.Intn(hi-lo+1)
		}
	}
	return m
}

// Banded returns an n x n matrix whose entries within k of the diagonal are
// uniform in [-10000, 10000]; the rest hold MaxInt so they never win a row minimum.
func Banded(n, k int, seed int64) [][]int {
	rng := rand.New(rand.NewSource(seed))
	m := filled(n, math.MaxInt)
	for i := range m {
		for j := max(0, i-k); j <= min(n-1, i+k); j++ {
			m[i][j] = rng.Intn(20001) - 10000
		}
	}
	return m
}

// LowerTriangular returns an n x n matrix with random entries on and below the
// diagonal and MaxInt above it.
func LowerTriangular(n int, seed int64) [][]int {
	rng := rand.New(rand.NewSource(seed))
	m := filled(n, math.MaxInt)
	for i := range m {
		for j := 0; j <= i; j++ {
			m[i][j] = rng.Intn(20001) - 10000
		}
	}
	return m
}

func filled(n, v int) [][]int {
	m := make([][]int, n)
	for i := range m {
		m[i] = make([]int, n)
		for j := range m[i] {
			m[i][j] = v
		}
	}
	return m
}
