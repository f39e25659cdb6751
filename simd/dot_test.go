package simd

import (
	"math"
	"math/rand"
	"testing"
)

func naiveDot(a, b []float64) float64 {
	var s float64
	for i := range a {
		s += a[i] * b[i]
	}
	return s
}

// checkKernel compares kernel against the naive loop on lengths that exercise
// every vector width and scalar tail.
func checkKernel(t *testing.T, kernel func(a, b []float64) float64) {
	t.Helper()
	rng := rand.New(rand.NewSource(1))
	for _, n := range []int{1, 2, 3, 4, 5, 7, 8, 9, 15, 16, 17, 50, 100, 1000} {
		a := make([]float64, n)
		b := make([]float64, n)
		for i := range a {
			a[i] = rng.Float64()*2 - 1
			b[i] = rng.Float64()*2 - 1
		}
		want := naiveDot(a, b)
		got := kernel(a, b)
		if math.Abs(got-want) > 1e-9*math.Max(1, math.Abs(want)) {
			t.Errorf("n=%d: got %g want %g", n, got, want)
		}
	}
}

func TestDotProduct_GoMatchesNaive(t *testing.T) {
	checkKernel(t, dotProductGo)
}

func TestDotProduct_Dispatched(t *testing.T) {
	t.Logf("dot product implementation: %s", DotProductDesc())
	checkKernel(t, DotProduct)
}

func TestDotProduct_LengthMismatch(t *testing.T) {
	if got := DotProduct([]float64{1, 2}, []float64{1}); got != 0 {
		t.Errorf("mismatched lengths: got %g want 0", got)
	}
	if got := DotProduct(nil, nil); got != 0 {
		t.Errorf("empty vectors: got %g want 0", got)
	}
}

func TestPairSum(t *testing.T) {
	rows := [][]float64{{1, 2}, {3, 4}, {5, 6}, {7, 8}}
	if got := PairSum(rows, 0, 3); got != 133 {
		t.Errorf("full range: got %g want 133", got)
	}
	// Split ranges must add up to the full range.
	if got := PairSum(rows, 0, 1) + PairSum(rows, 1, 3); got != 133 {
		t.Errorf("split ranges: got %g want 133", got)
	}
	if got := PairSum(rows, 0, 10); got != 133 {
		t.Errorf("clamped range: got %g want 133", got)
	}
	if got := PairSum(rows[:1], 0, 1); got != 0 {
		t.Errorf("single row: got %g want 0", got)
	}
	if got := PairSum(rows, 2, 1); got != 0 {
		t.Errorf("inverted range: got %g want 0", got)
	}
}
