package simd

// PairSum returns the sum of DotProduct(rows[i], rows[i+1]) for i in [lo, hi).
// hi is clamped to len(rows)-1 so that every pair stays inside rows; an empty
// or inverted range yields 0.
func PairSum(rows [][]float64, lo, hi int) float64 {
	if lo < 0 {
		lo = 0
	}
	if hi > len(rows)-1 {
		hi = len(rows) - 1
	}
	var sum float64
	for i := lo; i < hi; i++ {
		sum += DotProduct(rows[i], rows[i+1])
	}
	return sum
}
