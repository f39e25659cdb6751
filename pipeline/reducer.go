package pipeline

import (
	"github.com/ic-timon/pipebench/sched"
	"github.com/ic-timon/pipebench/simd"
)

// Reducer sums the dot products of consecutive records in a batch.
type Reducer struct {
	Workers int          // <= 0 means runtime.NumCPU()
	Policy  sched.Policy // partition of the pair index space
}

// Reduce returns sum over i in [0, len(batch)-1) of dot(batch[i], batch[i+1]).
// Batches with fewer than two records yield 0.
func (r Reducer) Reduce(batch [][]float64) float64 {
	pairs := len(batch) - 1
	if pairs < 1 {
		return 0
	}
	return sched.Reduce(pairs, r.Workers, r.Policy, 0.0,
		func(lo, hi int) float64 { return simd.PairSum(batch, lo, hi) },
		func(a, b float64) float64 { return a + b },
	)
}
