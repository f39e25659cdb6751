package kernels

import (
	"math"

	"github.com/ic-timon/pipebench/sched"
)

// MaxOfMins returns the largest row minimum of m, with rows handed to workers
// according to p. An empty row has minimum MaxInt; an empty matrix yields MinInt.
func MaxOfMins(m [][]int, workers int, p sched.Policy) int {
	return sched.Reduce(len(m), workers, p, math.MinInt,
		func(lo, hi int) int {
			best := math.MinInt
			for _, row := range m[lo:hi] {
				rowMin := math.MaxInt
				for _, x := range row {
					rowMin = min(rowMin, x)
				}
				best = max(best, rowMin)
			}
			return best
		},
		func(a, b int) int { return max(a, b) },
	)
}
