package kernels

import (
	"math"

	"github.com/ic-timon/pipebench/sched"
)

// IrregularLoad returns sum over i of sum_{j < a[i] mod 1000} sin(0.001 j).
// The cost of element i grows with a[i] mod 1000, so the run time depends on
// how p spreads the elements. Negative elements contribute nothing.
func IrregularLoad(a []int, workers int, p sched.Policy) float64 {
	return sched.Reduce(len(a), workers, p, 0.0,
		func(lo, hi int) float64 {
			var s float64
			for _, x := range a[lo:hi] {
				s += irregularTerm(x)
			}
			return s
		},
		func(x, y float64) float64 { return x + y },
	)
}

func irregularTerm(x int) float64 {
	var s float64
	for j := 0; j < x%1000; j++ {
		s += math.Sin(float64(j) * 0.001)
	}
	return s
}
