package kernels

import "github.com/ic-timon/pipebench/sched"

// ScalarProduct returns the integer dot product of a and b over the shorter length.
func ScalarProduct(a, b []int, workers int) int64 {
	n := min(len(a), len(b))
	return sched.Reduce(n, workers, sched.StaticPolicy(), int64(0),
		func(lo, hi int) int64 {
			var s int64
			for i := lo; i < hi; i++ {
				s += int64(a[i]) * int64(b[i])
			}
			return s
		},
		func(x, y int64) int64 { return x + y },
	)
}
