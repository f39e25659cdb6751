package kernels

import "github.com/ic-timon/pipebench/sched"

// Integral approximates the integral of f over [a, b] by the midpoint rule
// with n subintervals: h * sum f(a + (i+0.5)h), h = (b-a)/n. n <= 0 yields 0.
func Integral(f func(float64) float64, a, b float64, n, workers int) float64 {
	if n <= 0 {
		return 0
	}
	h := (b - a) / float64(n)
	sum := sched.Reduce(n, workers, sched.StaticPolicy(), 0.0,
		func(lo, hi int) float64 {
			var s float64
			for i := lo; i < hi; i++ {
				s += f(a + (float64(i)+0.5)*h)
			}
			return s
		},
		func(x, y float64) float64 { return x + y },
	)
	return sum * h
}
