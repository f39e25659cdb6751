package main

import (
	"fmt"
	"math"

	"github.com/ic-timon/pipebench/bench/harness"
	"github.com/ic-timon/pipebench/kernels"
)

// runIntegral integrates sin over [0, b] with n = b midpoints, so the step
// stays at 1 while the work grows with b.
func runIntegral(e *benchEnv) error {
	const a = 0.0
	return e.sweep(func(yield func(harness.Case) bool) {
		for _, b := range e.cfg.Sizes.Integral {
			n := int(b)
			if n <= 0 {
				continue
			}
			h := (b - a) / float64(n)
			c := harness.Case{
				Kernel: "integral", Size: int64(n),
				Title: []string{fmt.Sprintf("Interval: [%g, %g], N = %d, h = %g", a, b, n, h)},
				Run: func(threads int) error {
					kernels.Integral(math.Sin, a, b, n, threads)
					return nil
				},
			}
			if !yield(c) {
				return
			}
		}
	}, sweepOpts{})
}
