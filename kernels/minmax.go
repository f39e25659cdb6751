package kernels

import (
	"math"
	"sync"

	"github.com/ic-timon/pipebench/sched"
)

// MinMaxCritical returns the minimum and maximum of v, updating one shared
// pair under a mutex for every element. Empty input yields (MaxInt, MinInt).
func MinMaxCritical(v []int, workers int) (lo, hi int) {
	lo, hi = math.MaxInt, math.MinInt
	var mu sync.Mutex
	sched.For(len(v), workers, sched.StaticPolicy(), func(from, to int) {
		for _, x := range v[from:to] {
			mu.Lock()
			if x < lo {
				lo = x
			}
			if x > hi {
				hi = x
			}
			mu.Unlock()
		}
	})
	return lo, hi
}

type minMax struct{ lo, hi int }

// MinMaxReduction returns the minimum and maximum of v from per-worker
// partials. Empty input yields (MaxInt, MinInt).
func MinMaxReduction(v []int, workers int) (lo, hi int) {
	r := sched.Reduce(len(v), workers, sched.StaticPolicy(), minMax{math.MaxInt, math.MinInt},
		func(from, to int) minMax {
			m := minMax{math.MaxInt, math.MinInt}
			for _, x := range v[from:to] {
				m.lo = min(m.lo, x)
				m.hi = max(m.hi, x)
			}
			return m
		},
		func(a, b minMax) minMax { return minMax{min(a.lo, b.lo), max(a.hi, b.hi)} },
	)
	return r.lo, r.hi
}
