package sched

import (
	"runtime"

	"github.com/creachadair/taskgroup"
)

// Workers normalises a requested worker count: n <= 0 means runtime.NumCPU().
func Workers(n int) int {
	if n <= 0 {
		return runtime.NumCPU()
	}
	return n
}

// For calls body on disjoint ranges covering [0, n), spread over workers
// goroutines according to p, and returns when every range is done.
// A single worker runs body on the calling goroutine.
func For(n, workers int, p Policy, body func(lo, hi int)) {
	if n <= 0 {
		return
	}
	workers = min(Workers(workers), n)
	part := newPartitioner(n, workers, p)
	if workers == 1 {
		drain(part, 0, body)
		return
	}
	g := taskgroup.New(nil)
	for w := 0; w < workers; w++ {
		g.Run(func() { drain(part, w, body) })
	}
	g.Wait()
}

// Reduce evaluates body on disjoint ranges covering [0, n) and folds the
// results with combine. Each worker folds its own ranges into a private
// partial starting from zero; the partials are then combined one at a time.
// combine must be associative and commutative for the result to be
// independent of workers and p.
func Reduce[T any](n, workers int, p Policy, zero T, body func(lo, hi int) T, combine func(a, b T) T) T {
	if n <= 0 {
		return zero
	}
	workers = min(Workers(workers), n)
	part := newPartitioner(n, workers, p)
	partial := func(w int) T {
		acc := zero
		drain(part, w, func(lo, hi int) { acc = combine(acc, body(lo, hi)) })
		return acc
	}
	if workers == 1 {
		return partial(0)
	}

	total := zero
	g := taskgroup.New(nil)
	c := taskgroup.Gather(g.Go, func(v T) { total = combine(total, v) })
	for w := 0; w < workers; w++ {
		c.Run(func() T { return partial(w) })
	}
	g.Wait()
	return total
}

func drain(part partitioner, w int, body func(lo, hi int)) {
	for {
		lo, hi, ok := part.next(w)
		if !ok {
			return
		}
		body(lo, hi)
	}
}
