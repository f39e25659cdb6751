package main

import (
	"fmt"

	"github.com/ic-timon/pipebench/bench/gen"
	"github.com/ic-timon/pipebench/bench/harness"
	"github.com/ic-timon/pipebench/kernels"
)

func runDot(e *benchEnv) error {
	sizes := e.cfg.Sizes.Dot
	return e.sweep(func(yield func(harness.Case) bool) {
		for _, n := range sizes {
			a := gen.Ints(n, 0, 1000, e.cfg.Seed)
			b := gen.Ints(n, 0, 1000, e.cfg.Seed+1)
			c := harness.Case{
				Kernel: "dot", Size: int64(n),
				Title: []string{fmt.Sprintf("Vector size: %d", n)},
				Run: func(threads int) error {
					kernels.ScalarProduct(a, b, threads)
					return nil
				},
			}
			if !yield(c) {
				return
			}
		}
	}, sweepOpts{preamble: []string{"Vector sizes: " + joinInts(sizes)}})
}
