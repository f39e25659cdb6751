package main

import (
	"fmt"

	"github.com/ic-timon/pipebench/bench/gen"
	"github.com/ic-timon/pipebench/bench/harness"
	"github.com/ic-timon/pipebench/kernels"
)

func runMinMax(e *benchEnv) error {
	sizes := e.cfg.Sizes.MinMax
	return e.sweep(func(yield func(harness.Case) bool) {
		for _, n := range sizes {
			v := gen.Ints(n, 0, 10000, e.cfg.Seed)
			title := fmt.Sprintf("Vector size: %d", n)
			critical := harness.Case{
				Kernel: "minmax", Variant: "critical", Size: int64(n),
				Title: []string{title, "Method: critical"},
				Run: func(threads int) error {
					kernels.MinMaxCritical(v, threads)
					return nil
				},
			}
			reduction := harness.Case{
				Kernel: "minmax", Variant: "reduction", Size: int64(n),
				Title: []string{title, "Method: reduction"},
				Run: func(threads int) error {
					kernels.MinMaxReduction(v, threads)
					return nil
				},
			}
			if !yield(critical) || !yield(reduction) {
				return
			}
		}
	}, sweepOpts{preamble: []string{"Vector sizes: " + joinInts(sizes)}})
}
