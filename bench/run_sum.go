package main

import (
	"fmt"

	"github.com/ic-timon/pipebench/bench/gen"
	"github.com/ic-timon/pipebench/bench/harness"
	"github.com/ic-timon/pipebench/kernels"
)

func runSum(e *benchEnv) error {
	sizes := e.cfg.Sizes.Sum
	var names []string
	for _, m := range kernels.Methods {
		names = append(names, m.String())
	}
	preamble := []string{
		"Reduction Methods Testing",
		"Threads tested: " + joinInts(e.runner.Threads),
		"Vector sizes: " + joinInts(sizes),
		"Methods: " + joinStrings(names),
	}

	return e.sweep(func(yield func(harness.Case) bool) {
		for _, n := range sizes {
			a := gen.Floats(n, 0, 1000, e.cfg.Seed)
			for _, m := range kernels.Methods {
				c := harness.Case{
					Kernel: "sum", Variant: m.String(), Size: int64(n),
					Title: []string{fmt.Sprintf("Vector size: %d", n), "Method: " + m.String()},
					Run: func(threads int) error {
						kernels.Sum(a, threads, m)
						return nil
					},
				}
				if !yield(c) {
					return
				}
			}
		}
	}, sweepOpts{preamble: preamble})
}
