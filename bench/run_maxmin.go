package main

import (
	"fmt"

	"github.com/ic-timon/pipebench/bench/gen"
	"github.com/ic-timon/pipebench/bench/harness"
	"github.com/ic-timon/pipebench/kernels"
	"github.com/ic-timon/pipebench/sched"
)

func runMaxMin(e *benchEnv) error {
	var sizes []string
	for _, m := range e.cfg.Sizes.MaxMin {
		sizes = append(sizes, fmt.Sprintf("  %dx%d (%d elements)", m.Rows, m.Cols, int64(m.Rows)*int64(m.Cols)))
	}
	preamble := append([]string{
		"Threads tested: " + joinInts(e.runner.Threads),
		"Matrix sizes tested:",
	}, sizes...)

	return e.sweep(func(yield func(harness.Case) bool) {
		for _, size := range e.cfg.Sizes.MaxMin {
			m := gen.Matrix(size.Rows, size.Cols, -10000, 10000, e.cfg.Seed)
			elements := int64(size.Rows) * int64(size.Cols)
			c := harness.Case{
				Kernel: "maxmin", Size: elements,
				Title: []string{fmt.Sprintf("Matrix: rows = %d, cols = %d, elements = %d", size.Rows, size.Cols, elements)},
				Run: func(threads int) error {
					kernels.MaxOfMins(m, threads, sched.StaticPolicy())
					return nil
				},
			}
			if !yield(c) {
				return
			}
		}
	}, sweepOpts{preamble: preamble})
}
