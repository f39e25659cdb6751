package main

import (
	"fmt"

	"github.com/ic-timon/pipebench/bench/gen"
	"github.com/ic-timon/pipebench/bench/harness"
	"github.com/ic-timon/pipebench/kernels"
	"github.com/ic-timon/pipebench/sched"
)

// bandedPolicies are the schedules compared on banded and triangular matrices.
var bandedPolicies = []sched.Policy{sched.StaticPolicy(), sched.DynamicPolicy(10), sched.GuidedPolicy()}

func runBanded(e *benchEnv) error {
	return e.sweep(func(yield func(harness.Case) bool) {
		for _, kind := range []string{"banded", "lower"} {
			for _, n := range e.cfg.Sizes.Banded {
				var m [][]int
				if kind == "banded" {
					m = gen.Banded(n, n/10, e.cfg.Seed)
				} else {
					m = gen.LowerTriangular(n, e.cfg.Seed)
				}
				elements := int64(n) * int64(n)
				for _, p := range bandedPolicies {
					c := harness.Case{
						Kernel: "banded", Variant: kind + "/" + p.Kind.String(), Size: elements,
						Title: []string{fmt.Sprintf("Size: %dx%d, elements = %d, Matrix type: %s, Schedule: %s", n, n, elements, kind, p.Kind)},
						Run: func(threads int) error {
							kernels.MaxOfMins(m, threads, p)
							return nil
						},
					}
					if !yield(c) {
						return
					}
				}
			}
		}
	}, sweepOpts{})
}
