package main

import (
	"fmt"

	"github.com/ic-timon/pipebench/bench/gen"
	"github.com/ic-timon/pipebench/bench/harness"
	"github.com/ic-timon/pipebench/kernels"
	"github.com/ic-timon/pipebench/sched"
)

var schedulePolicies = []sched.Policy{sched.StaticPolicy(), sched.DynamicPolicy(5), sched.GuidedPolicy()}

func runSchedule(e *benchEnv) error {
	sizes := e.cfg.Sizes.Schedule
	var names []string
	for _, p := range schedulePolicies {
		names = append(names, p.Kind.String())
	}
	preamble := []string{
		"Schedule Testing",
		"Threads tested: " + joinInts(e.runner.Threads),
		"Vector sizes: " + joinInts(sizes),
		fmt.Sprintf("Schedules: %s", joinStrings(names)),
	}

	return e.sweep(func(yield func(harness.Case) bool) {
		for _, n := range sizes {
			a := gen.Ints(n, 0, 1000, e.cfg.Seed)
			for _, p := range schedulePolicies {
				c := harness.Case{
					Kernel: "schedule", Variant: p.String(), Size: int64(n),
					Title: []string{fmt.Sprintf("Vector size: %d", n), "Schedule: " + p.Kind.String()},
					Run: func(threads int) error {
						kernels.IrregularLoad(a, threads, p)
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
