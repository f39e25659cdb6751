package main

import (
	"context"
	"fmt"
	"iter"
	"log/slog"
	"strconv"
	"strings"

	"github.com/ic-timon/pipebench/bench/harness"
	"github.com/ic-timon/pipebench/bench/metrics"
)

// kernelSpec binds a -kernel name to its runner. logName is the prefix of the
// text log (1_log.txt ... 8_log.txt).
type kernelSpec struct {
	name    string
	logName string
	run     func(*benchEnv) error
}

var allKernels = []kernelSpec{
	{"minmax", "1", runMinMax},
	{"dot", "2", runDot},
	{"integral", "3", runIntegral},
	{"maxmin", "4", runMaxMin},
	{"banded", "5", runBanded},
	{"schedule", "6", runSchedule},
	{"sum", "7", runSum},
	{"pipeline", "8", runPipeline},
}

func kernelNames() []string {
	names := make([]string, len(allKernels))
	for i, k := range allKernels {
		names[i] = k.name
	}
	return names
}

func lookupKernel(name string) (kernelSpec, bool) {
	for _, k := range allKernels {
		if k.name == name {
			return k, true
		}
	}
	return kernelSpec{}, false
}

type benchEnv struct {
	ctx      context.Context
	cfg      *harness.Config
	log      *slog.Logger
	runner   *harness.Runner
	prom     *metrics.Prometheus // nil unless -metrics-addr is set
	generate bool
	current  kernelSpec // kernel being run
}

// sweepOpts tunes how a kernel's sweeps are logged.
type sweepOpts struct {
	preamble []string
	describe func(error) string
}

// sweep measures every case produced by cases, appending each series to the
// current kernel's text log and finally writing its CSV report. Cases are
// pulled one at a time so that only one problem instance is held in memory.
func (e *benchEnv) sweep(cases iter.Seq[harness.Case], opts sweepOpts) error {
	kernel := e.current.name
	tl, err := metrics.CreateTextLog(e.cfg.ResultsDir, e.current.logName)
	if err != nil {
		return err
	}
	tl.Describe = opts.describe
	if len(opts.preamble) > 0 {
		tl.Preamble(opts.preamble...)
	}

	var all []harness.Series
	for c := range cases {
		fmt.Printf("%s: %s\n", kernel, strings.Join(c.Title, ", "))
		cost := metrics.StartSweep()
		s := e.runner.Sweep(c)
		e.log.Debug("sweep done", "kernel", kernel, "variant", c.Variant, "size", c.Size,
			"runtime", cost.Stop())

		tl.Series(s)
		all = append(all, s)
		printSeries(s)
	}
	if err := tl.Close(); err != nil {
		return err
	}
	path := metrics.ReportPath(e.cfg.ResultsDir, kernel)
	if err := metrics.WriteCSV(all, path); err != nil {
		return err
	}
	fmt.Printf("Report written to %s\n", path)
	return nil
}

func printSeries(s harness.Series) {
	if s.Err != nil {
		fmt.Printf("  failed: %v\n", s.Err)
		return
	}
	for _, m := range s.Points {
		if m.Err != nil {
			fmt.Printf("  T=%-3d failed: %v\n", m.Threads, m.Err)
			continue
		}
		fmt.Printf("  T=%-3d %10.3f ms  speedup %.2fx  efficiency %.2f\n",
			m.Threads, metrics.Millis(m.Avg), m.Speedup, m.Efficiency)
	}
}

func joinInts[T int | int64](v []T) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = strconv.FormatInt(int64(x), 10)
	}
	return strings.Join(parts, " ")
}

func joinStrings(v []string) string { return strings.Join(v, " ") }
