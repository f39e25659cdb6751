package harness

import (
	"fmt"
	"log/slog"
	"time"
)

// Measurement is the averaged timing of one worker count.
type Measurement struct {
	Threads    int
	Avg        time.Duration
	Runs       []time.Duration // individual repeats
	Speedup    float64         // baseline / Avg
	Efficiency float64         // Speedup / Threads
	Err        error
}

// Case is one problem instance to sweep.
type Case struct {
	Kernel  string   // short kernel name, e.g. "pipeline"
	Variant string   // method or schedule being compared, may be empty
	Size    int64    // problem size for reports
	Title   []string // log lines describing the instance
	Run     func(threads int) error
}

// Series is the outcome of sweeping one Case.
type Series struct {
	Case     Case
	Baseline time.Duration
	Points   []Measurement // baseline first
	Err      error         // set when the baseline itself failed
}

// Measure runs run repeats times and returns the mean wall time and the
// individual timings. It stops at the first error.
func Measure(repeats int, run func() error) (time.Duration, []time.Duration, error) {
	if repeats <= 0 {
		repeats = 1
	}
	runs := make([]time.Duration, 0, repeats)
	var total time.Duration
	for i := 0; i < repeats; i++ {
		t0 := time.Now()
		if err := run(); err != nil {
			return 0, runs, err
		}
		d := time.Since(t0)
		runs = append(runs, d)
		total += d
	}
	return total / time.Duration(repeats), runs, nil
}

// Runner sweeps cases over a list of worker counts.
type Runner struct {
	Threads []int // worker counts; 1 is skipped because the baseline covers it
	Repeats int
	Logger  *slog.Logger
	// OnMeasurement, if set, is called after every measured worker count,
	// including a failed baseline.
	OnMeasurement func(Case, Measurement)
}

// Sweep measures c at one worker (the baseline) and then at every other
// worker count. A failing worker count is recorded and the sweep continues;
// a failing baseline ends the sweep.
func (r *Runner) Sweep(c Case) Series {
	log := r.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	log = log.With("kernel", c.Kernel, "variant", c.Variant, "size", c.Size)

	s := Series{Case: c}
	base, runs, err := Measure(r.Repeats, func() error { return c.Run(1) })
	if err != nil {
		log.Warn("baseline failed", "err", err)
		s.Err = err
		if r.OnMeasurement != nil {
			r.OnMeasurement(c, Measurement{Threads: 1, Runs: runs, Err: err})
		}
		return s
	}
	s.Baseline = base
	s.add(Measurement{Threads: 1, Avg: base, Runs: runs, Speedup: 1, Efficiency: 1}, r.OnMeasurement)
	log.Info("measured", "threads", 1, "avg", base)

	for _, t := range r.Threads {
		if t == 1 {
			continue
		}
		avg, runs, err := Measure(r.Repeats, func() error { return c.Run(t) })
		m := Measurement{Threads: t, Runs: runs, Err: err}
		if err != nil {
			log.Warn("configuration failed", "threads", t, "err", err)
		} else {
			m.Avg = avg
			m.Speedup, m.Efficiency = Speedup(base, avg, t)
			log.Info("measured", "threads", t, "avg", avg, "speedup", fmt.Sprintf("%.2f", m.Speedup))
		}
		s.add(m, r.OnMeasurement)
	}
	return s
}

func (s *Series) add(m Measurement, on func(Case, Measurement)) {
	s.Points = append(s.Points, m)
	if on != nil {
		on(s.Case, m)
	}
}

// Speedup returns base/avg and that value divided by threads.
// A zero avg yields zero for both.
func Speedup(base, avg time.Duration, threads int) (speedup, efficiency float64) {
	if avg <= 0 || threads <= 0 {
		return 0, 0
	}
	speedup = float64(base) / float64(avg)
	return speedup, speedup / float64(threads)
}
