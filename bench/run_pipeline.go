package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/ic-timon/pipebench/bench/gen"
	"github.com/ic-timon/pipebench/bench/harness"
	"github.com/ic-timon/pipebench/pipeline"
	"github.com/ic-timon/pipebench/record"
)

func runPipeline(e *benchEnv) error {
	sets := e.cfg.Sizes.Pipeline
	if e.generate {
		paths, err := gen.WriteDatasets(e.ctx, e.cfg.DataDir, sets, e.cfg.Seed, 0)
		if err != nil {
			return fmt.Errorf("generate datasets: %w", err)
		}
		for _, p := range paths {
			fmt.Printf("Generated %s\n", p)
		}
	}

	opts := []pipeline.Option{pipeline.WithLogger(e.log)}
	if e.prom != nil {
		opts = append(opts, pipeline.WithObserver(e.prom))
	}

	return e.sweep(func(yield func(harness.Case) bool) {
		for _, ds := range sets {
			name := ds.Name()
			location := filepath.Join(e.cfg.DataDir, name)
			c := harness.Case{
				Kernel: "pipeline", Size: int64(ds.Count) * int64(ds.Dim),
				Title: []string{fmt.Sprintf("Size: %d vectors of dimension %d from file %s", ds.Count, ds.Dim, name)},
				Run: func(threads int) error {
					_, err := pipeline.Run(e.ctx, &pipeline.Config{
						Count:     ds.Count,
						Dim:       ds.Dim,
						Location:  location,
						Workers:   threads,
						ReadLimit: e.cfg.ReadLimit,
					}, opts...)
					return err
				},
			}
			if !yield(c) {
				return
			}
		}
	}, sweepOpts{describe: describePipelineError})
}

// describePipelineError renders dataset failures the way the text log
// reports them.
func describePipelineError(err error) string {
	var (
		ce *record.CountError
		de *record.DimensionError
	)
	switch {
	case errors.Is(err, record.ErrSourceUnavailable):
		return "FILE NOT FOUND"
	case errors.As(err, &ce):
		return fmt.Sprintf("INSUFFICIENT DATA: %d vectors declared", ce.Declared)
	case errors.As(err, &de):
		return fmt.Sprintf("DIMENSION MISMATCH: %d vs %d", de.Declared, de.Expected)
	case errors.Is(err, record.ErrMalformed):
		return "MALFORMED DATA: " + err.Error()
	}
	return err.Error()
}
