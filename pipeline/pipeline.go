package pipeline

import (
	"context"
	"runtime"
	"time"

	"github.com/creachadair/taskgroup"

	"github.com/ic-timon/pipebench/record"
)

// Result summarises one pipeline run.
type Result struct {
	Sum     float64       // accumulated pair sum; zero when the run failed
	Elapsed time.Duration // wall time of both stages
	Records int           // records taken out of the buffer by the consumer
	Batches int           // non-empty drains
}

// Run reads cfg.Count records of dimension cfg.Dim from cfg.Location and
// returns the sum over every drained batch of the dot products between its
// consecutive records.
//
// The producer and the consumer run concurrently and Run returns only after
// both have stopped. A failure to open or validate the dataset is returned
// unchanged and matches one of the record error sentinels. ctx bounds opening
// a remote dataset and the read throttle; once records flow the run is not
// cancellable.
func Run(ctx context.Context, cfg *Config, opts ...Option) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}
	c := *cfg
	c.OrDefault()
	o := buildOptions(opts)
	log := o.logger.With("location", c.Location, "n", c.Count, "dim", c.Dim, "workers", c.Workers)

	var (
		buf = NewBuffer(c.Count)
		sig Signal
		src = record.Source{Opener: o.opener, Limit: record.NewLimiter(c.ReadLimit)}
		red = Reducer{Workers: c.Workers, Policy: c.Policy}

		prodErr error
		res     Result
	)

	start := time.Now()
	g := taskgroup.New(nil)
	g.Run(func() {
		if _, err := src.Stream(ctx, c.Location, c.Count, c.Dim, buf.Append); err != nil {
			prodErr = err
			sig.Fail()
			return
		}
		sig.Finish()
	})
	g.Run(func() {
		for !sig.Failed() {
			// Completion must be read before the drain: a record appended
			// after an empty drain is only missed if completion was already
			// set, and then no further append can happen.
			done := sig.Finished()
			batch := buf.DrainAll()
			if len(batch) == 0 {
				if done {
					return
				}
				runtime.Gosched()
				continue
			}
			partial := red.Reduce(batch)
			res.Sum += partial
			res.Records += len(batch)
			res.Batches++
			o.observer.DrainedBatch(batch, partial)
		}
	})
	g.Wait()
	res.Elapsed = time.Since(start)

	if prodErr != nil {
		log.Warn("pipeline failed", "err", prodErr, "records", res.Records)
		res.Sum = 0
		o.observer.Finished(res, prodErr)
		return res, prodErr
	}
	log.Debug("pipeline done", "sum", res.Sum, "records", res.Records, "batches", res.Batches, "elapsed", res.Elapsed)
	o.observer.Finished(res, nil)
	return res, nil
}
