package pipeline

import (
	"log/slog"

	"github.com/ic-timon/pipebench/record"
)

// Observer is notified of pipeline progress. DrainedBatch is called from the
// consumer goroutine only; Finished is called once per run after both stages
// have stopped.
type Observer interface {
	DrainedBatch(batch [][]float64, partial float64)
	Finished(res Result, err error)
}

type options struct {
	observer Observer
	logger   *slog.Logger
	opener   record.Opener
}

// Option configures Run.
type Option func(*options)

// WithObserver registers o to watch the run.
func WithObserver(o Observer) Option {
	return func(opts *options) { opts.observer = o }
}

// WithLogger sets the logger. A nil logger discards output.
func WithLogger(l *slog.Logger) Option {
	return func(opts *options) { opts.logger = l }
}

// WithOpener replaces record.DefaultStorage as the dataset opener.
func WithOpener(op record.Opener) Option {
	return func(opts *options) { opts.opener = op }
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}
	if o.observer == nil {
		o.observer = nopObserver{}
	}
	return o
}

type nopObserver struct{}

func (nopObserver) DrainedBatch([][]float64, float64) {}
func (nopObserver) Finished(Result, error)            {}
