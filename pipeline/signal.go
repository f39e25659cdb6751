package pipeline

import "sync/atomic"

// Signal carries the producer's completion and failure flags to the consumer.
// Both flags only ever go from false to true.
type Signal struct {
	finished atomic.Bool
	failed   atomic.Bool
}

// Finish marks production complete.
func (s *Signal) Finish() { s.finished.Store(true) }

// Fail marks the run invalid and production complete. The failure flag is
// raised first so that a consumer observing completion also observes it.
func (s *Signal) Fail() {
	s.failed.Store(true)
	s.finished.Store(true)
}

// Finished reports whether the producer is done.
func (s *Signal) Finished() bool { return s.finished.Load() }

// Failed reports whether the producer hit a fatal error.
func (s *Signal) Failed() bool { return s.failed.Load() }
