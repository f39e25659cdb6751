// Package metrics records benchmark results: runtime costs of a sweep,
// text logs, CSV reports and Prometheus collectors.
package metrics

import (
	"log/slog"
	"runtime"
	"runtime/debug"
	"time"
)

// snapshot is a point-in-time view of the Go runtime.
type snapshot struct {
	ts        time.Time
	heapAlloc uint64
	totalAlloc   uint64 // cumulative bytes allocated
	numGC     uint32
}

func take() snapshot {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return snapshot{ts: time.Now(), heapAlloc: m.HeapAlloc, totalAlloc: m.TotalAlloc, numGC: m.NumGC}
}

// Sweep tracks the runtime cost of one harness sweep.
type Sweep struct {
	start snapshot
}

// StartSweep collects garbage left by the previous case, returns freed
// memory to the OS and records the starting state.
func StartSweep() *Sweep {
	runtime.GC()
	debug.FreeOSMemory()
	return &Sweep{start: take()}
}

// Stop returns the costs accumulated since StartSweep.
func (s *Sweep) Stop() SweepStats {
	return sweepStats(s.start, take())
}

// SweepStats is the runtime cost of a sweep.
type SweepStats struct {
	Elapsed    time.Duration
	Allocated  uint64  // bytes allocated during the sweep
	AllocRate  float64 // bytes/s
	GCs        uint32
	HeapAlloc  uint64 // live heap at the end
	Goroutines int
}

func sweepStats(before, after snapshot) SweepStats {
	st := SweepStats{
		Elapsed:    after.ts.Sub(before.ts),
		HeapAlloc:  after.heapAlloc,
		Goroutines: runtime.NumGoroutine(),
	}
	if after.totalAlloc >= before.totalAlloc {
		st.Allocated = after.totalAlloc - before.totalAlloc
	}
	if secs := st.Elapsed.Seconds(); secs > 0 {
		st.AllocRate = float64(st.Allocated) / secs
	}
	if after.numGC >= before.numGC {
		st.GCs = after.numGC - before.numGC
	}
	return st
}

// LogValue implements slog.LogValuer.
func (st SweepStats) LogValue() slog.Value {
	const mb = 1 << 20
	return slog.GroupValue(
		slog.Duration("elapsed", st.Elapsed),
		slog.Float64("alloc_mb", float64(st.Allocated)/mb),
		slog.Float64("alloc_mb_per_s", st.AllocRate/mb),
		slog.Any("gc", st.GCs),
		slog.Float64("heap_mb", float64(st.HeapAlloc)/mb),
		slog.Int("goroutines", st.Goroutines),
	)
}
