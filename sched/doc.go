// Package sched splits an index space [0, n) across a fixed number of worker
// goroutines and runs a loop body or a reduction over it.
//
// Three partitioning policies mirror the loop schedules the benchmarks compare:
//
//	Static  - contiguous blocks, one per worker (or round-robin chunks when Chunk > 0)
//	Dynamic - workers grab fixed-size chunks from a shared cursor
//	Guided  - workers grab shrinking chunks, remaining/workers but never below Chunk
//
// Workers are started per call and exit when the index space is exhausted;
// there is no persistent pool.
package sched
