package sched

import "sync/atomic"

// A partitioner hands out half-open ranges of [0, n). next is called only by
// the worker whose index it is given.
type partitioner interface {
	next(worker int) (lo, hi int, ok bool)
}

func newPartitioner(n, workers int, p Policy) partitioner {
	switch p.Kind {
	case Dynamic:
		return &dynamicPart{n: int64(n), chunk: int64(max(p.Chunk, 1))}
	case Guided:
		return &guidedPart{n: int64(n), workers: int64(workers), min: int64(max(p.Chunk, 1))}
	default:
		if p.Chunk > 0 {
			return &cyclicPart{n: n, workers: workers, chunk: p.Chunk, cursor: make([]int, workers)}
		}
		return &blockPart{n: n, workers: workers, done: make([]bool, workers)}
	}
}

// blockPart gives each worker one contiguous block; sizes differ by at most one.
type blockPart struct {
	n, workers int
	done       []bool
}

func (b *blockPart) next(w int) (int, int, bool) {
	if b.done[w] {
		return 0, 0, false
	}
	b.done[w] = true
	lo, hi := w*b.n/b.workers, (w+1)*b.n/b.workers
	return lo, hi, lo < hi
}

// cyclicPart deals chunk-sized pieces round-robin: worker w owns chunks w, w+W, w+2W, ...
type cyclicPart struct {
	n, workers, chunk int
	cursor            []int
}

func (c *cyclicPart) next(w int) (int, int, bool) {
	k := c.cursor[w]*c.workers + w
	lo := k * c.chunk
	if lo >= c.n {
		return 0, 0, false
	}
	c.cursor[w]++
	return lo, min(lo+c.chunk, c.n), true
}

type dynamicPart struct {
	n, chunk int64
	cursor   atomic.Int64
}

func (d *dynamicPart) next(int) (int, int, bool) {
	hi := d.cursor.Add(d.chunk)
	lo := hi - d.chunk
	if lo >= d.n {
		return 0, 0, false
	}
	return int(lo), int(min(hi, d.n)), true
}

type guidedPart struct {
	n, workers, min int64
	cursor          atomic.Int64
}

func (g *guidedPart) next(int) (int, int, bool) {
	for {
		lo := g.cursor.Load()
		if lo >= g.n {
			return 0, 0, false
		}
		size := max((g.n-lo+g.workers-1)/g.workers, g.min)
		hi := min(lo+size, g.n)
		if g.cursor.CompareAndSwap(lo, hi) {
			return int(lo), int(hi), true
		}
	}
}
