package pipeline

import "sync"

// Buffer is the handoff between the producer and the consumer.
// One mutex guards both sides.
type Buffer struct {
	mu   sync.Mutex
	recs [][]float64
}

// NewBuffer returns an empty buffer with room for capacity records.
func NewBuffer(capacity int) *Buffer {
	return &Buffer{recs: make([][]float64, 0, max(capacity, 0))}
}

// Append adds rec at the back.
func (b *Buffer) Append(rec []float64) {
	b.mu.Lock()
	b.recs = append(b.recs, rec)
	b.mu.Unlock()
}

// DrainAll removes and returns everything currently buffered, in append order.
// It returns nil when the buffer is empty.
func (b *Buffer) DrainAll() [][]float64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.recs) == 0 {
		return nil
	}
	out := b.recs
	b.recs = make([][]float64, 0, cap(out))
	return out
}

// Len reports the number of buffered records.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.recs)
}
