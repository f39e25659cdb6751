package record

import (
	"context"

	"golang.org/x/time/rate"
)

// Source reads records from a dataset location.
type Source struct {
	// Opener resolves locations; nil means DefaultStorage.
	Opener Opener
	// Limit, if set, is waited on once per record.
	Limit *rate.Limiter
}

// NewLimiter returns a limiter admitting perSecond records per second,
// or nil when perSecond <= 0.
func NewLimiter(perSecond float64) *rate.Limiter {
	if perSecond <= 0 {
		return nil
	}
	return rate.NewLimiter(rate.Limit(perSecond), 1)
}

// Stream opens location, checks its header against n records of dimension
// dim and passes the first n records to sink in file order, one at a time.
// The header is returned whenever it was decoded. On a header mismatch sink
// is never called.
func (s *Source) Stream(ctx context.Context, location string, n, dim int, sink func([]float64)) (Header, error) {
	opener := s.Opener
	if opener == nil {
		opener = DefaultStorage
	}
	rc, err := opener.Open(ctx, location)
	if err != nil {
		return Header{}, err
	}
	defer rc.Close()

	rd, err := NewReader(rc)
	if err != nil {
		return Header{}, err
	}
	h := rd.Header()
	if err := h.Check(n, dim); err != nil {
		return h, err
	}
	for i := 0; i < n; i++ {
		if s.Limit != nil {
			if err := s.Limit.Wait(ctx); err != nil {
				return h, err
			}
		}
		rec, err := rd.Next()
		if err != nil {
			return h, err
		}
		sink(rec)
	}
	return h, nil
}

// Load reads the first n records of dimension dim into memory.
func (s *Source) Load(ctx context.Context, location string, n, dim int) ([][]float64, error) {
	rows := make([][]float64, 0, n)
	_, err := s.Stream(ctx, location, n, dim, func(rec []float64) {
		rows = append(rows, rec)
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}
