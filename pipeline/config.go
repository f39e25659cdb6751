package pipeline

import (
	"errors"
	"fmt"

	"github.com/ic-timon/pipebench/sched"
)

// ErrInvalidConfig is returned by Validate and Run for unusable parameters.
var ErrInvalidConfig = errors.New("pipeline: invalid config")

// Config holds the parameters of one pipeline run.
type Config struct {
	Count     int          // records to read (N), required
	Dim       int          // record dimension (D), required
	Location  string       // dataset path or URL, required
	Workers   int          // reduction workers per batch (T), <= 0 means runtime.NumCPU()
	Policy    sched.Policy // partition of each batch, default static
	ReadLimit float64      // records per second read from the source, <= 0 is unlimited
}

// DefaultConfig returns a config with the defaults of the benchmark: static
// partitioning, one worker per CPU and unthrottled reads. Count, Dim and
// Location must still be set.
func DefaultConfig() *Config {
	return &Config{Policy: sched.StaticPolicy()}
}

// OrDefault returns DefaultConfig if c is nil, otherwise normalizes c.
func (c *Config) OrDefault() *Config {
	if c == nil {
		return DefaultConfig()
	}
	c.Workers = sched.Workers(c.Workers)
	if c.ReadLimit < 0 {
		c.ReadLimit = 0
	}
	return c
}

// Validate reports whether c describes a runnable pipeline.
func (c *Config) Validate() error {
	switch {
	case c == nil:
		return fmt.Errorf("%w: nil config", ErrInvalidConfig)
	case c.Count <= 0:
		return fmt.Errorf("%w: record count %d", ErrInvalidConfig, c.Count)
	case c.Dim <= 0:
		return fmt.Errorf("%w: dimension %d", ErrInvalidConfig, c.Dim)
	case c.Location == "":
		return fmt.Errorf("%w: empty location", ErrInvalidConfig)
	}
	return nil
}
