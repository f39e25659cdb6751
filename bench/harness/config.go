// Package harness runs thread-count sweeps: every configuration is repeated,
// averaged and compared against a single-worker baseline.
package harness

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/ic-timon/pipebench/bench/gen"
)

// Matrix is a rows x cols problem size.
type Matrix struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// Sizes lists the problem sizes swept for each kernel.
type Sizes struct {
	MinMax   []int         `yaml:"minmax"`
	Dot      []int         `yaml:"dot"`
	Integral []float64     `yaml:"integral"` // upper bounds b of [0, b], sampled with n = b
	MaxMin   []Matrix      `yaml:"maxmin"`
	Banded   []int         `yaml:"banded"` // n of the n x n banded and lower-triangular matrices
	Schedule []int         `yaml:"schedule"`
	Sum      []int         `yaml:"sum"`
	Pipeline []gen.Dataset `yaml:"pipeline"`
}

// Config holds sweep parameters.
type Config struct {
	Threads    []int   `yaml:"threads"`     // worker counts; 1 is always measured as the baseline
	Repeats    int     `yaml:"repeats"`     // runs averaged per configuration, default 3
	ResultsDir string  `yaml:"results"`     // text logs and CSV reports, default "Results"
	DataDir    string  `yaml:"data"`        // pipeline datasets, default "."
	Seed       int64   `yaml:"seed"`        // generator seed, default 42
	ReadLimit  float64 `yaml:"read_limit"`  // pipeline read throttle in records/s, 0 = off
	Sizes      Sizes   `yaml:"sizes"`
}

// DefaultConfig returns the standard sweep: six worker counts, three repeats
// and the full size ladder of every kernel.
func DefaultConfig() *Config {
	return &Config{
		Threads:    []int{1, 2, 4, 6, 8, 12},
		Repeats:    3,
		ResultsDir: "Results",
		DataDir:    ".",
		Seed:       42,
		Sizes:      defaultSizes(),
	}
}

func defaultSizes() Sizes {
	return Sizes{
		MinMax:   []int{100_000, 500_000, 1_000_000, 5_000_000},
		Dot:      []int{100_000, 1_000_000, 10_000_000, 50_000_000},
		Integral: []float64{1e3, 1e4, 1e5, 1e6, 1e7, 5e7},
		MaxMin:   []Matrix{{1000, 1000}, {5000, 5000}, {10000, 10000}},
		Banded:   []int{1000, 3000, 5000},
		Schedule: []int{10_000, 100_000, 500_000},
		Sum:      []int{500_000, 1_000_000, 5_000_000, 10_000_000},
		Pipeline: []gen.Dataset{{Count: 500, Dim: 100}, {Count: 1000, Dim: 50}, {Count: 5000, Dim: 50}, {Count: 1000, Dim: 1000}},
	}
}

// OrDefault returns DefaultConfig if c is nil, otherwise fills unset fields of c.
func (c *Config) OrDefault() *Config {
	if c == nil {
		return DefaultConfig()
	}
	d := DefaultConfig()
	if len(c.Threads) == 0 {
		c.Threads = d.Threads
	}
	if c.Repeats <= 0 {
		c.Repeats = d.Repeats
	}
	if c.ResultsDir == "" {
		c.ResultsDir = d.ResultsDir
	}
	if c.DataDir == "" {
		c.DataDir = d.DataDir
	}
	if c.Seed == 0 {
		c.Seed = d.Seed
	}
	s := &c.Sizes
	if s.MinMax == nil {
		s.MinMax = d.Sizes.MinMax
	}
	if s.Dot == nil {
		s.Dot = d.Sizes.Dot
	}
	if s.Integral == nil {
		s.Integral = d.Sizes.Integral
	}
	if s.MaxMin == nil {
		s.MaxMin = d.Sizes.MaxMin
	}
	if s.Banded == nil {
		s.Banded = d.Sizes.Banded
	}
	if s.Schedule == nil {
		s.Schedule = d.Sizes.Schedule
	}
	if s.Sum == nil {
		s.Sum = d.Sizes.Sum
	}
	if s.Pipeline == nil {
		s.Pipeline = d.Sizes.Pipeline
	}
	return c
}

// LoadConfig reads a YAML sweep file. Fields left out keep their defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := &Config{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return c.OrDefault(), nil
}

// ThreadList returns the sorted, de-duplicated positive worker counts of c
// that do not exceed maxThreads (<= 0 means 2 x runtime.NumCPU()).
func (c *Config) ThreadList(maxThreads int) []int {
	if maxThreads <= 0 {
		maxThreads = 2 * runtime.NumCPU()
	}
	var out []int
	for _, t := range c.Threads {
		if t > 0 && t <= maxThreads {
			out = append(out, t)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}
