package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ic-timon/pipebench/bench/gen"
	"github.com/ic-timon/pipebench/bench/harness"
	"github.com/ic-timon/pipebench/bench/metrics"
	"github.com/ic-timon/pipebench/record"
)

func TestParseThreads(t *testing.T) {
	got, err := parseThreads("1, 2,4,")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 4}, got)

	for _, bad := range []string{"", "1,x", "0", "-2"} {
		_, err := parseThreads(bad)
		assert.Error(t, err, bad)
	}
}

func TestNewLogger(t *testing.T) {
	l, err := newLogger("warn", true)
	require.NoError(t, err)
	assert.False(t, l.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, l.Enabled(context.Background(), slog.LevelWarn))

	_, err = newLogger("loud", false)
	assert.Error(t, err)
}

func TestStopMetricsLingers(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	p := metrics.NewPrometheus()
	mux := http.NewServeMux()
	mux.Handle("/metrics", p.Handler())
	srv := &http.Server{Addr: ln.Addr().String(), Handler: mux, ReadHeaderTimeout: time.Second}
	served := make(chan error, 1)
	go func() { served <- srv.Serve(ln) }()

	const linger = 300 * time.Millisecond
	start := time.Now()
	done := make(chan error, 1)
	go func() { done <- stopMetrics(srv, linger, slog.New(slog.DiscardHandler)) }()

	url := "http://" + ln.Addr().String() + "/metrics"
	resp, err := http.Get(url)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	require.NoError(t, <-done)
	assert.GreaterOrEqual(t, time.Since(start), linger)
	assert.ErrorIs(t, <-served, http.ErrServerClosed)
	_, err = http.Get(url)
	assert.Error(t, err)
}

func TestLookupKernel(t *testing.T) {
	for _, name := range kernelNames() {
		k, ok := lookupKernel(name)
		require.True(t, ok, name)
		assert.Equal(t, name, k.name)
	}
	_, ok := lookupKernel("nope")
	assert.False(t, ok)
}

func TestDescribePipelineError(t *testing.T) {
	assert.Equal(t, "FILE NOT FOUND", describePipelineError(fmt.Errorf("%w: x", record.ErrSourceUnavailable)))
	assert.Equal(t, "INSUFFICIENT DATA: 3 vectors declared", describePipelineError(&record.CountError{Requested: 5, Declared: 3}))
	assert.Equal(t, "DIMENSION MISMATCH: 3 vs 2", describePipelineError(&record.DimensionError{Expected: 2, Declared: 3}))
}

func testEnv(t *testing.T, kernel string) *benchEnv {
	t.Helper()
	dir := t.TempDir()
	cfg := (&harness.Config{
		Threads:    []int{1, 2},
		Repeats:    1,
		ResultsDir: filepath.Join(dir, "Results"),
		DataDir:    filepath.Join(dir, "data"),
		Sizes: harness.Sizes{
			MinMax:   []int{1000},
			Dot:      []int{1000},
			Integral: []float64{1000},
			MaxMin:   []harness.Matrix{{Rows: 20, Cols: 10}},
			Banded:   []int{30},
			Schedule: []int{200},
			Sum:      []int{1000},
			Pipeline: []gen.Dataset{{Count: 50, Dim: 4}, {Count: 10, Dim: 3}},
		},
	}).OrDefault()
	k, ok := lookupKernel(kernel)
	require.True(t, ok)
	return &benchEnv{
		ctx:     context.Background(),
		cfg:     cfg,
		log:     slog.New(slog.DiscardHandler),
		runner:  &harness.Runner{Threads: cfg.ThreadList(0), Repeats: cfg.Repeats},
		prom:    metrics.NewPrometheus(),
		current: k,
	}
}

func TestRunAllKernelsWriteLogs(t *testing.T) {
	for _, k := range allKernels {
		if k.name == "pipeline" {
			continue
		}
		t.Run(k.name, func(t *testing.T) {
			env := testEnv(t, k.name)
			require.NoError(t, k.run(env))

			body, err := os.ReadFile(filepath.Join(env.cfg.ResultsDir, k.logName+"_log.txt"))
			require.NoError(t, err)
			assert.Contains(t, string(body), "Threads: 1\n")
			assert.Contains(t, string(body), "Threads: 2\n")
			assert.FileExists(t, metrics.ReportPath(env.cfg.ResultsDir, k.name))
		})
	}
}

func TestRunPipelineGeneratesAndLogs(t *testing.T) {
	env := testEnv(t, "pipeline")
	env.generate = true
	// The second dataset is replaced by one that declares too few records.
	require.NoError(t, os.MkdirAll(env.cfg.DataDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(env.cfg.DataDir, "vectors_10_3.txt"), []byte("2 3\n1 2 3\n4 5 6\n"), 0o644))

	require.NoError(t, runPipeline(env))

	body, err := os.ReadFile(filepath.Join(env.cfg.ResultsDir, "8_log.txt"))
	require.NoError(t, err)
	lines := strings.Split(string(body), "\n")
	assert.Equal(t, "Size: 50 vectors of dimension 4 from file vectors_50_4.txt", lines[0])
	assert.Equal(t, "Threads: 1", lines[1])
	assert.Contains(t, string(body), "Size: 10 vectors of dimension 3 from file vectors_10_3.txt (INSUFFICIENT DATA: 2 vectors declared)\n")
}
