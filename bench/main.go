// Command bench sweeps the pipebench kernels over worker counts and writes
// text logs, CSV reports and, optionally, Prometheus metrics.
//
//	bench -kernel pipeline -gen -threads 1,2,4 -repeats 3
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/ic-timon/pipebench/bench/harness"
	"github.com/ic-timon/pipebench/bench/metrics"
	"github.com/ic-timon/pipebench/simd"
)

func main() {
	kernel := flag.String("kernel", "", "kernel to run: "+strings.Join(kernelNames(), "|")+"|all")
	configPath := flag.String("config", "", "YAML sweep file")
	results := flag.String("results", "", "directory for logs and CSV reports (default Results)")
	data := flag.String("data", "", "directory holding pipeline datasets (default .)")
	generate := flag.Bool("gen", false, "generate missing pipeline datasets before running")
	threads := flag.String("threads", "", "comma-separated worker counts, e.g. 1,2,4")
	repeats := flag.Int("repeats", 0, "runs averaged per configuration (default 3)")
	readLimit := flag.Float64("read-limit", 0, "pipeline read throttle in records/s, 0 = off")
	metricsAddr := flag.String("metrics-addr", "", "serve Prometheus metrics on this address, e.g. :9090; the server stops when the sweeps end unless -metrics-linger is set")
	metricsLinger := flag.Duration("metrics-linger", 0, "keep serving metrics this long after the last sweep (interrupt ends it early)")
	logLevel := flag.String("log-level", "info", "debug|info|warn|error")
	logJSON := flag.Bool("log-json", false, "log in JSON instead of text")
	flag.Parse()

	logger, err := newLogger(*logLevel, *logJSON)
	if err != nil {
		log.Fatalf("bench: %v", err)
	}

	cfg := harness.DefaultConfig()
	if *configPath != "" {
		if cfg, err = harness.LoadConfig(*configPath); err != nil {
			log.Fatalf("bench: %v", err)
		}
	}
	if *results != "" {
		cfg.ResultsDir = *results
	}
	if *data != "" {
		cfg.DataDir = *data
	}
	if *repeats > 0 {
		cfg.Repeats = *repeats
	}
	if *readLimit > 0 {
		cfg.ReadLimit = *readLimit
	}
	if *threads != "" {
		if cfg.Threads, err = parseThreads(*threads); err != nil {
			log.Fatalf("bench: -threads: %v", err)
		}
	}

	var selected []kernelSpec
	if *kernel == "all" {
		selected = allKernels
	} else if k, ok := lookupKernel(*kernel); ok {
		selected = []kernelSpec{k}
	} else {
		log.Fatalf("bench: specify -kernel %s|all", strings.Join(kernelNames(), "|"))
	}

	if err := os.MkdirAll(cfg.ResultsDir, 0o755); err != nil {
		log.Fatalf("bench: results directory: %v", err)
	}

	env := &benchEnv{
		ctx: context.Background(),
		cfg: cfg,
		log: logger,
		runner: &harness.Runner{
			Threads: cfg.ThreadList(0),
			Repeats: cfg.Repeats,
			Logger:  logger,
		},
		generate: *generate,
	}
	if *metricsAddr != "" {
		env.prom = metrics.NewPrometheus()
		env.runner.OnMeasurement = env.prom.ObserveMeasurement
		srv := serveMetrics(*metricsAddr, env.prom, logger)
		defer stopMetrics(srv, *metricsLinger, logger)
	}

	fmt.Printf("Dot kernel: %s\n", simd.DotProductDesc())
	fmt.Printf("Threads: %v, repeats: %d, results: %s\n", env.runner.Threads, cfg.Repeats, cfg.ResultsDir)
	for _, k := range selected {
		env.current = k
		if err := k.run(env); err != nil {
			logger.Error("kernel failed", "kernel", k.name, "err", err)
		}
	}
	fmt.Println("Benchmark complete")
}

func newLogger(level string, json bool) (*slog.Logger, error) {
	var lv slog.Level
	if err := lv.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("-log-level: %w", err)
	}
	opts := &slog.HandlerOptions{Level: lv}
	if json {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts)), nil
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts)), nil
}

func parseThreads(s string) ([]int, error) {
	var out []int
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		t, err := strconv.Atoi(f)
		if err != nil || t <= 0 {
			return nil, fmt.Errorf("bad worker count %q", f)
		}
		out = append(out, t)
	}
	if len(out) == 0 {
		return nil, errors.New("no worker counts")
	}
	return out, nil
}

func serveMetrics(addr string, p *metrics.Prometheus, logger *slog.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", p.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server", "addr", addr, "err", err)
		}
	}()
	logger.Info("serving metrics", "addr", addr)
	return srv
}

// stopMetrics keeps srv up for linger, or until an interrupt, then shuts it down.
func stopMetrics(srv *http.Server, linger time.Duration, logger *slog.Logger) error {
	if linger > 0 {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		logger.Info("metrics linger", "addr", srv.Addr, "for", linger)
		select {
		case <-ctx.Done():
		case <-time.After(linger):
		}
		stop()
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}
