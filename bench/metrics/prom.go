package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ic-timon/pipebench/bench/harness"
	"github.com/ic-timon/pipebench/pipeline"
)

// Prometheus exports sweep measurements and pipeline progress.
// It implements pipeline.Observer.
type Prometheus struct {
	reg *prometheus.Registry

	runSeconds *prometheus.HistogramVec
	speedup    *prometheus.GaugeVec
	efficiency *prometheus.GaugeVec
	failures   *prometheus.CounterVec

	batches      prometheus.Counter
	records      prometheus.Counter
	batchSize    prometheus.Histogram
	pipelineRuns *prometheus.CounterVec
}

// NewPrometheus creates the collectors on a private registry together with
// the Go runtime and process collectors.
func NewPrometheus() *Prometheus {
	p := &Prometheus{
		reg: prometheus.NewRegistry(),
		runSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "pipebench_run_seconds",
			Help:    "Wall time of single kernel runs",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 12),
		}, []string{"kernel", "variant", "threads"}),
		speedup: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "pipebench_speedup_ratio",
			Help: "Baseline time divided by the averaged time",
		}, []string{"kernel", "variant", "size", "threads"}),
		efficiency: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "pipebench_efficiency_ratio",
			Help: "Speedup divided by the worker count",
		}, []string{"kernel", "variant", "size", "threads"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pipebench_failed_configurations_total",
			Help: "Configurations that returned an error",
		}, []string{"kernel", "variant"}),
		batches: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pipebench_pipeline_batches_total",
			Help: "Non-empty drains of the pipeline buffer",
		}),
		records: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pipebench_pipeline_records_total",
			Help: "Records reduced by the pipeline consumer",
		}),
		batchSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "pipebench_pipeline_batch_records",
			Help:    "Records per drained batch",
			Buckets: prometheus.ExponentialBuckets(1, 2, 14),
		}),
		pipelineRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pipebench_pipeline_runs_total",
			Help: "Pipeline runs by outcome",
		}, []string{"status"}),
	}
	p.reg.MustRegister(
		p.runSeconds, p.speedup, p.efficiency, p.failures,
		p.batches, p.records, p.batchSize, p.pipelineRuns,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return p
}

// Registry returns the registry holding every collector.
func (p *Prometheus) Registry() *prometheus.Registry { return p.reg }

// Handler serves the registry in the Prometheus exposition format.
func (p *Prometheus) Handler() http.Handler {
	return promhttp.HandlerFor(p.reg, promhttp.HandlerOpts{Registry: p.reg})
}

// ObserveMeasurement records one averaged worker count; it matches
// harness.Runner.OnMeasurement.
func (p *Prometheus) ObserveMeasurement(c harness.Case, m harness.Measurement) {
	if m.Err != nil {
		p.failures.WithLabelValues(c.Kernel, c.Variant).Inc()
		return
	}
	threads := strconv.Itoa(m.Threads)
	size := strconv.FormatInt(c.Size, 10)
	h := p.runSeconds.WithLabelValues(c.Kernel, c.Variant, threads)
	for _, d := range m.Runs {
		h.Observe(d.Seconds())
	}
	p.speedup.WithLabelValues(c.Kernel, c.Variant, size, threads).Set(m.Speedup)
	p.efficiency.WithLabelValues(c.Kernel, c.Variant, size, threads).Set(m.Efficiency)
}

// DrainedBatch implements pipeline.Observer.
func (p *Prometheus) DrainedBatch(batch [][]float64, _ float64) {
	p.batches.Inc()
	p.records.Add(float64(len(batch)))
	p.batchSize.Observe(float64(len(batch)))
}

// Finished implements pipeline.Observer.
func (p *Prometheus) Finished(_ pipeline.Result, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	p.pipelineRuns.WithLabelValues(status).Inc()
}

var _ pipeline.Observer = (*Prometheus)(nil)
