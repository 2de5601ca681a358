package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	StatusOK    = "ok"
	StatusError = "error"
)

var JobRunsMetrics = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "tarq_indicator_job_runs_total",
		Help: "number of indicator jobs executed",
	}, []string{"indicator", "status"})

var JobDurationMetrics = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "tarq_indicator_job_duration_seconds",
		Help:    "time spent computing one indicator job",
		Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
	}, []string{"indicator"})

var JobOutputValuesMetrics = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "tarq_indicator_job_output_values",
		Help: "number of non-warm-up values produced by the last job run",
	}, []string{"indicator", "label"})

var SeriesBarsMetrics = prometheus.NewGauge(
	prometheus.GaugeOpts{
		Name: "tarq_series_bars",
		Help: "number of bars loaded from the source",
	})

// ObserveJob records one finished job. label tells apart the jobs of the same
// indicator, e.g. "SMA(20)". values is ignored when err is not nil.
func ObserveJob(indicator, label string, duration time.Duration, values int, err error) {
	status := StatusOK
	if err != nil {
		status = StatusError
	}

	JobRunsMetrics.With(prometheus.Labels{"indicator": indicator, "status": status}).Inc()
	JobDurationMetrics.WithLabelValues(indicator).Observe(duration.Seconds())

	if err == nil {
		JobOutputValuesMetrics.WithLabelValues(indicator, label).Set(float64(values))
	}
}

func ObserveSeries(bars int) {
	SeriesBarsMetrics.Set(float64(bars))
}

// WriteTextfile dumps the registered collectors in the node_exporter
// textfile format.
func WriteTextfile(filename string) error {
	return prometheus.WriteToTextfile(filename, prometheus.DefaultGatherer)
}

func init() {
	prometheus.MustRegister(
		JobRunsMetrics,
		JobDurationMetrics,
		JobOutputValuesMetrics,
		SeriesBarsMetrics,
	)
}
