package metrics

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readMetric(t *testing.T, m prometheus.Metric) *dto.Metric {
	var out dto.Metric
	require.NoError(t, m.Write(&out))
	return &out
}

func counterValue(t *testing.T, indicator, status string) float64 {
	return readMetric(t, JobRunsMetrics.WithLabelValues(indicator, status)).GetCounter().GetValue()
}

func TestObserveJob(t *testing.T) {
	okBefore := counterValue(t, "sma", StatusOK)
	errBefore := counterValue(t, "sma", StatusError)

	ObserveJob("sma", "SMA(20)", 10*time.Millisecond, 41, nil)
	ObserveJob("sma", "SMA(50)", 20*time.Millisecond, 11, nil)
	ObserveJob("sma", "SMA(20)", time.Millisecond, 0, errors.New("sma: insufficient data"))

	assert.Equal(t, okBefore+2, counterValue(t, "sma", StatusOK))
	assert.Equal(t, errBefore+1, counterValue(t, "sma", StatusError))

	gauge := readMetric(t, JobOutputValuesMetrics.WithLabelValues("sma", "SMA(20)"))
	assert.Equal(t, 41.0, gauge.GetGauge().GetValue())

	gauge = readMetric(t, JobOutputValuesMetrics.WithLabelValues("sma", "SMA(50)"))
	assert.Equal(t, 11.0, gauge.GetGauge().GetValue())

	histogram := readMetric(t, JobDurationMetrics.WithLabelValues("sma").(prometheus.Metric))
	assert.GreaterOrEqual(t, histogram.GetHistogram().GetSampleCount(), uint64(3))
}

func TestWriteTextfile(t *testing.T) {
	ObserveSeries(60)
	ObserveJob("ema", "EMA(10)", time.Millisecond, 51, nil)

	filename := filepath.Join(t.TempDir(), "tarq.prom")
	require.NoError(t, WriteTextfile(filename))

	content, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Contains(t, string(content), "tarq_series_bars 60")
	assert.Contains(t, string(content), `tarq_indicator_job_runs_total{indicator="ema",status="ok"}`)
	assert.Contains(t, string(content), `tarq_indicator_job_output_values{indicator="ema",label="EMA(10)"} 51`)
}
