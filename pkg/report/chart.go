package report

import (
	"io"
	"math"
	"os"

	"github.com/pkg/errors"
	"github.com/wcharczuk/go-chart/v2"
)

// oscillators are drawn against the secondary axis since they do not share
// the price scale.
var oscillators = map[string]struct{}{
	"atr":    {},
	"stddev": {},
	"bbpb":   {},
}

type Canvas struct {
	chart.Chart
}

func NewCanvas(title string) *Canvas {
	out := &Canvas{
		Chart: chart.Chart{
			Title: title,
			XAxis: chart.XAxis{
				ValueFormatter: chart.TimeHourValueFormatter,
			},
		},
	}
	out.Chart.Elements = []chart.Renderable{
		chart.LegendLeft(&out.Chart),
	}
	return out
}

// Plot adds the frame rows as time series, the close price first. Warm-up
// rows are never plotted.
func (canvas *Canvas) Plot(f *Frame) {
	canvas.plot("close", f.Series.Close, f, 0, chart.YAxisPrimary)

	for _, result := range f.Results {
		axis := chart.YAxisPrimary
		if _, ok := oscillators[result.Name]; ok {
			axis = chart.YAxisSecondary
		}

		for _, column := range result.Columns {
			canvas.plot(columnName(result, column), column.Values, f, result.Lookback, axis)
		}
	}
}

func (canvas *Canvas) plot(tag string, values []float64, f *Frame, lookback int, axis chart.YAxisType) {
	start := f.Start()
	if lookback > start {
		start = lookback
	}

	s := chart.TimeSeries{Name: tag, YAxis: axis}
	for i := start; i < len(values); i++ {
		if math.IsNaN(values[i]) || math.IsInf(values[i], 0) {
			continue
		}
		s.XValues = append(s.XValues, f.Series.Time[i])
		s.YValues = append(s.YValues, values[i])
	}

	if len(s.XValues) < 2 {
		log.Warnf("skip plotting %s: not enough values", tag)
		return
	}

	canvas.Series = append(canvas.Series, s)
}

func (canvas *Canvas) Render(w io.Writer) error {
	return canvas.Chart.Render(chart.PNG, w)
}

// WriteChart renders the frame into a PNG file.
func WriteChart(path string, f *Frame) error {
	canvas := NewCanvas("tarq")
	canvas.Plot(f)

	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "cannot create chart file %s", path)
	}
	defer file.Close()

	if err := canvas.Render(file); err != nil {
		return errors.Wrap(err, "cannot render chart")
	}

	return nil
}
