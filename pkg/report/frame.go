package report

import (
	"math"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/c9s/tarq/pkg/talib"
	"github.com/c9s/tarq/pkg/types"
)

var log = logrus.WithField("component", "report")

const TimeLayout = "2006-01-02 15:04:05"

// Frame lines up the indicator results with the bars they were computed on.
type Frame struct {
	Series  *types.Series
	Results []*talib.Result

	// Pad keeps the warm-up rows. Otherwise the frame starts at the first
	// row where every indicator has a value.
	Pad bool
}

func NewFrame(series *types.Series, results []*talib.Result, pad bool) *Frame {
	return &Frame{Series: series, Results: results, Pad: pad}
}

// Start is the index of the first row to render.
func (f *Frame) Start() int {
	if f.Pad {
		return 0
	}

	start := 0
	for _, result := range f.Results {
		if result.Lookback > start {
			start = result.Lookback
		}
	}

	if start > f.Series.Len() {
		return f.Series.Len()
	}
	return start
}

func (f *Frame) Len() int {
	return f.Series.Len() - f.Start()
}

// Headers returns the column names, time first. Results with more than one
// column are named like "BBANDS(20,2,SMA).upper".
func (f *Frame) Headers() []string {
	headers := []string{"time"}
	for _, result := range f.Results {
		for _, column := range result.Columns {
			headers = append(headers, columnName(result, column))
		}
	}
	return headers
}

// Row returns the indicator values of row i, counted from Start.
func (f *Frame) Row(i int) []float64 {
	idx := f.Start() + i

	var row []float64
	for _, result := range f.Results {
		for _, column := range result.Columns {
			row = append(row, column.Values[idx])
		}
	}
	return row
}

func (f *Frame) Time(i int) time.Time {
	return f.Series.Time[f.Start()+i]
}

func columnName(result *talib.Result, column talib.Column) string {
	if len(result.Columns) == 1 {
		return result.Label
	}
	return result.Label + "." + column.Name
}

func formatFloat(v float64, prec int) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return strconv.FormatFloat(v, 'f', prec, 64)
}
