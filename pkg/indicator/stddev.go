package indicator

import (
	"math"

	"github.com/c9s/tarq/pkg/datatype/floats"
)

// StdDev is the rolling standard deviation computed from a rolling sum of
// squares and the SMA of the same window:
//
//	variance = sumSq/(period-ddof) - mean^2
//
// ddof is passed through as is; ddof >= period yields Inf or NaN.
type StdDev struct {
	data   []float64
	period int
	ddof   int
	index  int

	sma   *SMA
	sumSq float64
}

func NewStdDev(data []float64, period, ddof int) (*StdDev, error) {
	if err := validateWindow("stddev", period, period, data); err != nil {
		return nil, err
	}

	sma, err := NewSMA(data, period)
	if err != nil {
		return nil, err
	}

	return &StdDev{
		data:   data,
		period: period,
		ddof:   ddof,
		sma:    sma,
	}, nil
}

func (inc *StdDev) Next() (float64, bool) {
	if inc.index+inc.period > len(inc.data) {
		return 0, false
	}

	inc.sumSq = rollSumSq(inc.data, inc.period, inc.index, inc.sumSq)

	mean, ok := inc.sma.Next()
	if !ok {
		return 0, false
	}

	variance := inc.sumSq/float64(inc.period-inc.ddof) - mean*mean
	inc.index++
	return math.Sqrt(variance), true
}

func (inc *StdDev) Remaining() int {
	return remaining(len(inc.data)-inc.period+1, inc.index)
}

func (inc *StdDev) Calculate() (floats.Slice, error) {
	return Drain(inc), nil
}

// rollSumSq returns the sum of squares of data[index:index+period]. The sum is
// computed in full at index 0 and rolled forward from sumSq afterwards.
func rollSumSq(data []float64, period, index int, sumSq float64) float64 {
	if index == 0 {
		sumSq = 0
		for _, v := range data[:period] {
			sumSq += v * v
		}
		return sumSq
	}

	in := data[index+period-1]
	out := data[index-1]
	return sumSq + (in*in - out*out)
}
