package indicator

import (
	"math"

	"github.com/c9s/tarq/pkg/datatype/floats"
)

// ATR is the average true range with Wilder smoothing:
//
//	ATR[t] = (ATR[t-1]*(period-1) + TR[t]) / period
//
// The first true range needs the previous close, so the seed is the mean of
// TR[1..period] and the output has len-period values.
type ATR struct {
	high, low, close []float64
	period           int
	index            int

	previous float64
}

func NewATR(high, low, close []float64, period int) (*ATR, error) {
	if err := validateWindow("atr", period, period+1, high, low, close); err != nil {
		return nil, err
	}

	return &ATR{
		high:   high,
		low:    low,
		close:  close,
		period: period,
	}, nil
}

func (inc *ATR) trueRange(i int) float64 {
	prevClose := inc.close[i-1]
	return maxNum(
		maxNum(inc.high[i]-inc.low[i], math.Abs(inc.high[i]-prevClose)),
		math.Abs(inc.low[i]-prevClose),
	)
}

// maxNum returns the larger operand, ignoring a NaN one. It is NaN only when
// both operands are.
func maxNum(a, b float64) float64 {
	if math.IsNaN(a) {
		return b
	}

	if math.IsNaN(b) {
		return a
	}

	return math.Max(a, b)
}

func (inc *ATR) Next() (float64, bool) {
	if inc.index+inc.period >= len(inc.close) {
		return 0, false
	}

	if inc.index == 0 {
		sum := 0.0
		for i := 1; i <= inc.period; i++ {
			sum += inc.trueRange(i)
		}
		inc.previous = sum / float64(inc.period)
	} else {
		tr := inc.trueRange(inc.index + inc.period)
		inc.previous *= float64(inc.period - 1)
		inc.previous += tr
		inc.previous /= float64(inc.period)
	}

	inc.index++
	return inc.previous, true
}

func (inc *ATR) Remaining() int {
	return remaining(len(inc.close)-inc.period, inc.index)
}

func (inc *ATR) Calculate() (floats.Slice, error) {
	return Drain(inc), nil
}
