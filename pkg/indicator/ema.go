package indicator

import "github.com/c9s/tarq/pkg/datatype/floats"

// EMA is the exponential moving average seeded with the SMA of the first window.
type EMA struct {
	data   []float64
	period int
	index  int

	prev      float64
	smoothing float64
}

func NewEMA(data []float64, period int) (*EMA, error) {
	if err := validateWindow("ema", period, period, data); err != nil {
		return nil, err
	}

	return &EMA{
		data:      data,
		period:    period,
		smoothing: smoothingFactor(period),
	}, nil
}

// smoothingFactor returns 2/(period+1), the decay weight shared by the EMA family.
func smoothingFactor(period int) float64 {
	return 2.0 / (float64(period) + 1.0)
}

func (inc *EMA) Next() (float64, bool) {
	if inc.index+inc.period > len(inc.data) {
		return 0, false
	}

	if inc.index == 0 {
		inc.prev = floats.Average(inc.data[:inc.period])
	} else {
		inc.prev = (inc.data[inc.index+inc.period-1]-inc.prev)*inc.smoothing + inc.prev
	}

	inc.index++
	return inc.prev, true
}

func (inc *EMA) Remaining() int {
	return remaining(len(inc.data)-inc.period+1, inc.index)
}

func (inc *EMA) Calculate() (floats.Slice, error) {
	return Drain(inc), nil
}
