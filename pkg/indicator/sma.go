package indicator

import "github.com/c9s/tarq/pkg/datatype/floats"

// SMA is the simple moving average, kept as a rolling sum over the window.
type SMA struct {
	data   []float64
	period int
	index  int

	sum       float64
	invPeriod float64
}

func NewSMA(data []float64, period int) (*SMA, error) {
	if err := validateWindow("sma", period, period, data); err != nil {
		return nil, err
	}

	sum := 0.0
	for _, v := range data[:period] {
		sum += v
	}

	return &SMA{
		data:      data,
		period:    period,
		sum:       sum,
		invPeriod: 1.0 / float64(period),
	}, nil
}

func (inc *SMA) Next() (float64, bool) {
	if inc.index+inc.period > len(inc.data) {
		return 0, false
	}

	value := inc.sum * inc.invPeriod

	if incoming := inc.index + inc.period; incoming < len(inc.data) {
		inc.sum += inc.data[incoming]
		inc.sum -= inc.data[inc.index]
	}

	inc.index++
	return value, true
}

func (inc *SMA) Remaining() int {
	return remaining(len(inc.data)-inc.period+1, inc.index)
}

func (inc *SMA) Calculate() (floats.Slice, error) {
	return Drain(inc), nil
}
