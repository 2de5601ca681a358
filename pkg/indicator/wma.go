package indicator

import "github.com/c9s/tarq/pkg/datatype/floats"

// WMA is the linearly weighted moving average. The most recent sample of the
// window weighs `period`, the oldest weighs 1.
//
// The weighted sum is rolled forward with
//
//	periodSum' = periodSum + period*incoming - periodSub
//
// where periodSub is the plain sum of the previous window: shifting the
// window lowers every remaining weight by one at once.
type WMA struct {
	data   []float64
	period int
	index  int

	periodSum   float64
	periodSub   float64
	weightTotal float64
}

func NewWMA(data []float64, period int) (*WMA, error) {
	if err := validateWindow("wma", period, period, data); err != nil {
		return nil, err
	}

	return &WMA{
		data:        data,
		period:      period,
		weightTotal: float64(period * (period + 1) / 2),
	}, nil
}

func (inc *WMA) Next() (float64, bool) {
	if inc.index+inc.period > len(inc.data) {
		return 0, false
	}

	if inc.index == 0 {
		inc.periodSum, inc.periodSub = 0, 0
		for i, price := range inc.data[:inc.period] {
			inc.periodSum += price * float64(i+1)
			inc.periodSub += price
		}

		inc.index++
		return inc.periodSum / inc.weightTotal, true
	}

	incoming := inc.data[inc.index+inc.period-1]
	inc.periodSum += incoming * float64(inc.period)
	inc.periodSum -= inc.periodSub

	value := inc.periodSum / inc.weightTotal

	inc.periodSub += incoming
	inc.periodSub -= inc.data[inc.index-1]

	inc.index++
	return value, true
}

func (inc *WMA) Remaining() int {
	return remaining(len(inc.data)-inc.period+1, inc.index)
}

func (inc *WMA) Calculate() (floats.Slice, error) {
	return Drain(inc), nil
}
