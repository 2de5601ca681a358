package indicator

import "github.com/c9s/tarq/pkg/datatype/floats"

type composeState int

const (
	stateInitializing composeState = iota
	stateSteady
)

// DEMA is the double exponential moving average:
//
//	DEMA = 2*EMA(price) - EMA(EMA(price))
//
// Each EMA pass is seeded with the mean of the first `period` values of its
// input, so the first value is emitted at index 2*period-2.
type DEMA struct {
	data   []float64
	period int
	index  int
	state  composeState

	ema1, ema2 float64
	smoothing  float64
}

func NewDEMA(data []float64, period int) (*DEMA, error) {
	if err := validateWindow("dema", period, 2*period-1, data); err != nil {
		return nil, err
	}

	return &DEMA{
		data:      data,
		period:    period,
		smoothing: smoothingFactor(period),
	}, nil
}

func (inc *DEMA) lookback() int {
	return 2*inc.period - 2
}

// initialize materializes the first `period` values of the inner EMA to seed the outer one.
func (inc *DEMA) initialize() {
	inc.ema1 = floats.Average(inc.data[:inc.period])

	ema1Values := make([]float64, 0, inc.period)
	ema1Values = append(ema1Values, inc.ema1)
	for _, price := range inc.data[inc.period : 2*inc.period-1] {
		inc.ema1 = (price-inc.ema1)*inc.smoothing + inc.ema1
		ema1Values = append(ema1Values, inc.ema1)
	}

	inc.ema2 = floats.Average(ema1Values)
	inc.state = stateSteady
}

func (inc *DEMA) Next() (float64, bool) {
	if inc.index+inc.lookback() >= len(inc.data) {
		return 0, false
	}

	switch inc.state {
	case stateInitializing:
		inc.initialize()

	case stateSteady:
		price := inc.data[inc.index+inc.lookback()]
		inc.ema1 = (price-inc.ema1)*inc.smoothing + inc.ema1
		inc.ema2 = (inc.ema1-inc.ema2)*inc.smoothing + inc.ema2
	}

	inc.index++
	return 2.0*inc.ema1 - inc.ema2, true
}

func (inc *DEMA) Remaining() int {
	return remaining(len(inc.data)-inc.lookback(), inc.index)
}

func (inc *DEMA) Calculate() (floats.Slice, error) {
	return Drain(inc), nil
}
