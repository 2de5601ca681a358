package indicator

import "github.com/c9s/tarq/pkg/datatype/floats"

// TEMA is the triple exponential moving average:
//
//	TEMA = 3*EMA1 - 3*EMA2 + EMA3
//
// where EMA2 smooths EMA1 and EMA3 smooths EMA2. The first value is emitted
// at index 3*period-3.
type TEMA struct {
	data   []float64
	period int
	index  int
	state  composeState

	ema1, ema2, ema3 float64
	smoothing        float64
}

func NewTEMA(data []float64, period int) (*TEMA, error) {
	if err := validateWindow("tema", period, 3*period-2, data); err != nil {
		return nil, err
	}

	return &TEMA{
		data:      data,
		period:    period,
		smoothing: smoothingFactor(period),
	}, nil
}

func (inc *TEMA) lookback() int {
	return 3*inc.period - 3
}

func (inc *TEMA) initialize() {
	p := inc.period

	inc.ema1 = floats.Average(inc.data[:p])
	ema1Values := make([]float64, 0, 2*p-1)
	ema1Values = append(ema1Values, inc.ema1)
	for _, price := range inc.data[p : 3*p-2] {
		inc.ema1 = (price-inc.ema1)*inc.smoothing + inc.ema1
		ema1Values = append(ema1Values, inc.ema1)
	}

	inc.ema2 = floats.Average(ema1Values[:p])
	ema2Values := make([]float64, 0, p)
	ema2Values = append(ema2Values, inc.ema2)
	for _, v := range ema1Values[p : 2*p-1] {
		inc.ema2 = (v-inc.ema2)*inc.smoothing + inc.ema2
		ema2Values = append(ema2Values, inc.ema2)
	}

	inc.ema3 = floats.Average(ema2Values)
	inc.state = stateSteady
}

func (inc *TEMA) Next() (float64, bool) {
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
		inc.ema3 = (inc.ema2-inc.ema3)*inc.smoothing + inc.ema3
	}

	inc.index++
	return 3.0*inc.ema1 - 3.0*inc.ema2 + inc.ema3, true
}

func (inc *TEMA) Remaining() int {
	return remaining(len(inc.data)-inc.lookback(), inc.index)
}

func (inc *TEMA) Calculate() (floats.Slice, error) {
	return Drain(inc), nil
}
