package indicator

import "github.com/c9s/tarq/pkg/datatype/floats"

// VWMA is the volume weighted moving average over paired price and volume series.
// A window with zero total volume yields NaN or Inf.
type VWMA struct {
	data   []float64
	volume []float64
	period int
	index  int

	rollingSum    float64
	rollingSumVol float64
}

func NewVWMA(data, volume []float64, period int) (*VWMA, error) {
	if err := validateWindow("vwma", period, period, data, volume); err != nil {
		return nil, err
	}

	return &VWMA{
		data:   data,
		volume: volume,
		period: period,
	}, nil
}

func (inc *VWMA) Next() (float64, bool) {
	if inc.index+inc.period > len(inc.data) {
		return 0, false
	}

	if inc.index == 0 {
		inc.rollingSum, inc.rollingSumVol = 0, 0
		for i := 0; i < inc.period; i++ {
			inc.rollingSum += inc.data[i] * inc.volume[i]
			inc.rollingSumVol += inc.volume[i]
		}
	} else {
		out := inc.index - 1
		in := inc.index + inc.period - 1
		inc.rollingSum += inc.data[in]*inc.volume[in] - inc.data[out]*inc.volume[out]
		inc.rollingSumVol += inc.volume[in] - inc.volume[out]
	}

	inc.index++
	return inc.rollingSum / inc.rollingSumVol, true
}

func (inc *VWMA) Remaining() int {
	return remaining(len(inc.data)-inc.period+1, inc.index)
}

func (inc *VWMA) Calculate() (floats.Slice, error) {
	return Drain(inc), nil
}
