package indicator

import (
	"math"

	"github.com/pkg/errors"

	"github.com/c9s/tarq/pkg/datatype/floats"
)

// KAMA is Kaufman's adaptive moving average.
//
// The efficiency ratio ER = |price[t]-price[t-period]| / sum(|price[i]-price[i-1]|)
// scales the smoothing constant between the fast and slow EMA constants:
//
//	SC = (ER*(fastSC-slowSC) + slowSC)^2
//	KAMA[t] = KAMA[t-1] + SC*(price[t]-KAMA[t-1])
//
// The first value is emitted at index `period`, seeded with price[period-1].
type KAMA struct {
	data   []float64
	period int
	index  int

	fastSC, slowSC float64

	prev          float64
	sumROC        float64
	trailingValue float64
}

func NewKAMA(data []float64, period, fast, slow int) (*KAMA, error) {
	if err := validateWindow("kama", period, period, data); err != nil {
		return nil, err
	}

	if len(data) <= 1 {
		return nil, errors.Wrapf(ErrInsufficientData, "kama: got %d values, need more than 1", len(data))
	}

	sumROC := 0.0
	for i := 1; i < period; i++ {
		sumROC += math.Abs(data[i] - data[i-1])
	}

	return &KAMA{
		data:          data,
		period:        period,
		index:         period,
		fastSC:        smoothingFactor(fast),
		slowSC:        smoothingFactor(slow),
		prev:          data[period-1],
		sumROC:        sumROC,
		trailingValue: data[0],
	}, nil
}

// efficiencyRatio rolls the path length forward to index t and returns the ratio.
func (inc *KAMA) efficiencyRatio(t int) float64 {
	outgoing := inc.data[t-inc.period]
	change := math.Abs(inc.data[t] - outgoing)

	inc.sumROC -= math.Abs(outgoing - inc.trailingValue)
	inc.sumROC += math.Abs(inc.data[t] - inc.data[t-1])
	inc.trailingValue = outgoing

	if inc.sumROC == 0 {
		return 0
	}

	return change / inc.sumROC
}

func (inc *KAMA) Next() (float64, bool) {
	if inc.index >= len(inc.data) {
		return 0, false
	}

	er := inc.efficiencyRatio(inc.index)
	sc := er*(inc.fastSC-inc.slowSC) + inc.slowSC
	sc *= sc

	inc.prev = inc.prev + sc*(inc.data[inc.index]-inc.prev)
	inc.index++
	return inc.prev, true
}

func (inc *KAMA) Remaining() int {
	return remaining(len(inc.data), inc.index)
}

func (inc *KAMA) Calculate() (floats.Slice, error) {
	return Drain(inc), nil
}
