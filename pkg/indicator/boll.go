package indicator

import (
	"math"

	"github.com/pkg/errors"

	"github.com/c9s/tarq/pkg/datatype/floats"
	"github.com/c9s/tarq/pkg/types"
)

/*
boll implements the bollinger bands indicator:

The Bollinger Bands technical indicator has two or three bands: a middle
moving average line and lines that are offset from it by a multiple of the
standard deviation of the window.

	upper  = middle + k*std
	lower  = middle - k*std

The middle band comes from the selected moving average, while the standard
deviation is always measured around the SMA of the window.

- https://www.investopedia.com/terms/b/bollingerbands.asp
*/

type Band struct {
	Upper, Middle, Lower float64
}

// BBands is the bollinger bands indicator
type BBands struct {
	data   []float64
	period int
	k      float64
	index  int

	ma    *MovingAverage
	sma   *SMA
	sumSq float64
}

func NewBBands(data []float64, period int, stdDev float64, ma *MovingAverage) (*BBands, error) {
	if err := validateWindow("bbands", period, period, data); err != nil {
		return nil, err
	}

	if ma == nil {
		return nil, errors.Wrap(types.ErrInvalidMAType, "bbands: moving average is nil")
	}

	sma, err := NewSMA(data, period)
	if err != nil {
		return nil, err
	}

	if n := sma.Remaining(); ma.Remaining() < n {
		return nil, errors.Wrapf(ErrLengthMismatch,
			"bbands: %s middle band has %d values, need %d", ma.Type(), ma.Remaining(), n)
	}

	return &BBands{
		data:   data,
		period: period,
		k:      stdDev,
		ma:     ma,
		sma:    sma,
	}, nil
}

func (inc *BBands) Next() (Band, bool) {
	if inc.index+inc.period > len(inc.data) {
		return Band{}, false
	}

	inc.sumSq = rollSumSq(inc.data, inc.period, inc.index, inc.sumSq)

	mean, ok := inc.sma.Next()
	if !ok {
		return Band{}, false
	}

	middle, ok := inc.ma.Next()
	if !ok {
		return Band{}, false
	}

	if inc.ma.Type() == types.MATypeSMA {
		middle = mean
	}

	variance := inc.sumSq/float64(inc.period) - mean*mean
	std := math.Sqrt(variance)

	inc.index++
	return Band{
		Upper:  middle + inc.k*std,
		Middle: middle,
		Lower:  middle - inc.k*std,
	}, true
}

func (inc *BBands) Remaining() int {
	return remaining(len(inc.data)-inc.period+1, inc.index)
}

func (inc *BBands) Calculate() (upper, middle, lower floats.Slice, err error) {
	n := inc.Remaining()
	upper = make(floats.Slice, 0, n)
	middle = make(floats.Slice, 0, n)
	lower = make(floats.Slice, 0, n)

	for {
		band, ok := inc.Next()
		if !ok {
			return upper, middle, lower, nil
		}

		upper.Push(band.Upper)
		middle.Push(band.Middle)
		lower.Push(band.Lower)
	}
}
