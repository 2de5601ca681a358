// Package talib exposes the indicators as plain functions over []float64.
//
// Every output is left padded with NaN so that out[i] lines up with input[i].
package talib

import (
	"github.com/c9s/tarq/pkg/datatype/floats"
	"github.com/c9s/tarq/pkg/indicator"
	"github.com/c9s/tarq/pkg/types"
)

const (
	DefaultKAMAPeriod = 10
	DefaultKAMAFast   = indicator.DefaultKAMAFast
	DefaultKAMASlow   = indicator.DefaultKAMASlow
	DefaultATRPeriod  = 14
	DefaultStdDevDdof = 0
	DefaultStdDev     = 2.0
)

func calculate(size int, c indicator.Float64Calculator, err error) (floats.Slice, error) {
	values, _, err := calculateLookback(size, c, err)
	return values, err
}

// calculateLookback also returns the number of padded warm-up rows. It is
// counted from the output length since a real output may be NaN as well.
func calculateLookback(size int, c indicator.Float64Calculator, err error) (floats.Slice, int, error) {
	if err != nil {
		return nil, 0, err
	}

	values, err := c.Calculate()
	if err != nil {
		return nil, 0, err
	}

	return floats.LeftPadNaN(values, size), size - len(values), nil
}

func SMA(data []float64, period int) (floats.Slice, error) {
	inc, err := indicator.NewSMA(data, period)
	return calculate(len(data), inc, err)
}

func EMA(data []float64, period int) (floats.Slice, error) {
	inc, err := indicator.NewEMA(data, period)
	return calculate(len(data), inc, err)
}

func WMA(data []float64, period int) (floats.Slice, error) {
	inc, err := indicator.NewWMA(data, period)
	return calculate(len(data), inc, err)
}

func VWMA(data, volume []float64, period int) (floats.Slice, error) {
	inc, err := indicator.NewVWMA(data, volume, period)
	return calculate(len(data), inc, err)
}

func DEMA(data []float64, period int) (floats.Slice, error) {
	inc, err := indicator.NewDEMA(data, period)
	return calculate(len(data), inc, err)
}

func TEMA(data []float64, period int) (floats.Slice, error) {
	inc, err := indicator.NewTEMA(data, period)
	return calculate(len(data), inc, err)
}

func KAMA(data []float64, period, fast, slow int) (floats.Slice, error) {
	inc, err := indicator.NewKAMA(data, period, fast, slow)
	return calculate(len(data), inc, err)
}

func StdDev(data []float64, period, ddof int) (floats.Slice, error) {
	inc, err := indicator.NewStdDev(data, period, ddof)
	return calculate(len(data), inc, err)
}

func ATR(high, low, close []float64, period int) (floats.Slice, error) {
	inc, err := indicator.NewATR(high, low, close, period)
	return calculate(len(close), inc, err)
}

// movingAverage builds the middle band and returns the offset of the input
// index where it emits its first value, relative to a plain period window.
// The bands are computed over data[offset:] so both series end together.
func movingAverage(data, volume []float64, period int, maType string) (*indicator.MovingAverage, int, error) {
	t, err := types.ParseMAType(maType)
	if err != nil {
		return nil, 0, err
	}

	ma, err := indicator.NewMovingAverage(t, data, volume, period)
	if err != nil {
		return nil, 0, err
	}

	return ma, len(data) - ma.Remaining() - (period - 1), nil
}

// BBands returns the upper, middle and lower bands. maType is one of sma, ema,
// wma, vwma, dema, tema or kama; volume is only required by vwma.
func BBands(data []float64, period int, stdDev float64, maType string, volume []float64) (upper, middle, lower floats.Slice, err error) {
	upper, middle, lower, err = bbands(data, period, stdDev, maType, volume)
	if err != nil {
		return nil, nil, nil, err
	}

	n := len(data)
	return floats.LeftPadNaN(upper, n), floats.LeftPadNaN(middle, n), floats.LeftPadNaN(lower, n), nil
}

// bbands returns the bands without padding.
func bbands(data []float64, period int, stdDev float64, maType string, volume []float64) (upper, middle, lower floats.Slice, err error) {
	ma, offset, err := movingAverage(data, volume, period, maType)
	if err != nil {
		return nil, nil, nil, err
	}

	bands, err := indicator.NewBBands(data[offset:], period, stdDev, ma)
	if err != nil {
		return nil, nil, nil, err
	}

	return bands.Calculate()
}

// Bbpb returns the bollinger bands %b, see BBands for the arguments.
func Bbpb(data []float64, period int, stdDev float64, maType string, volume []float64) (floats.Slice, error) {
	inc, err := newBbpb(data, period, stdDev, maType, volume)
	return calculate(len(data), inc, err)
}

func newBbpb(data []float64, period int, stdDev float64, maType string, volume []float64) (indicator.Float64Calculator, error) {
	ma, offset, err := movingAverage(data, volume, period, maType)
	if err != nil {
		return nil, err
	}

	inc, err := indicator.NewBbpb(data[offset:], period, stdDev, ma)
	if err != nil {
		return nil, err
	}

	return inc, nil
}
