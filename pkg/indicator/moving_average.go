package indicator

import (
	"github.com/pkg/errors"

	"github.com/c9s/tarq/pkg/types"
)

const (
	DefaultKAMAFast = 2
	DefaultKAMASlow = 30
)

// MovingAverage wraps exactly one of the moving average indicators so that
// the bollinger bands can step the middle band without knowing its variant.
type MovingAverage struct {
	maType types.MAType
	inc    Float64Stepper
}

// SelectMovingAverage wraps an already constructed moving average. Only the
// moving averages of this package are accepted.
func SelectMovingAverage(ma Float64Stepper) (*MovingAverage, error) {
	var maType types.MAType
	switch ma.(type) {
	case *SMA:
		maType = types.MATypeSMA
	case *EMA:
		maType = types.MATypeEMA
	case *WMA:
		maType = types.MATypeWMA
	case *VWMA:
		maType = types.MATypeVWMA
	case *DEMA:
		maType = types.MATypeDEMA
	case *TEMA:
		maType = types.MATypeTEMA
	case *KAMA:
		maType = types.MATypeKAMA
	default:
		return nil, errors.Wrapf(types.ErrInvalidMAType, "%T is not a moving average", ma)
	}

	return &MovingAverage{maType: maType, inc: ma}, nil
}

// NewMovingAverage constructs the variant named by maType over data. volume is
// only read by VWMA; KAMA uses DefaultKAMAFast and DefaultKAMASlow.
func NewMovingAverage(maType types.MAType, data, volume []float64, period int) (*MovingAverage, error) {
	var (
		inc Float64Stepper
		err error
	)

	switch maType {
	case types.MATypeSMA:
		inc, err = NewSMA(data, period)
	case types.MATypeEMA:
		inc, err = NewEMA(data, period)
	case types.MATypeWMA:
		inc, err = NewWMA(data, period)
	case types.MATypeVWMA:
		if volume == nil {
			return nil, errors.Wrap(ErrLengthMismatch, "vwma: volume series is required")
		}
		inc, err = NewVWMA(data, volume, period)
	case types.MATypeDEMA:
		inc, err = NewDEMA(data, period)
	case types.MATypeTEMA:
		inc, err = NewTEMA(data, period)
	case types.MATypeKAMA:
		inc, err = NewKAMA(data, period, DefaultKAMAFast, DefaultKAMASlow)
	default:
		return nil, errors.Wrapf(types.ErrInvalidMAType, "%q", maType)
	}

	if err != nil {
		return nil, err
	}

	return &MovingAverage{maType: maType, inc: inc}, nil
}

func (ma *MovingAverage) Type() types.MAType {
	return ma.maType
}

// Next advances the wrapped moving average by one step.
func (ma *MovingAverage) Next() (float64, bool) {
	return ma.inc.Next()
}

func (ma *MovingAverage) Remaining() int {
	return ma.inc.Remaining()
}
