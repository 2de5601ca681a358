package talib

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/c9s/tarq/pkg/datatype/floats"
	"github.com/c9s/tarq/pkg/indicator"
	"github.com/c9s/tarq/pkg/types"
)

var ErrUnknownIndicator = errors.New("unknown indicator")

// Names lists the indicators accepted by Compute.
var Names = []string{"sma", "ema", "wma", "vwma", "dema", "tema", "kama", "atr", "stddev", "bbands", "bbpb"}

func IsValidName(name string) bool {
	for _, n := range Names {
		if n == name {
			return true
		}
	}
	return false
}

// Params carries the arguments of every indicator. Fields that an indicator
// does not use are ignored.
type Params struct {
	Period int               `json:"period" yaml:"period"`
	StdDev float64           `json:"stdDev" yaml:"stdDev"`
	MAType types.MAType      `json:"maType" yaml:"maType"`
	Fast   int               `json:"fast" yaml:"fast"`
	Slow   int               `json:"slow" yaml:"slow"`
	Ddof   int               `json:"ddof" yaml:"ddof"`
	Source types.PriceColumn `json:"source" yaml:"source"`
}

// Defaults fills the optional parameters of the given indicator.
func (p *Params) Defaults(name string) {
	if p.Period == 0 {
		switch name {
		case "kama":
			p.Period = DefaultKAMAPeriod
		case "atr":
			p.Period = DefaultATRPeriod
		}
	}

	if p.Fast == 0 {
		p.Fast = DefaultKAMAFast
	}

	if p.Slow == 0 {
		p.Slow = DefaultKAMASlow
	}

	if p.MAType == "" {
		p.MAType = types.MATypeSMA
	}

	if p.Source == "" {
		p.Source = types.PriceColumnClose
	}
}

// Label returns a short name like "BBANDS(20,2,EMA)".
func (p Params) Label(name string) string {
	upper := strings.ToUpper(name)
	switch name {
	case "kama":
		return fmt.Sprintf("%s(%d,%d,%d)", upper, p.Period, p.Fast, p.Slow)
	case "stddev":
		return fmt.Sprintf("%s(%d,%d)", upper, p.Period, p.Ddof)
	case "bbands", "bbpb":
		return fmt.Sprintf("%s(%d,%g,%s)", upper, p.Period, p.StdDev, p.MAType)
	}
	return fmt.Sprintf("%s(%d)", upper, p.Period)
}

type Column struct {
	Name   string
	Values floats.Slice
}

// Result holds the padded output columns of one indicator.
type Result struct {
	Name    string
	Label   string
	Columns []Column

	// Lookback is the number of padded warm-up rows. Values after it may
	// still be NaN, e.g. %b over a flat window.
	Lookback int
}

// Compute runs the named indicator over the series. Params must already carry
// its defaults.
func Compute(name string, series *types.Series, p Params) (*Result, error) {
	data, err := series.Column(p.Source)
	if err != nil {
		return nil, err
	}

	var volume []float64
	if series.HasVolume() {
		volume = series.Volume
	}

	result := &Result{Name: name, Label: p.Label(name)}
	size := series.Len()

	var inc indicator.Float64Calculator
	switch name {
	case "sma":
		inc, err = indicator.NewSMA(data, p.Period)
	case "ema":
		inc, err = indicator.NewEMA(data, p.Period)
	case "wma":
		inc, err = indicator.NewWMA(data, p.Period)
	case "vwma":
		inc, err = indicator.NewVWMA(data, volume, p.Period)
	case "dema":
		inc, err = indicator.NewDEMA(data, p.Period)
	case "tema":
		inc, err = indicator.NewTEMA(data, p.Period)
	case "kama":
		inc, err = indicator.NewKAMA(data, p.Period, p.Fast, p.Slow)
	case "stddev":
		inc, err = indicator.NewStdDev(data, p.Period, p.Ddof)
	case "atr":
		inc, err = indicator.NewATR(series.High, series.Low, series.Close, p.Period)
	case "bbpb":
		inc, err = newBbpb(data, p.Period, p.StdDev, string(p.MAType), volume)

	case "bbands":
		upper, middle, lower, err := bbands(data, p.Period, p.StdDev, string(p.MAType), volume)
		if err != nil {
			return nil, errors.Wrap(err, result.Label)
		}

		result.Columns = []Column{
			{Name: "upper", Values: floats.LeftPadNaN(upper, size)},
			{Name: "middle", Values: floats.LeftPadNaN(middle, size)},
			{Name: "lower", Values: floats.LeftPadNaN(lower, size)},
		}
		result.Lookback = size - len(middle)
		return result, nil

	default:
		return nil, errors.Wrapf(ErrUnknownIndicator, "%q", name)
	}

	values, lookback, err := calculateLookback(size, inc, err)
	if err != nil {
		return nil, errors.Wrap(err, result.Label)
	}

	result.Columns = []Column{{Name: name, Values: values}}
	result.Lookback = lookback
	return result, nil
}
