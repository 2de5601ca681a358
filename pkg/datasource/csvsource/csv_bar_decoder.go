package csvsource

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/c9s/tarq/pkg/types"
)

// MetaTraderTimeFormat is the time format expected by the MetaTrader decoder when cols [0] and [1] are used.
const MetaTraderTimeFormat = "02/01/2006 15:04"

var (
	// ErrNotEnoughColumns is returned when the CSV price record does not have enough columns.
	ErrNotEnoughColumns = errors.New("not enough columns")

	// ErrInvalidTimeFormat is returned when the CSV price record does not have a valid time format.
	ErrInvalidTimeFormat = errors.New("cannot parse time string")

	// ErrInvalidPriceFormat is returned when the CSV price record does not have prices in float format.
	ErrInvalidPriceFormat = errors.New("OHLC prices must be in valid float format")

	// ErrInvalidVolumeFormat is returned when the CSV price record does not have a valid volume format.
	ErrInvalidVolumeFormat = errors.New("volume must be in valid float format")
)

// CSVBarDecoder is an extension point for CSVBarReader to support custom file formats.
type CSVBarDecoder func(record []string) (types.Bar, error)

// BinanceCSVBarDecoder decodes a CSV record from Binance or Bybit:
//
//	open_time(unix ms),open,high,low,close[,volume,...]
func BinanceCSVBarDecoder(record []string) (types.Bar, error) {
	var b types.Bar

	if len(record) < 5 {
		return b, ErrNotEnoughColumns
	}

	msec, err := strconv.ParseInt(strings.TrimSpace(record[0]), 10, 64)
	if err != nil {
		return b, errors.Wrapf(ErrInvalidTimeFormat, "%q", record[0])
	}
	b.Time = time.UnixMilli(msec).UTC()

	if err := parsePrices(&b, record[1:5]); err != nil {
		return types.Bar{}, err
	}

	if len(record) > 5 {
		if b.Volume, err = parseFloat(record[5], ErrInvalidVolumeFormat); err != nil {
			return types.Bar{}, err
		}
	}

	return b, nil
}

// MetaTraderCSVBarDecoder decodes a CSV record from MetaTrader:
//
//	date;time;open;high;low;close[;volume]
func MetaTraderCSVBarDecoder(record []string) (types.Bar, error) {
	var b types.Bar

	if len(record) < 6 {
		return b, ErrNotEnoughColumns
	}

	tStr := fmt.Sprintf("%s %s", record[0], record[1])
	t, err := time.Parse(MetaTraderTimeFormat, tStr)
	if err != nil {
		return b, errors.Wrapf(ErrInvalidTimeFormat, "%q", tStr)
	}
	b.Time = t

	if err := parsePrices(&b, record[2:6]); err != nil {
		return types.Bar{}, err
	}

	if len(record) > 6 {
		if b.Volume, err = parseFloat(record[6], ErrInvalidVolumeFormat); err != nil {
			return types.Bar{}, err
		}
	}

	return b, nil
}

func parsePrices(b *types.Bar, ohlc []string) (err error) {
	fields := []*float64{&b.Open, &b.High, &b.Low, &b.Close}
	for i, f := range fields {
		if *f, err = parseFloat(ohlc[i], ErrInvalidPriceFormat); err != nil {
			return err
		}
	}
	return nil
}

func parseFloat(s string, cause error) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, errors.Wrapf(cause, "%q", s)
	}
	return v, nil
}
