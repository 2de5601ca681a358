// Package jsonsource decodes OHLCV documents with fastjson.
//
// Three layouts are accepted:
//
//	{"time": [...], "open": [...], "high": [...], "low": [...], "close": [...], "volume": [...]}
//	[{"time": 1609459200000, "open": 1.0, "high": 2.0, "low": 0.5, "close": 1.5, "volume": 10}, ...]
//	[[1609459200000, "1.0", "2.0", "0.5", "1.5", "10"], ...]
//
// The last one is the kline array returned by the Binance REST API. Numbers
// may also be given as strings; only the close column is required.
package jsonsource

import (
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/valyala/fastjson"

	"github.com/c9s/tarq/pkg/types"
)

var (
	ErrUnsupportedLayout = errors.New("unsupported json layout")
	ErrMissingClose      = errors.New("close column is required")
)

// column keys and their short aliases
var columnKeys = map[string][]string{
	"time":   {"time", "t", "timestamp"},
	"open":   {"open", "o"},
	"high":   {"high", "h"},
	"low":    {"low", "l"},
	"close":  {"close", "c", "price"},
	"volume": {"volume", "v"},
}

func ReadSeriesFromJSON(path string) (*types.Series, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	series, err := ParseSeries(payload)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}

	return series, nil
}

func ParseSeries(payload []byte) (*types.Series, error) {
	var parser fastjson.Parser

	v, err := parser.ParseBytes(payload)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse payload")
	}

	switch v.Type() {
	case fastjson.TypeObject:
		return parseColumns(v)
	case fastjson.TypeArray:
		return parseRows(v.GetArray())
	}

	return nil, errors.Wrapf(ErrUnsupportedLayout, "top level %s", v.Type())
}

func lookup(v *fastjson.Value, column string) *fastjson.Value {
	for _, key := range columnKeys[column] {
		if x := v.Get(key); x != nil {
			return x
		}
	}
	return nil
}

func parseColumns(v *fastjson.Value) (*types.Series, error) {
	closes := lookup(v, "close")
	if closes == nil {
		return nil, ErrMissingClose
	}

	n := len(closes.GetArray())
	var series types.Series
	for i := 0; i < n; i++ {
		var (
			b   types.Bar
			err error
		)

		if b.Time, err = timeAt(lookup(v, "time"), i); err != nil {
			return nil, err
		}

		for _, f := range []struct {
			column string
			dst    *float64
		}{
			{"open", &b.Open}, {"high", &b.High}, {"low", &b.Low}, {"close", &b.Close}, {"volume", &b.Volume},
		} {
			if *f.dst, err = numberAt(lookup(v, f.column), i, f.column); err != nil {
				return nil, err
			}
		}

		series.Append(fillMissing(b))
	}

	return &series, nil
}

func parseRows(rows []*fastjson.Value) (*types.Series, error) {
	var series types.Series
	for i, row := range rows {
		var (
			b   types.Bar
			err error
		)

		switch row.Type() {
		case fastjson.TypeArray:
			b, err = parseArrayRow(row.GetArray())
		case fastjson.TypeObject:
			b, err = parseObjectRow(row)
		default:
			err = errors.Wrapf(ErrUnsupportedLayout, "row type %s", row.Type())
		}

		if err != nil {
			return nil, errors.Wrapf(err, "row %d", i)
		}

		series.Append(b)
	}

	return &series, nil
}

func parseArrayRow(values []*fastjson.Value) (b types.Bar, err error) {
	if len(values) < 5 {
		return b, errors.Wrapf(ErrUnsupportedLayout, "expect at least 5 elements, got %d", len(values))
	}

	if b.Time, err = parseTime(values[0]); err != nil {
		return b, err
	}

	fields := []*float64{&b.Open, &b.High, &b.Low, &b.Close}
	if len(values) > 5 {
		fields = append(fields, &b.Volume)
	}

	for i, dst := range fields {
		if *dst, err = number(values[i+1]); err != nil {
			return b, err
		}
	}

	return b, nil
}

func parseObjectRow(v *fastjson.Value) (b types.Bar, err error) {
	if lookup(v, "close") == nil {
		return b, ErrMissingClose
	}

	if t := lookup(v, "time"); t != nil {
		if b.Time, err = parseTime(t); err != nil {
			return b, err
		}
	}

	for _, f := range []struct {
		column string
		dst    *float64
	}{
		{"open", &b.Open}, {"high", &b.High}, {"low", &b.Low}, {"close", &b.Close}, {"volume", &b.Volume},
	} {
		if x := lookup(v, f.column); x != nil {
			if *f.dst, err = number(x); err != nil {
				return b, errors.Wrap(err, f.column)
			}
		}
	}

	return fillMissing(b), nil
}

// fillMissing copies the close price into the missing open, high and low prices.
func fillMissing(b types.Bar) types.Bar {
	if b.Open == 0 && b.High == 0 && b.Low == 0 {
		b.Open, b.High, b.Low = b.Close, b.Close, b.Close
	}
	return b
}

func numberAt(column *fastjson.Value, i int, name string) (float64, error) {
	if column == nil {
		return 0, nil
	}

	values := column.GetArray()
	if i >= len(values) {
		return 0, errors.Errorf("column %s has %d values, expect more than %d", name, len(values), i)
	}

	v, err := number(values[i])
	if err != nil {
		return 0, errors.Wrapf(err, "%s[%d]", name, i)
	}
	return v, nil
}

func timeAt(column *fastjson.Value, i int) (time.Time, error) {
	if column == nil {
		return time.Time{}, nil
	}

	values := column.GetArray()
	if i >= len(values) {
		return time.Time{}, errors.Errorf("column time has %d values, expect more than %d", len(values), i)
	}

	return parseTime(values[i])
}

func number(v *fastjson.Value) (float64, error) {
	switch v.Type() {
	case fastjson.TypeNumber:
		return v.Float64()
	case fastjson.TypeString:
		return strconv.ParseFloat(string(v.GetStringBytes()), 64)
	}
	return 0, errors.Errorf("expect number, got %s", v.Type())
}

// parseTime accepts unix seconds, unix milliseconds or an RFC3339 string.
func parseTime(v *fastjson.Value) (time.Time, error) {
	if v.Type() == fastjson.TypeString {
		s := string(v.GetStringBytes())
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			return t, nil
		}
	}

	ts, err := number(v)
	if err != nil {
		return time.Time{}, errors.Wrap(err, "time")
	}

	if ts >= 1e11 {
		return time.UnixMilli(int64(ts)).UTC(), nil
	}
	return time.Unix(int64(ts), 0).UTC(), nil
}
