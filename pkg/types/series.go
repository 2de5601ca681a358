package types

import (
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/c9s/tarq/pkg/datatype/floats"
)

// PriceColumn selects one column of a Series.
type PriceColumn string

const (
	PriceColumnOpen   PriceColumn = "open"
	PriceColumnHigh   PriceColumn = "high"
	PriceColumnLow    PriceColumn = "low"
	PriceColumnClose  PriceColumn = "close"
	PriceColumnVolume PriceColumn = "volume"
)

var ErrInvalidPriceColumn = errors.New("invalid price column")

func ParsePriceColumn(s string) (PriceColumn, error) {
	c := PriceColumn(strings.ToLower(strings.TrimSpace(s)))
	switch c {
	case PriceColumnOpen, PriceColumnHigh, PriceColumnLow, PriceColumnClose, PriceColumnVolume:
		return c, nil
	case "":
		return PriceColumnClose, nil
	}
	return c, errors.Wrapf(ErrInvalidPriceColumn, "%q", s)
}

// Series is a column oriented OHLCV table. All columns share the same length.
type Series struct {
	Time   []time.Time
	Open   floats.Slice
	High   floats.Slice
	Low    floats.Slice
	Close  floats.Slice
	Volume floats.Slice
}

// Bar is a single row of a Series.
type Bar struct {
	Time                          time.Time
	Open, High, Low, Close, Volume float64
}

func (s *Series) Append(b Bar) {
	s.Time = append(s.Time, b.Time)
	s.Open.Push(b.Open)
	s.High.Push(b.High)
	s.Low.Push(b.Low)
	s.Close.Push(b.Close)
	s.Volume.Push(b.Volume)
}

func (s *Series) Bar(i int) Bar {
	return Bar{
		Time:   s.Time[i],
		Open:   s.Open[i],
		High:   s.High[i],
		Low:    s.Low[i],
		Close:  s.Close[i],
		Volume: s.Volume[i],
	}
}

func (s *Series) Len() int {
	return len(s.Close)
}

func (s *Series) Column(c PriceColumn) (floats.Slice, error) {
	switch c {
	case PriceColumnOpen:
		return s.Open, nil
	case PriceColumnHigh:
		return s.High, nil
	case PriceColumnLow:
		return s.Low, nil
	case PriceColumnClose, "":
		return s.Close, nil
	case PriceColumnVolume:
		return s.Volume, nil
	}
	return nil, errors.Wrapf(ErrInvalidPriceColumn, "%q", c)
}

// HasVolume reports whether the volume column carries any non-zero value.
func (s *Series) HasVolume() bool {
	for _, v := range s.Volume {
		if v != 0 {
			return true
		}
	}
	return false
}
