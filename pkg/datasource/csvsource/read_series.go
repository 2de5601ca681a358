package csvsource

import (
	"encoding/csv"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/c9s/tarq/pkg/types"
)

type Format string

const (
	FormatBinance    Format = "binance"
	FormatMetaTrader Format = "metatrader"
)

var ErrUnknownFormat = errors.New("unknown csv format")

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatBinance, FormatMetaTrader:
		return f, nil
	case "":
		return FormatBinance, nil
	}
	return "", errors.Wrapf(ErrUnknownFormat, "%q", s)
}

func (f Format) maker() MakeCSVBarReader {
	if f == FormatMetaTrader {
		return NewMetaTraderCSVBarReader
	}
	return NewBinanceCSVBarReader
}

// ReadSeriesFromCSV reads all the .csv files in a given directory or a single file into one series.
// Files are read in lexical order.
func ReadSeriesFromCSV(path string, format Format) (*types.Series, error) {
	return ReadSeriesFromCSVWithDecoder(path, format.maker())
}

// ReadSeriesFromCSVWithDecoder permits using a custom CSVBarReader.
func ReadSeriesFromCSVWithDecoder(path string, maker MakeCSVBarReader) (*types.Series, error) {
	var series types.Series

	err := filepath.WalkDir(path, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if filepath.Ext(path) != ".csv" {
			return nil
		}

		file, err := os.Open(path)
		if err != nil {
			return err
		}
		//nolint:errcheck // Read ops only so safe to ignore err return
		defer file.Close()

		s, err := maker(csv.NewReader(file)).ReadAll()
		if err != nil {
			return errors.Wrap(err, path)
		}

		for i := 0; i < s.Len(); i++ {
			series.Append(s.Bar(i))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &series, nil
}
