package csvsource

import (
	"encoding/csv"
	"io"

	"github.com/pkg/errors"

	"github.com/c9s/tarq/pkg/types"
)

// CSVBarReader reads OHLCV bars from CSV data.
type CSVBarReader struct {
	csv     *csv.Reader
	decoder CSVBarDecoder
	records int
}

// MakeCSVBarReader is a factory method type that creates a new CSVBarReader.
type MakeCSVBarReader func(csv *csv.Reader) *CSVBarReader

// NewBinanceCSVBarReader creates a new CSVBarReader for Binance CSV files.
func NewBinanceCSVBarReader(csv *csv.Reader) *CSVBarReader {
	return NewCSVBarReaderWithDecoder(csv, BinanceCSVBarDecoder)
}

// NewMetaTraderCSVBarReader creates a new CSVBarReader for MetaTrader CSV files.
func NewMetaTraderCSVBarReader(csv *csv.Reader) *CSVBarReader {
	csv.Comma = ';'
	return NewCSVBarReaderWithDecoder(csv, MetaTraderCSVBarDecoder)
}

// NewCSVBarReaderWithDecoder creates a new CSVBarReader with the given decoder.
func NewCSVBarReaderWithDecoder(csv *csv.Reader, decoder CSVBarDecoder) *CSVBarReader {
	csv.FieldsPerRecord = -1
	csv.TrimLeadingSpace = true
	return &CSVBarReader{
		csv:     csv,
		decoder: decoder,
	}
}

// Read reads the next bar. A header line in front of the data is skipped.
func (r *CSVBarReader) Read() (types.Bar, error) {
	for {
		rec, err := r.csv.Read()
		if err != nil {
			return types.Bar{}, err
		}

		r.records++
		b, err := r.decoder(rec)
		if err != nil && r.records == 1 && errors.Is(err, ErrInvalidTimeFormat) {
			continue
		}

		if err != nil {
			line, _ := r.csv.FieldPos(0)
			return b, errors.Wrapf(err, "line %d", line)
		}

		return b, nil
	}
}

// ReadAll reads all the bars into a series.
func (r *CSVBarReader) ReadAll() (*types.Series, error) {
	var s types.Series
	for {
		b, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		s.Append(b)
	}

	return &s, nil
}
