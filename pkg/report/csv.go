package report

import (
	"encoding/csv"
	"io"
	"time"
)

// WriteCSV writes the frame with a header line. Times are RFC3339 and NaN is
// written as "NaN".
func WriteCSV(w io.Writer, f *Frame) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(f.Headers()); err != nil {
		return err
	}

	for i := 0; i < f.Len(); i++ {
		record := []string{f.Time(i).Format(time.RFC3339)}
		for _, v := range f.Row(i) {
			record = append(record, formatFloat(v, -1))
		}

		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
