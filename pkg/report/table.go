package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// WriteTable renders the frame as a text table. style may be nil for the
// go-pretty default.
func WriteTable(w io.Writer, f *Frame, style *table.Style, withColor bool) {
	var write func(io.Writer, string, ...interface{})
	if withColor {
		write = color.New(color.FgHiYellow).FprintfFunc()
	} else {
		write = func(a io.Writer, format string, args ...interface{}) {
			fmt.Fprintf(a, format, args...)
		}
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	if style != nil {
		t.SetStyle(*style)
	}

	headers := f.Headers()
	header := make(table.Row, len(headers))
	footer := make(table.Row, len(headers))
	footer[0] = "lookback"

	var configs []table.ColumnConfig
	col := 1
	for i, h := range headers {
		header[i] = h
		if i > 0 {
			configs = append(configs, table.ColumnConfig{Number: i + 1, Align: text.AlignRight, AlignFooter: text.AlignRight})
		}
	}
	for _, result := range f.Results {
		for range result.Columns {
			footer[col] = result.Lookback
			col++
		}
	}

	t.AppendHeader(header)
	t.SetColumnConfigs(configs)

	for i := 0; i < f.Len(); i++ {
		row := table.Row{f.Time(i).Format(TimeLayout)}
		for _, v := range f.Row(i) {
			row = append(row, formatFloat(v, 6))
		}
		t.AppendRow(row)
	}

	t.AppendFooter(footer)

	write(w, "---- %d bars, %d rows ----\n", f.Series.Len(), f.Len())
	t.Render()
}
