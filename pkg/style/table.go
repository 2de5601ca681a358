package style

import (
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// NewDefaultTableStyle is the colored style used when writing to a terminal.
func NewDefaultTableStyle() *table.Style {
	style := table.Style{
		Name:    "StyleRounded",
		Box:     table.StyleBoxRounded,
		Format:  table.FormatOptionsDefault,
		HTML:    table.DefaultHTMLOptions,
		Options: table.OptionsDefault,
		Title:   table.TitleOptionsDefault,
		Color:   table.ColorOptionsYellowWhiteOnBlack,
	}
	style.Color.Row = text.Colors{text.FgHiYellow, text.BgHiBlack}
	style.Color.RowAlternate = text.Colors{text.FgYellow, text.BgBlack}
	style.Format.Header = text.FormatDefault
	style.Format.Footer = text.FormatDefault
	return &style
}

// NewPlainTableStyle has no escape sequences, for pipes and files.
func NewPlainTableStyle() *table.Style {
	style := table.StyleRounded
	style.Format.Header = text.FormatDefault
	style.Format.Footer = text.FormatDefault
	return &style
}

// NewTableStyle picks the colored style only when stdout is a terminal.
func NewTableStyle() (*table.Style, bool) {
	if color.NoColor {
		return NewPlainTableStyle(), false
	}
	return NewDefaultTableStyle(), true
}
