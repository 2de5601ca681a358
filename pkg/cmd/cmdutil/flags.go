package cmdutil

import "github.com/spf13/pflag"

// PersistentFlags defines the flags shared by every sub-command
func PersistentFlags(flags *pflag.FlagSet) {
	flags.Bool("debug", false, "debug mode")
	flags.String("log-file", "", "also write json logs into this file, rotated by size")
	flags.Int("concurrency", 0, "max number of indicators computed at the same time, 0 means no limit")
}

// OutputFlags defines the flags of the report output
func OutputFlags(flags *pflag.FlagSet) {
	flags.String("format", "", "output format: table, csv or xlsx")
	flags.String("output", "", "output file, stdout is used when empty")
	flags.Bool("pad", false, "keep the warm-up rows, filled with NaN")
	flags.String("chart", "", "also render a png chart into this file")
	flags.String("metrics-textfile", "", "write prometheus metrics into this textfile")
}
