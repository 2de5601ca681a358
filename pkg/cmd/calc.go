package cmd

import (
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/c9s/tarq/pkg/cmd/cmdutil"
	"github.com/c9s/tarq/pkg/config"
	"github.com/c9s/tarq/pkg/talib"
	"github.com/c9s/tarq/pkg/types"
)

func init() {
	calcFlags(CalcCmd.Flags())
	RootCmd.AddCommand(CalcCmd)
}

func calcFlags(flags *pflag.FlagSet) {
	flags.StringSlice("file", nil, "csv or json file, or a directory of csv files")
	flags.String("source-format", "", "binance, metatrader or json, inferred from the file extension when empty")
	flags.String("source", string(types.PriceColumnClose), "price column: open, high, low, close or volume")
	flags.Int("period", 0, "window size")
	flags.Float64("std-dev", talib.DefaultStdDev, "band width in standard deviations (bbands, bbpb)")
	flags.String("ma-type", string(types.MATypeSMA), "middle band moving average (bbands, bbpb)")
	flags.Int("fast", talib.DefaultKAMAFast, "kama fast period")
	flags.Int("slow", talib.DefaultKAMASlow, "kama slow period")
	flags.Int("ddof", talib.DefaultStdDevDdof, "stddev delta degrees of freedom")
	cmdutil.OutputFlags(flags)
}

// go run ./cmd/tarq calc bbands --file btcusdt-1h.csv --period 20 --ma-type ema
var CalcCmd = &cobra.Command{
	Use:   "calc [indicator]",
	Short: "compute one indicator over a price file",
	Long:  "compute one indicator over a price file.\n\nindicators: " + strings.Join(talib.Names, ", "),
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := calcConfig(cmd, args[0])
		if err != nil {
			return err
		}

		ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		return runConfig(ctx, cfg, cmd.OutOrStdout())
	},
}

// calcConfig turns the calc flags into a job file with a single job.
func calcConfig(cmd *cobra.Command, name string) (*config.Config, error) {
	flags := cmd.Flags()

	var cfg config.Config
	var err error

	if cfg.Source.File, err = flags.GetStringSlice("file"); err != nil {
		return nil, err
	}

	if cfg.Source.Format, err = flags.GetString("source-format"); err != nil {
		return nil, err
	}

	job := config.Job{Name: strings.ToLower(strings.TrimSpace(name))}

	source, err := flags.GetString("source")
	if err != nil {
		return nil, err
	}

	if job.Source, err = types.ParsePriceColumn(source); err != nil {
		return nil, err
	}

	maType, err := flags.GetString("ma-type")
	if err != nil {
		return nil, err
	}

	if job.MAType, err = types.ParseMAType(maType); err != nil {
		return nil, err
	}

	if job.Period, err = flags.GetInt("period"); err != nil {
		return nil, err
	}

	if job.StdDev, err = flags.GetFloat64("std-dev"); err != nil {
		return nil, err
	}

	if job.Fast, err = flags.GetInt("fast"); err != nil {
		return nil, err
	}

	if job.Slow, err = flags.GetInt("slow"); err != nil {
		return nil, err
	}

	if job.Ddof, err = flags.GetInt("ddof"); err != nil {
		return nil, err
	}

	job.Params.Defaults(job.Name)
	cfg.Indicators = []config.Job{job}

	if cfg.Output.Format, err = flags.GetString("format"); err != nil {
		return nil, err
	}

	if cfg.Output.File, err = flags.GetString("output"); err != nil {
		return nil, err
	}

	if cfg.Output.Pad, err = flags.GetBool("pad"); err != nil {
		return nil, err
	}

	if cfg.Output.Chart, err = flags.GetString("chart"); err != nil {
		return nil, err
	}

	if cfg.Metrics.Textfile, err = flags.GetString("metrics-textfile"); err != nil {
		return nil, err
	}

	cfg.Defaults()
	return &cfg, nil
}
