package cmd

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/c9s/tarq/pkg/cmd/cmdutil"
	"github.com/c9s/tarq/pkg/config"
	"github.com/c9s/tarq/pkg/metrics"
	"github.com/c9s/tarq/pkg/report"
	"github.com/c9s/tarq/pkg/runner"
	"github.com/c9s/tarq/pkg/style"
)

func init() {
	RunCmd.Flags().String("config", "tarq.yaml", "job file")
	cmdutil.OutputFlags(RunCmd.Flags())
	RootCmd.AddCommand(RunCmd)
}

// go run ./cmd/tarq run --config jobs.yaml
var RunCmd = &cobra.Command{
	Use:   "run",
	Short: "run every indicator job of a job file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		configFile, err := cmd.Flags().GetString("config")
		if err != nil {
			return err
		}

		cfg, err := config.Load(configFile)
		if err != nil {
			return err
		}

		if err := overrideOutput(cmd, cfg); err != nil {
			return err
		}

		ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		return runConfig(ctx, cfg, cmd.OutOrStdout())
	},
}

// overrideOutput lets the output flags win over the job file.
func overrideOutput(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()

	var err error
	if flags.Changed("format") {
		if cfg.Output.Format, err = flags.GetString("format"); err != nil {
			return err
		}
	}

	if flags.Changed("output") {
		if cfg.Output.File, err = flags.GetString("output"); err != nil {
			return err
		}
	}

	if flags.Changed("pad") {
		if cfg.Output.Pad, err = flags.GetBool("pad"); err != nil {
			return err
		}
	}

	if flags.Changed("chart") {
		if cfg.Output.Chart, err = flags.GetString("chart"); err != nil {
			return err
		}
	}

	if flags.Changed("metrics-textfile") {
		if cfg.Metrics.Textfile, err = flags.GetString("metrics-textfile"); err != nil {
			return err
		}
	}

	cfg.Defaults()
	return nil
}

func runConfig(ctx context.Context, cfg *config.Config, stdout io.Writer) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	series, err := runner.LoadSeries(cfg.Source.File, cfg.Source.Format)
	if err != nil {
		return err
	}

	log.Infof("loaded %d bars, computing %d indicators", series.Len(), len(cfg.Indicators))

	r := &runner.Runner{Concurrency: viper.GetInt("concurrency")}
	results, err := r.Run(ctx, series, cfg.Indicators)

	if cfg.Metrics.Textfile != "" {
		if metricsErr := metrics.WriteTextfile(cfg.Metrics.Textfile); metricsErr != nil {
			log.WithError(metricsErr).Errorf("unable to write metrics textfile %s", cfg.Metrics.Textfile)
		}
	}

	if err != nil {
		return err
	}

	frame := report.NewFrame(series, results, cfg.Output.Pad)
	if err := writeOutput(stdout, frame, cfg.Output); err != nil {
		return err
	}

	if cfg.Output.Chart != "" {
		if err := report.WriteChart(cfg.Output.Chart, frame); err != nil {
			return err
		}
		log.Infof("chart is written to %s", cfg.Output.Chart)
	}

	return nil
}

func writeOutput(stdout io.Writer, frame *report.Frame, output config.Output) error {
	if output.Format == config.OutputFormatXLSX {
		if err := report.WriteXLSX(output.File, frame); err != nil {
			return err
		}
		log.Infof("%d rows are written to %s", frame.Len(), output.File)
		return nil
	}

	w := stdout
	tableStyle, withColor := style.NewTableStyle()
	if output.File != "" {
		f, err := os.Create(output.File)
		if err != nil {
			return errors.Wrapf(err, "can not create output file %s", output.File)
		}
		defer f.Close()

		w = f
		tableStyle, withColor = style.NewPlainTableStyle(), false
	}

	switch output.Format {
	case config.OutputFormatCSV:
		return report.WriteCSV(w, frame)
	default:
		report.WriteTable(w, frame, tableStyle, withColor)
	}

	return nil
}
