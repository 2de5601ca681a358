package cmd

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rifflock/lfshook"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/c9s/tarq/pkg/cmd/cmdutil"
)

var RootCmd = &cobra.Command{
	Use:   "tarq",
	Short: "tarq computes technical analysis indicators over price series",

	// SilenceUsage is an option to silence usage when an error occurs.
	SilenceUsage: true,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogger(log.StandardLogger())
		return nil
	},

	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	cmdutil.PersistentFlags(RootCmd.PersistentFlags())
}

func setupLogger(logger *log.Logger) {
	logger.SetFormatter(&prefixed.TextFormatter{})

	if viper.GetBool("debug") {
		logger.SetLevel(log.DebugLevel)
	}

	logFile := viper.GetString("log-file")
	if logFile == "" {
		return
	}

	writer := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    50, // megabytes
		MaxBackups: 5,
		MaxAge:     30, // days
	}

	logger.AddHook(
		lfshook.NewHook(
			lfshook.WriterMap{
				log.DebugLevel: writer,
				log.InfoLevel:  writer,
				log.WarnLevel:  writer,
				log.ErrorLevel: writer,
				log.FatalLevel: writer,
			},
			&log.JSONFormatter{},
		),
	)
}

func loadDotenv() {
	for _, dotenvFile := range []string{".env.local", ".env"} {
		if _, err := os.Stat(dotenvFile); err != nil {
			continue
		}

		// variables that are already set take precedence
		if err := godotenv.Load(dotenvFile); err != nil {
			log.WithError(err).Errorf("error loading dotenv file %s", dotenvFile)
		}
	}
}

func Execute() {
	loadDotenv()

	viper.SetEnvPrefix("TARQ")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	// Enable environment variable binding, the env vars are not overloaded yet.
	viper.AutomaticEnv()

	// Once the flags are defined, we can bind config keys with flags.
	if err := viper.BindPFlags(RootCmd.PersistentFlags()); err != nil {
		log.WithError(err).Errorf("failed to bind persistent flags. please check the flag settings.")
	}

	if err := RootCmd.Execute(); err != nil {
		log.WithError(err).Fatalf("cannot execute command")
	}
}
