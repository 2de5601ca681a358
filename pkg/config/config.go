package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/c9s/tarq/pkg/talib"
	"github.com/c9s/tarq/pkg/types"
)

const (
	SourceFormatBinance    = "binance"
	SourceFormatMetaTrader = "metatrader"
	SourceFormatJSON       = "json"
)

const (
	OutputFormatTable = "table"
	OutputFormatCSV   = "csv"
	OutputFormatXLSX  = "xlsx"
)

type Source struct {
	// File is a file or a directory of csv files, or a list of them.
	File   StringSlice `json:"file" yaml:"file"`
	Format string      `json:"format" yaml:"format"`
}

// Job is one indicator to compute over the source series.
type Job struct {
	Name         string `json:"name" yaml:"name"`
	talib.Params `yaml:",inline"`
}

func (j *Job) UnmarshalYAML(node *yaml.Node) error {
	type jobAlias Job

	a := jobAlias{
		Params: talib.Params{StdDev: talib.DefaultStdDev},
	}
	if err := node.Decode(&a); err != nil {
		return err
	}

	*j = Job(a)
	j.Name = strings.ToLower(strings.TrimSpace(j.Name))
	j.Params.Defaults(j.Name)
	return nil
}

func (j Job) Label() string {
	return j.Params.Label(j.Name)
}

type Output struct {
	Format string `json:"format" yaml:"format"`

	// File is the output path, stdout is used when it's empty.
	File string `json:"file" yaml:"file"`

	// Pad keeps the warm-up rows of the indicators as NaN so that every row
	// lines up with the input bar.
	Pad bool `json:"pad" yaml:"pad"`

	// Chart is an optional PNG path.
	Chart string `json:"chart" yaml:"chart"`
}

type Metrics struct {
	Textfile string `json:"textfile" yaml:"textfile"`
}

type Config struct {
	Source     Source  `json:"source" yaml:"source"`
	Indicators []Job   `json:"indicators" yaml:"indicators"`
	Output     Output  `json:"output" yaml:"output"`
	Metrics    Metrics `json:"metrics" yaml:"metrics"`
}

// Load reads the job file. Relative source paths are resolved against the
// directory of the job file.
func Load(configFile string) (*Config, error) {
	content, err := os.ReadFile(configFile)
	if err != nil {
		return nil, err
	}

	config, err := Parse(content)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to parse %s", configFile)
	}

	dir := filepath.Dir(configFile)
	for i, f := range config.Source.File {
		if !filepath.IsAbs(f) {
			config.Source.File[i] = filepath.Join(dir, f)
		}
	}

	return config, nil
}

func Parse(content []byte) (*Config, error) {
	var config Config
	if err := yaml.Unmarshal(content, &config); err != nil {
		return nil, err
	}

	config.Defaults()
	return &config, nil
}

func (c *Config) Defaults() {
	if c.Source.Format == "" {
		c.Source.Format = SourceFormatBinance
		if len(c.Source.File) > 0 && strings.EqualFold(filepath.Ext(c.Source.File[0]), ".json") {
			c.Source.Format = SourceFormatJSON
		}
	}
	c.Source.Format = strings.ToLower(c.Source.Format)

	if c.Output.Format == "" {
		c.Output.Format = OutputFormatTable
	}
	c.Output.Format = strings.ToLower(c.Output.Format)
}

// Validate reports every problem of the job file at once.
func (c *Config) Validate() (err error) {
	if len(c.Source.File) == 0 {
		err = multierr.Append(err, errors.New("source.file is required"))
	}

	for _, f := range c.Source.File {
		if _, statErr := os.Stat(f); statErr != nil {
			err = multierr.Append(err, errors.Wrap(statErr, "source.file"))
		}
	}

	switch c.Source.Format {
	case SourceFormatBinance, SourceFormatMetaTrader, SourceFormatJSON:
	default:
		err = multierr.Append(err, errors.Errorf("source.format: unknown format %q", c.Source.Format))
	}

	if len(c.Indicators) == 0 {
		err = multierr.Append(err, errors.New("indicators: at least one indicator is required"))
	}

	for i, job := range c.Indicators {
		if jobErr := job.Validate(); jobErr != nil {
			err = multierr.Append(err, errors.Wrapf(jobErr, "indicators[%d]", i))
		}
	}

	switch c.Output.Format {
	case OutputFormatTable, OutputFormatCSV:
	case OutputFormatXLSX:
		if c.Output.File == "" {
			err = multierr.Append(err, errors.New("output.file is required by the xlsx format"))
		}
	default:
		err = multierr.Append(err, errors.Errorf("output.format: unknown format %q", c.Output.Format))
	}

	return err
}

func (j Job) Validate() error {
	if !talib.IsValidName(j.Name) {
		return errors.Wrapf(talib.ErrUnknownIndicator, "%q", j.Name)
	}

	if j.Period <= 0 {
		return errors.Errorf("%s: period must be greater than 0, got %d", j.Name, j.Period)
	}

	if j.Name == "bbands" || j.Name == "bbpb" {
		if _, err := types.ParseMAType(string(j.MAType)); err != nil {
			return errors.Wrap(err, j.Name)
		}
	}

	return nil
}
