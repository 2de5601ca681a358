package config

import (
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/c9s/tarq/pkg/talib"
	"github.com/c9s/tarq/pkg/types"
)

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name       string
		configFile string
		wantErr    bool
		f          func(t *testing.T, config *Config)
	}{
		{
			name:       "jobs",
			configFile: "testdata/jobs.yaml",
			f: func(t *testing.T, config *Config) {
				assert.Equal(t, StringSlice{filepath.Join("testdata", "btcusdt-1h.csv")}, config.Source.File)
				assert.Equal(t, SourceFormatBinance, config.Source.Format)
				assert.Equal(t, OutputFormatCSV, config.Output.Format)
				assert.True(t, config.Output.Pad)
				assert.Equal(t, "/tmp/tarq.prom", config.Metrics.Textfile)

				require.Len(t, config.Indicators, 6)

				sma := config.Indicators[0]
				assert.Equal(t, "sma", sma.Name)
				assert.Equal(t, 20, sma.Period)
				assert.Equal(t, types.PriceColumnClose, sma.Source)
				assert.Equal(t, "SMA(20)", sma.Label())

				ema := config.Indicators[1]
				assert.Equal(t, "ema", ema.Name)
				assert.Equal(t, types.PriceColumnHigh, ema.Source)

				bbands := config.Indicators[2]
				assert.Equal(t, types.MATypeEMA, bbands.MAType)
				assert.Equal(t, talib.DefaultStdDev, bbands.StdDev)
				assert.Equal(t, "BBANDS(20,2,EMA)", bbands.Label())

				bbpb := config.Indicators[3]
				assert.Equal(t, types.MATypeSMA, bbpb.MAType)
				assert.Equal(t, 1.5, bbpb.StdDev)

				kama := config.Indicators[4]
				assert.Equal(t, talib.Params{
					Period: talib.DefaultKAMAPeriod,
					StdDev: talib.DefaultStdDev,
					MAType: types.MATypeSMA,
					Fast:   talib.DefaultKAMAFast,
					Slow:   talib.DefaultKAMASlow,
					Source: types.PriceColumnClose,
				}, kama.Params)

				assert.Equal(t, 5, config.Indicators[5].Period)

				assert.NoError(t, config.Validate())
			},
		},
		{
			name:       "invalid",
			configFile: "testdata/invalid.yaml",
			f: func(t *testing.T, config *Config) {
				err := config.Validate()
				require.Error(t, err)

				errs := multierr.Errors(err)
				assert.Len(t, errs, 5, err.Error())
				assert.Contains(t, err.Error(), "parquet")
				assert.Contains(t, err.Error(), "macd")
				assert.Contains(t, err.Error(), "xlsx")

				var unknown bool
				for _, e := range errs {
					if errors.Is(e, talib.ErrUnknownIndicator) {
						unknown = true
					}
				}
				assert.True(t, unknown)
			},
		},
		{
			name:       "bad ma type",
			configFile: "testdata/bad_ma_type.yaml",
			wantErr:    true,
		},
		{
			name:       "missing file",
			configFile: "testdata/nope.yaml",
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config, err := Load(tt.configFile)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			if tt.f != nil {
				tt.f(t, config)
			}
		})
	}
}

func TestParse_Defaults(t *testing.T) {
	config, err := Parse([]byte(`
source:
  file: [a.json, b.json]
indicators:
  - name: Stddev
    period: 5
    ddof: 1
`))
	require.NoError(t, err)

	assert.Equal(t, SourceFormatJSON, config.Source.Format)
	assert.Equal(t, StringSlice{"a.json", "b.json"}, config.Source.File)
	assert.Equal(t, OutputFormatTable, config.Output.Format)
	assert.Equal(t, "stddev", config.Indicators[0].Name)
	assert.Equal(t, 1, config.Indicators[0].Ddof)
}

func TestJob_Validate(t *testing.T) {
	job := Job{Name: "bbands", Params: talib.Params{Period: 20, MAType: "hull"}}
	err := job.Validate()
	assert.True(t, errors.Is(err, types.ErrInvalidMAType), "%v", err)

	job.MAType = types.MATypeTEMA
	assert.NoError(t, job.Validate())
}
