package talib

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c9s/tarq/pkg/indicator"
	"github.com/c9s/tarq/pkg/types"
)

var prices = []float64{
	5.29411352124624, 12.669143122046927, 9.869522455185985, 8.162828597722068, 2.4970385976631873,
	2.496729860303394, 1.243470235752953, 11.58705466591917, 8.194272150313072, 9.563328995789382,
	0.7634815269862714, 12.914846107673528, 11.155265802245399, 3.217940616681935, 2.827359580250888,
	2.8475777261239528, 4.394300709882083, 7.216882324892644, 6.028896238619082, 4.227732994534937,
	8.331717052446457, 2.2855214163461355, 4.239451501250793, 5.189431594159254, 6.337695797978061,
	10.550252305830575, 3.055824411627005, 7.0822008116942285, 8.082906481434144, 1.0945652828159709,
}

func assertPadded(t *testing.T, values []float64, size, lookback int) {
	t.Helper()
	require.Len(t, values, size)
	for i := 0; i < lookback; i++ {
		assert.True(t, math.IsNaN(values[i]), "index %d should be NaN", i)
	}
	for i := lookback; i < size; i++ {
		assert.False(t, math.IsNaN(values[i]), "index %d should not be NaN", i)
	}
}

func TestPadding(t *testing.T) {
	tests := []struct {
		name     string
		compute  func() ([]float64, error)
		lookback int
	}{
		{"sma", func() ([]float64, error) { return SMA(prices, 5) }, 4},
		{"ema", func() ([]float64, error) { return EMA(prices, 5) }, 4},
		{"wma", func() ([]float64, error) { return WMA(prices, 5) }, 4},
		{"vwma", func() ([]float64, error) { return VWMA(prices, prices, 5) }, 4},
		{"dema", func() ([]float64, error) { return DEMA(prices, 5) }, 8},
		{"tema", func() ([]float64, error) { return TEMA(prices, 5) }, 12},
		{"kama", func() ([]float64, error) { return KAMA(prices, DefaultKAMAPeriod, DefaultKAMAFast, DefaultKAMASlow) }, 10},
		{"stddev", func() ([]float64, error) { return StdDev(prices, 5, DefaultStdDevDdof) }, 4},
		{"atr", func() ([]float64, error) { return ATR(prices, prices, prices, DefaultATRPeriod) }, 14},
		{"bbpb", func() ([]float64, error) { return Bbpb(prices, 5, 2, "sma", nil) }, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := tt.compute()
			require.NoError(t, err)
			assertPadded(t, values, len(prices), tt.lookback)
		})
	}
}

func TestSMA_MatchesIndicator(t *testing.T) {
	values, err := SMA(prices, 5)
	require.NoError(t, err)

	sma, err := indicator.NewSMA(prices, 5)
	require.NoError(t, err)

	expected := indicator.Drain(sma)
	assert.Equal(t, []float64(expected), []float64(values[4:]))
}

func TestBBands(t *testing.T) {
	upper, middle, lower, err := BBands(prices, 5, 2, "sma", nil)
	require.NoError(t, err)
	assertPadded(t, upper, len(prices), 4)
	assertPadded(t, middle, len(prices), 4)
	assertPadded(t, lower, len(prices), 4)

	assert.InDelta(t, 14.7680417, upper[4], 1e-6)
	assert.InDelta(t, 7.69852926, middle[4], 1e-6)
	assert.InDelta(t, 0.62901682, lower[4], 1e-6)
	assert.InDelta(t, 12.84001576, upper[29], 1e-6)
}

// the bands end together with a moving average that starts late
func TestBBands_Aligned(t *testing.T) {
	tests := []struct {
		maType   string
		lookback int
	}{
		{"dema", 8},
		{"tema", 12},
		{"kama", 5},
	}

	for _, tt := range tests {
		t.Run(tt.maType, func(t *testing.T) {
			upper, middle, lower, err := BBands(prices, 5, 2, tt.maType, nil)
			require.NoError(t, err)
			assertPadded(t, upper, len(prices), tt.lookback)
			assertPadded(t, lower, len(prices), tt.lookback)

			for i := tt.lookback; i < len(prices); i++ {
				assert.GreaterOrEqual(t, upper[i], middle[i])
				assert.GreaterOrEqual(t, middle[i], lower[i])
			}

			values, err := Bbpb(prices, 5, 2, tt.maType, nil)
			require.NoError(t, err)
			assertPadded(t, values, len(prices), tt.lookback)
		})
	}

	// the DEMA middle band is the DEMA itself
	_, middle, _, err := BBands(prices, 5, 2, "dema", nil)
	require.NoError(t, err)

	dema, err := DEMA(prices, 5)
	require.NoError(t, err)
	assert.Equal(t, []float64(dema[8:]), []float64(middle[8:]))
}

func TestBBands_Errors(t *testing.T) {
	_, _, _, err := BBands(prices, 5, 2, "vwma", nil)
	assert.True(t, errors.Is(err, indicator.ErrLengthMismatch), "%v", err)

	_, _, _, err = BBands(prices, 5, 2, "hull", nil)
	assert.True(t, errors.Is(err, types.ErrInvalidMAType), "%v", err)

	_, _, _, err = BBands(prices, 0, 2, "sma", nil)
	assert.True(t, errors.Is(err, indicator.ErrZeroPeriod), "%v", err)

	_, err = Bbpb(prices[:3], 5, 2, "ema", nil)
	assert.True(t, errors.Is(err, indicator.ErrInsufficientData), "%v", err)

	upper, _, _, err := BBands(prices, 5, 2, "VWMA", prices)
	require.NoError(t, err)
	assertPadded(t, upper, len(prices), 4)
}

func TestATR_Errors(t *testing.T) {
	_, err := ATR(prices, prices, prices[:10], DefaultATRPeriod)
	assert.True(t, errors.Is(err, indicator.ErrLengthMismatch), "%v", err)

	_, err = ATR(prices[:14], prices[:14], prices[:14], DefaultATRPeriod)
	assert.True(t, errors.Is(err, indicator.ErrInsufficientData), "%v", err)
}
