package indicator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

/*
python:

import pandas as pd

data = pd.Series([1, 2, 3, 4, 5, 6, 7, 8, 9, 10])
print(data.rolling(3).mean())
*/
func TestSMA(t *testing.T) {
	sma, err := NewSMA([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, 3)
	require.NoError(t, err)
	assert.Equal(t, 8, sma.Remaining())

	values, err := sma.Calculate()
	require.NoError(t, err)
	assertFloatsInDelta(t, []float64{2, 3, 4, 5, 6, 7, 8, 9}, values, delta)
	assertExhausted(t, sma)
}

func TestSMA_Next(t *testing.T) {
	sma, err := NewSMA([]float64{1, 2, 3, 4}, 4)
	require.NoError(t, err)

	v, ok := sma.Next()
	assert.True(t, ok)
	assert.InDelta(t, 2.5, v, delta)
	assertExhausted(t, sma)
}

func TestSMA_RollingEquivalence(t *testing.T) {
	data := randomSeries(1, 500, 1, 100)

	for _, period := range []int{1, 2, 7, 20, 500} {
		sma, err := NewSMA(data, period)
		require.NoError(t, err)

		values, err := sma.Calculate()
		require.NoError(t, err)

		ws := windows(data, period)
		require.Len(t, values, len(ws))
		for i, w := range ws {
			assert.InDelta(t, floats.Sum(w)/float64(period), values[i], delta, "period %d index %d", period, i)
		}
	}
}
