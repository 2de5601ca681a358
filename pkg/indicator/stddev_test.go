package indicator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
)

/*
python:

import numpy as np

data = pd.Series([10, 12, 23, 23, 16, 20, 25, 30, 28, 26])
print(data.rolling(3).std(ddof=0))
*/
func TestStdDev(t *testing.T) {
	input := []float64{10, 12, 23, 23, 16, 20, 25, 30, 28, 26}
	expected := []float64{
		5.715476066494082, 5.185449728701348, 3.2998316455372225, 2.867441755680877,
		3.6817870057290882, 4.082482904638632, 2.054804667656329, 1.6329931618554558,
	}

	stddev, err := NewStdDev(input, 3, 0)
	require.NoError(t, err)

	values, err := stddev.Calculate()
	require.NoError(t, err)
	assertFloatsInDelta(t, expected, values, 1e-4)
	assertExhausted(t, stddev)
}

func TestStdDev_RollingEquivalence(t *testing.T) {
	data := randomSeries(9, 400, 0, 10)

	for _, period := range []int{2, 5, 20} {
		stddev, err := NewStdDev(data, period, 0)
		require.NoError(t, err)

		values, err := stddev.Calculate()
		require.NoError(t, err)

		ws := windows(data, period)
		require.Len(t, values, len(ws))
		for i, w := range ws {
			n := float64(len(w))
			_, variance := stat.MeanVariance(w, nil)
			want := math.Sqrt(variance * (n - 1) / n)
			assert.InDelta(t, want, values[i], delta, "period %d index %d", period, i)
		}
	}
}

func TestStdDev_Ddof(t *testing.T) {
	input := []float64{2, 4, 4, 4, 5, 5, 7, 9}

	stddev, err := NewStdDev(input, 8, 1)
	require.NoError(t, err)

	v, ok := stddev.Next()
	require.True(t, ok)

	// sum of squares / (n - ddof) - mean^2
	assert.InDelta(t, math.Sqrt(232.0/7.0-25.0), v, delta)

	stddev, err = NewStdDev(input, 8, 8)
	require.NoError(t, err)

	v, ok = stddev.Next()
	require.True(t, ok)
	assert.True(t, math.IsInf(v, 1))
}
