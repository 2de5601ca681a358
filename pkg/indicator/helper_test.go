package indicator

import (
	"encoding/json"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c9s/tarq/pkg/types"
)

const delta = 1e-9

// prices30 is the price series shared by the moving average and bollinger band fixtures.
var prices30 = []byte(`[5.29411352124624, 12.669143122046927, 9.869522455185985, 8.162828597722068, 2.4970385976631873,
	2.496729860303394, 1.243470235752953, 11.58705466591917, 8.194272150313072, 9.563328995789382,
	0.7634815269862714, 12.914846107673528, 11.155265802245399, 3.217940616681935, 2.827359580250888,
	2.8475777261239528, 4.394300709882083, 7.216882324892644, 6.028896238619082, 4.227732994534937,
	8.331717052446457, 2.2855214163461355, 4.239451501250793, 5.189431594159254, 6.337695797978061,
	10.550252305830575, 3.055824411627005, 7.0822008116942285, 8.082906481434144, 1.0945652828159709]`)

func parseFloats(t testing.TB, data []byte) []float64 {
	var values []float64
	require.NoError(t, json.Unmarshal(data, &values))
	return values
}

func randomSeries(seed int64, n int, lo, hi float64) []float64 {
	r := rand.New(rand.NewSource(seed))
	values := make([]float64, n)
	for i := range values {
		values[i] = lo + r.Float64()*(hi-lo)
	}
	return values
}

// windows returns every full window of data, collected through a ring buffer.
func windows(data []float64, period int) [][]float64 {
	rb := types.NewRingBuffer[float64](period)

	var ws [][]float64
	for _, v := range data {
		rb.Push(v)
		if rb.IsFull() {
			ws = append(ws, rb.Slice())
		}
	}
	return ws
}

func assertFloatsInDelta(t *testing.T, expected, actual []float64, delta float64) {
	t.Helper()
	if !assert.Len(t, actual, len(expected)) {
		return
	}

	for i := range expected {
		assert.InDelta(t, expected[i], actual[i], delta, "index %d", i)
	}
}

func assertExhausted(t *testing.T, s Float64Stepper) {
	t.Helper()
	assert.Equal(t, 0, s.Remaining())

	for i := 0; i < 3; i++ {
		_, ok := s.Next()
		assert.False(t, ok)
	}
}
