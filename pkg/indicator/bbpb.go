package indicator

import "github.com/c9s/tarq/pkg/datatype/floats"

// Bbpb is the bollinger bands %b, the position of the price inside the band:
// 0 at the lower band, 1 at the upper band. A zero width band yields Inf or NaN.
type Bbpb struct {
	data   []float64
	period int
	index  int

	bands *BBands
}

func NewBbpb(data []float64, period int, stdDev float64, ma *MovingAverage) (*Bbpb, error) {
	bands, err := NewBBands(data, period, stdDev, ma)
	if err != nil {
		return nil, err
	}

	return &Bbpb{
		data:   data,
		period: period,
		bands:  bands,
	}, nil
}

func (inc *Bbpb) Next() (float64, bool) {
	band, ok := inc.bands.Next()
	if !ok {
		return 0, false
	}

	price := inc.data[inc.index+inc.period-1]
	inc.index++
	return (price - band.Lower) / (band.Upper - band.Lower), true
}

func (inc *Bbpb) Remaining() int {
	return inc.bands.Remaining()
}

func (inc *Bbpb) Calculate() (floats.Slice, error) {
	return Drain(inc), nil
}
