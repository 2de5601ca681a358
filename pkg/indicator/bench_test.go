package indicator

import (
	"testing"

	"github.com/c9s/tarq/pkg/types"
)

const (
	benchSize   = 1_000_000
	benchPeriod = 50
)

var (
	benchPrices = randomSeries(42, benchSize, 50, 150)
	benchVolume = randomSeries(43, benchSize, 1, 1000)
	benchHigh   = randomSeries(44, benchSize, 150, 160)
	benchLow    = randomSeries(45, benchSize, 40, 50)
)

func benchmarkCalculator(b *testing.B, newCalculator func() (Float64Calculator, error)) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		c, err := newCalculator()
		if err != nil {
			b.Fatal(err)
		}

		if _, err := c.Calculate(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSMA(b *testing.B) {
	benchmarkCalculator(b, func() (Float64Calculator, error) { return NewSMA(benchPrices, benchPeriod) })
}

func BenchmarkEMA(b *testing.B) {
	benchmarkCalculator(b, func() (Float64Calculator, error) { return NewEMA(benchPrices, benchPeriod) })
}

func BenchmarkWMA(b *testing.B) {
	benchmarkCalculator(b, func() (Float64Calculator, error) { return NewWMA(benchPrices, benchPeriod) })
}

func BenchmarkVWMA(b *testing.B) {
	benchmarkCalculator(b, func() (Float64Calculator, error) {
		return NewVWMA(benchPrices, benchVolume, benchPeriod)
	})
}

func BenchmarkDEMA(b *testing.B) {
	benchmarkCalculator(b, func() (Float64Calculator, error) { return NewDEMA(benchPrices, benchPeriod) })
}

func BenchmarkTEMA(b *testing.B) {
	benchmarkCalculator(b, func() (Float64Calculator, error) { return NewTEMA(benchPrices, benchPeriod) })
}

func BenchmarkKAMA(b *testing.B) {
	benchmarkCalculator(b, func() (Float64Calculator, error) {
		return NewKAMA(benchPrices, benchPeriod, DefaultKAMAFast, DefaultKAMASlow)
	})
}

func BenchmarkATR(b *testing.B) {
	benchmarkCalculator(b, func() (Float64Calculator, error) {
		return NewATR(benchHigh, benchLow, benchPrices, benchPeriod)
	})
}

func BenchmarkStdDev(b *testing.B) {
	benchmarkCalculator(b, func() (Float64Calculator, error) { return NewStdDev(benchPrices, benchPeriod, 0) })
}

func BenchmarkBBands(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		ma, err := NewMovingAverage(types.MATypeEMA, benchPrices, nil, benchPeriod)
		if err != nil {
			b.Fatal(err)
		}

		bands, err := NewBBands(benchPrices, benchPeriod, 2.0, ma)
		if err != nil {
			b.Fatal(err)
		}

		if _, _, _, err := bands.Calculate(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkBbpb(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		ma, err := NewMovingAverage(types.MATypeSMA, benchPrices, nil, benchPeriod)
		if err != nil {
			b.Fatal(err)
		}

		bbpb, err := NewBbpb(benchPrices, benchPeriod, 2.0, ma)
		if err != nil {
			b.Fatal(err)
		}

		_ = Drain(bbpb)
	}
}
