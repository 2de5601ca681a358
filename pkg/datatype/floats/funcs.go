package floats

import "math"

func Average(arr []float64) float64 {
	s := 0.0
	for _, a := range arr {
		s += a
	}
	return s / float64(len(arr))
}

// LeftPad returns a new slice of length `size` where values are aligned to
// the right and the leading positions are filled with `pad`.
// When values is already longer than size, a copy of values is returned.
func LeftPad(values []float64, size int, pad float64) Slice {
	n := size - len(values)
	if n < 0 {
		n = 0
	}

	out := make(Slice, n, n+len(values))
	for i := range out {
		out[i] = pad
	}

	return append(out, values...)
}

// LeftPadNaN aligns values to an input series of length size, the way
// TA-Lib style APIs report the warm-up period.
func LeftPadNaN(values []float64, size int) Slice {
	return LeftPad(values, size, math.NaN())
}
