package indicator

import "github.com/c9s/tarq/pkg/datatype/floats"

// Float64Stepper is a finite, single pass producer of indicator values.
// Once Next returns false the stepper is exhausted; construct a new
// indicator to compute the series again.
type Float64Stepper interface {
	Next() (float64, bool)

	// Remaining returns how many values Next will still produce.
	Remaining() int
}

// Float64Calculator is a stepper that can also drain itself in bulk.
type Float64Calculator interface {
	Float64Stepper
	Calculate() (floats.Slice, error)
}

// Drain collects every remaining value of s.
func Drain(s Float64Stepper) floats.Slice {
	values := make(floats.Slice, 0, s.Remaining())
	for {
		v, ok := s.Next()
		if !ok {
			return values
		}
		values = append(values, v)
	}
}

func remaining(total, index int) int {
	if index >= total {
		return 0
	}
	return total - index
}
