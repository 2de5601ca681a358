package indicator

import (
	"github.com/pkg/errors"
)

var (
	ErrZeroPeriod       = errors.New("period must be greater than 0")
	ErrInsufficientData = errors.New("insufficient data")
	ErrLengthMismatch   = errors.New("input series length mismatch")
)

// validateWindow checks the period and that every series has at least minLen
// elements and the same length as the first one.
func validateWindow(name string, period, minLen int, series ...[]float64) error {
	if period <= 0 {
		return errors.Wrapf(ErrZeroPeriod, "%s: period %d", name, period)
	}

	if len(series) == 0 {
		return errors.Wrapf(ErrInsufficientData, "%s: no input series", name)
	}

	n := len(series[0])
	for i, s := range series[1:] {
		if len(s) != n {
			return errors.Wrapf(ErrLengthMismatch, "%s: series #%d has %d values, want %d", name, i+1, len(s), n)
		}
	}

	// minLen is derived from period by the callers and wraps around for
	// huge periods.
	if minLen < period {
		minLen = period
	}

	if n < minLen {
		return errors.Wrapf(ErrInsufficientData, "%s: got %d values, need at least %d", name, n, minLen)
	}

	return nil
}
