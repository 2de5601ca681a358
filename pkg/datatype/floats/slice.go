package floats

// Slice is the output container of the indicators. Values are ordered
// chronologically, the most recent value is the last element.
type Slice []float64

func (s *Slice) Push(v float64) {
	*s = append(*s, v)
}
