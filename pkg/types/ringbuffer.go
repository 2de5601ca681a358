package types

// RingBuffer is a bounded FIFO that keeps the most recent `capacity` samples.
// Pushing into a full buffer drops the oldest sample.
type RingBuffer[T any] struct {
	buf  []T
	head int
	size int
}

func NewRingBuffer[T any](capacity int) *RingBuffer[T] {
	if capacity <= 0 {
		panic("ring buffer capacity must be greater than 0")
	}

	return &RingBuffer[T]{
		buf: make([]T, capacity),
	}
}

// Push appends v, evicting the oldest element when the buffer is full.
func (r *RingBuffer[T]) Push(v T) {
	capacity := len(r.buf)
	if r.size == capacity {
		r.buf[r.head] = v
		r.head = (r.head + 1) % capacity
		return
	}

	r.buf[(r.head+r.size)%capacity] = v
	r.size++
}

// Slice returns a copy of the buffered elements, oldest first.
func (r *RingBuffer[T]) Slice() []T {
	out := make([]T, r.size)
	n := copy(out, r.buf[r.head:min(r.head+r.size, len(r.buf))])
	if n < r.size {
		copy(out[n:], r.buf[:r.size-n])
	}
	return out
}

func (r *RingBuffer[T]) IsFull() bool {
	return r.size == len(r.buf)
}

func (r *RingBuffer[T]) Len() int {
	return r.size
}

func (r *RingBuffer[T]) Cap() int {
	return len(r.buf)
}

// Front returns the oldest element.
func (r *RingBuffer[T]) Front() (v T, ok bool) {
	if r.size == 0 {
		return v, false
	}
	return r.buf[r.head], true
}

// Back returns the most recent element.
func (r *RingBuffer[T]) Back() (v T, ok bool) {
	if r.size == 0 {
		return v, false
	}
	return r.buf[(r.head+r.size-1)%len(r.buf)], true
}
