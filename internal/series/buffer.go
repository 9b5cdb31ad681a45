package series

// HistoryBuffer is a fixed-capacity FIFO of price samples backed by a
// circular array. Appending at full capacity evicts the oldest sample in
// O(1); the backing storage is allocated once at construction.
type HistoryBuffer struct {
	data []float64
	head int // index of the oldest sample
	size int
}

// New creates an empty buffer. Capacity must be positive; New panics
// otherwise (caller contract violation).
func New(capacity int) *HistoryBuffer {
	if capacity <= 0 {
		panic("series: capacity must be positive")
	}
	return &HistoryBuffer{data: make([]float64, capacity)}
}

// Cap returns the fixed capacity.
func (b *HistoryBuffer) Cap() int { return len(b.data) }

// Len returns the number of stored samples.
func (b *HistoryBuffer) Len() int { return b.size }

// Append inserts a sample, evicting the oldest one when full.
func (b *HistoryBuffer) Append(value float64) {
	if b.size == len(b.data) {
		b.data[b.head] = value
		b.head = (b.head + 1) % len(b.data)
		return
	}
	b.data[(b.head+b.size)%len(b.data)] = value
	b.size++
}

// Extend appends each value in order.
func (b *HistoryBuffer) Extend(values []float64) {
	for _, v := range values {
		b.Append(v)
	}
}

// Values returns a copy of the stored samples in insertion order.
func (b *HistoryBuffer) Values() []float64 {
	out := make([]float64, b.size)
	for i := 0; i < b.size; i++ {
		out[i] = b.data[(b.head+i)%len(b.data)]
	}
	return out
}

// MinMax returns the smallest and largest stored samples. An empty buffer
// reports (0, 1) so that degenerate renders stay well-defined.
func (b *HistoryBuffer) MinMax() (min, max float64) {
	if b.size == 0 {
		return 0, 1
	}
	min = b.data[b.head]
	max = min
	for i := 1; i < b.size; i++ {
		v := b.data[(b.head+i)%len(b.data)]
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}
