package series

// Resample resizes values to exactly targetLen samples using piecewise
// linear interpolation. The first and last output samples equal the first
// and last input samples; down- and upsampling both go through the same
// mapping. An empty input yields an empty output; targetLen of 1 yields the
// most recent sample.
func Resample(values []float64, targetLen int) []float64 {
	n := len(values)
	if n == 0 {
		return nil
	}
	if n == targetLen {
		out := make([]float64, n)
		copy(out, values)
		return out
	}
	if targetLen == 1 {
		return []float64{values[n-1]}
	}
	out := make([]float64, targetLen)
	for i := 0; i < targetLen; i++ {
		pos := float64(i) * float64(n-1) / float64(targetLen-1)
		low := int(pos)
		high := low + 1
		if high > n-1 {
			high = n - 1
		}
		frac := pos - float64(low)
		out[i] = values[low]*(1-frac) + values[high]*frac
	}
	return out
}
