package visual

// IsRecentlyLoud reports whether any present sample among the last window
// entries exceeds threshold.
func IsRecentlyLoud(samples []Sample, window int, threshold float64) bool {
	if window <= 0 {
		return false
	}
	start := len(samples) - window
	if start < 0 {
		start = 0
	}
	for _, s := range samples[start:] {
		if v, ok := s.Value(); ok && v > threshold {
			return true
		}
	}
	return false
}
