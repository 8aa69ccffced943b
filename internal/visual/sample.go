package visual

import "math"

// Sample is one amplitude reading in [0,1], or Absent when nothing was
// captured at that tick.
type Sample struct {
	value   float64
	present bool
}

// Absent marks a tick without audio.
var Absent = Sample{}

// Present returns a sample holding v clamped to [0,1]. NaN becomes Absent.
func Present(v float64) Sample {
	if math.IsNaN(v) {
		return Absent
	}
	return Sample{value: clamp01(v), present: true}
}

// Value returns the volume and whether the sample is present.
func (s Sample) Value() (float64, bool) {
	return s.value, s.present
}

func (s Sample) IsAbsent() bool { return !s.present }

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// mapRange re-maps v from [a1,a2] to [b1,b2] without clamping.
func mapRange(v, a1, a2, b1, b2 float64) float64 {
	if a1 == a2 {
		return b1
	}
	return b1 + (v-a1)*(b2-b1)/(a2-a1)
}
