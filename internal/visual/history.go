package visual

// History is a fixed-capacity FIFO of samples, oldest first.
type History struct {
	samples  []Sample
	capacity int
}

// NewHistory returns a history filled with capacity Absent entries.
func NewHistory(capacity int) *History {
	if capacity < 0 {
		capacity = 0
	}
	h := &History{capacity: capacity}
	h.Reset()
	return h
}

// Record appends s while playing and evicts the oldest entries once the
// history grows past its capacity. Nothing is recorded while stopped.
func (h *History) Record(s Sample, playing bool) {
	if !playing {
		return
	}
	h.samples = append(h.samples, s)
	if over := len(h.samples) - h.capacity; over > 0 {
		// shift in place so the backing array does not keep growing
		n := copy(h.samples, h.samples[over:])
		h.samples = h.samples[:n]
	}
}

// Reset clears the history to capacity Absent entries.
func (h *History) Reset() {
	if cap(h.samples) < h.capacity {
		h.samples = make([]Sample, h.capacity)
		return
	}
	h.samples = h.samples[:h.capacity]
	for i := range h.samples {
		h.samples[i] = Absent
	}
}

func (h *History) Len() int { return len(h.samples) }

func (h *History) Cap() int { return h.capacity }

// Samples returns a chronological copy of the history.
func (h *History) Samples() []Sample {
	out := make([]Sample, len(h.samples))
	copy(out, h.samples)
	return out
}

// Tail returns the last n entries, or all of them if fewer are stored.
func (h *History) Tail(n int) []Sample {
	if n <= 0 {
		return nil
	}
	if n > len(h.samples) {
		n = len(h.samples)
	}
	out := make([]Sample, n)
	copy(out, h.samples[len(h.samples)-n:])
	return out
}

// MaxVolume returns the loudest present sample. ok is false when every
// entry is absent, in which case callers should treat the peak as 0.
func (h *History) MaxVolume() (max float64, ok bool) {
	for _, s := range h.samples {
		v, present := s.Value()
		if !present {
			continue
		}
		if !ok || v > max {
			max = v
			ok = true
		}
	}
	return max, ok
}
