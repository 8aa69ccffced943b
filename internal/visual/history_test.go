package visual

import "testing"

func TestNewHistoryIsAllAbsent(t *testing.T) {
	h := NewHistory(5)
	if h.Len() != 5 {
		t.Fatalf("Len = %d, want 5", h.Len())
	}
	for i, s := range h.Samples() {
		if !s.IsAbsent() {
			t.Errorf("sample %d present, want absent", i)
		}
	}
	if _, ok := h.MaxVolume(); ok {
		t.Error("MaxVolume ok on empty history, want false")
	}
}

func TestRecordEvictsOldestFirst(t *testing.T) {
	h := NewHistory(3)
	for i := 1; i <= 7; i++ {
		h.Record(Present(float64(i)/10), true)
		if h.Len() > h.Cap() {
			t.Fatalf("after %d records Len = %d, exceeds capacity %d", i, h.Len(), h.Cap())
		}
	}
	want := []float64{0.5, 0.6, 0.7}
	got := h.Samples()
	if len(got) != len(want) {
		t.Fatalf("Len = %d, want %d", len(got), len(want))
	}
	for i, w := range want {
		v, ok := got[i].Value()
		if !ok || v != w {
			t.Errorf("sample %d = %v (present %v), want %v", i, v, ok, w)
		}
	}
}

func TestRecordWhileStoppedKeepsHistory(t *testing.T) {
	h := NewHistory(2)
	h.Record(Present(0.4), true)
	h.Record(Present(0.9), false)
	v, ok := h.Tail(1)[0].Value()
	if !ok || v != 0.4 {
		t.Errorf("last sample = %v (present %v), want 0.4", v, ok)
	}
}

func TestReset(t *testing.T) {
	h := NewHistory(4)
	for range 6 {
		h.Record(Present(0.8), true)
	}
	h.Reset()
	if h.Len() != 4 {
		t.Fatalf("Len = %d, want 4", h.Len())
	}
	for i, s := range h.Samples() {
		if !s.IsAbsent() {
			t.Errorf("sample %d present after Reset", i)
		}
	}
}

func TestMaxVolumeIgnoresAbsent(t *testing.T) {
	h := NewHistory(4)
	h.Record(Present(0.2), true)
	h.Record(Absent, true)
	h.Record(Present(0), true)
	max, ok := h.MaxVolume()
	if !ok || max != 0.2 {
		t.Errorf("MaxVolume = %v, %v; want 0.2, true", max, ok)
	}
}

func TestTail(t *testing.T) {
	h := NewHistory(2)
	if got := len(h.Tail(5)); got != 2 {
		t.Errorf("len(Tail(5)) = %d, want 2", got)
	}
	if got := h.Tail(0); got != nil {
		t.Errorf("Tail(0) = %v, want nil", got)
	}
}

func TestPresentClampsAndRejectsNaN(t *testing.T) {
	tests := []struct {
		in      float64
		want    float64
		present bool
	}{
		{-1, 0, true},
		{0, 0, true},
		{0.5, 0.5, true},
		{3, 1, true},
	}
	for _, tt := range tests {
		v, ok := Present(tt.in).Value()
		if v != tt.want || ok != tt.present {
			t.Errorf("Present(%v) = %v, %v; want %v, %v", tt.in, v, ok, tt.want, tt.present)
		}
	}
	if !Present(nan()).IsAbsent() {
		t.Error("Present(NaN) is present, want absent")
	}
}
