package game

import (
	"math"
	"testing"

	"github.com/faiface/beep"
)

// constant streams every frame at the same value on both channels.
func constant(v float64) beep.Streamer {
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			samples[i] = [2]float64{v, v}
		}
		return len(samples), true
	})
}

func TestTapLevel(t *testing.T) {
	tap := newVisualTap(constant(0.5), 64)
	if got := tap.level(16); got != 0 {
		t.Errorf("level before streaming = %v, want 0", got)
	}

	buf := make([][2]float64, 10)
	if n, ok := tap.Stream(buf); n != 10 || !ok {
		t.Fatalf("Stream = %d, %v", n, ok)
	}
	if got := tap.level(16); math.Abs(got-0.5) > 1e-12 {
		t.Errorf("level = %v, want 0.5", got)
	}
}

func TestTapLevelUsesMostRecentFrames(t *testing.T) {
	var v float64
	src := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			samples[i] = [2]float64{v, -v}
		}
		return len(samples), true
	})
	tap := newVisualTap(src, 8)

	v = 1
	tap.Stream(make([][2]float64, 8))
	// opposite channels cancel in the mono mix
	if got := tap.level(8); got != 0 {
		t.Errorf("level of cancelling channels = %v, want 0", got)
	}

	src = beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			samples[i] = [2]float64{0.2, 0.2}
		}
		return len(samples), true
	})
	tap.Source = src
	tap.Stream(make([][2]float64, 3)) // overwrites the oldest frames
	if got := tap.level(3); math.Abs(got-0.2) > 1e-12 {
		t.Errorf("level of last 3 = %v, want 0.2", got)
	}
}

func TestTapReset(t *testing.T) {
	tap := newVisualTap(constant(2), 4)
	tap.Stream(make([][2]float64, 4))
	if got := tap.level(4); got != 2 {
		t.Errorf("level = %v, want unclamped 2", got)
	}
	tap.reset()
	if got := tap.level(4); got != 0 {
		t.Errorf("level after reset = %v, want 0", got)
	}
}
