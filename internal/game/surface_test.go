package game

import (
	"image/color"
	"math"
	"testing"
	"time"

	"github.com/iburimskiy/magic-wand/internal/visual"
)

func TestCatmullRomEndpoints(t *testing.T) {
	p0, p1, p2, p3 := visual.Point{X: 0, Y: 0}, visual.Point{X: 1, Y: 2}, visual.Point{X: 3, Y: 1}, visual.Point{X: 4, Y: 4}
	if got := catmullRom(p0, p1, p2, p3, 0); got != p1 {
		t.Errorf("t=0: %v, want %v", got, p1)
	}
	got := catmullRom(p0, p1, p2, p3, 1)
	if math.Abs(got.X-p2.X) > 1e-12 || math.Abs(got.Y-p2.Y) > 1e-12 {
		t.Errorf("t=1: %v, want %v", got, p2)
	}
}

func TestDisplayListCurve(t *testing.T) {
	var d displayList
	d.reset()
	red := color.RGBA{R: 255, A: 255}

	d.Translate(10, 0)
	d.BeginCurve()
	for i := range 5 {
		if i == 2 {
			d.Stroke(red)
		}
		d.Vertex(float64(i), 0)
	}
	d.EndCurve()

	// 5 vertices give 2 drawn spans
	if got, want := len(d.ops), 2*curveSteps; got != want {
		t.Fatalf("ops = %d, want %d", got, want)
	}
	if d.ops[0].x1 != 11 {
		t.Errorf("first span starts at x=%v, want 11", d.ops[0].x1)
	}
	if d.ops[0].clr != red {
		t.Errorf("span color = %v, want the color of its end vertex", d.ops[0].clr)
	}
}

func TestDisplayListShortCurveDrawsNothing(t *testing.T) {
	var d displayList
	d.reset()
	d.BeginCurve()
	d.Vertex(0, 0)
	d.Vertex(1, 1)
	d.Vertex(2, 2)
	d.EndCurve()
	if len(d.ops) != 0 {
		t.Errorf("ops = %d, want 0", len(d.ops))
	}
}

func TestDisplayListReset(t *testing.T) {
	var d displayList
	d.Translate(5, 5)
	d.Point(1, 1)
	d.Circle(0, 0, 10, 3)
	d.reset()
	d.Point(1, 1)
	if len(d.ops) != 1 || d.ops[0].x1 != 1 || d.ops[0].y1 != 1 {
		t.Errorf("after reset ops = %+v", d.ops)
	}
}

func TestSessionDrawsIntoDisplayList(t *testing.T) {
	s := visual.NewSession(100, 3, 0.3)
	var d displayList
	d.reset()
	src := &staticSource{level: 0.5, playing: true}
	s.Tick(src, &d)
	// border line, one dot and its noise
	if len(d.ops) < 2 {
		t.Errorf("ops = %d, want at least 2", len(d.ops))
	}
	if d.ops[0].kind != opLine || d.ops[0].width != 3 {
		t.Errorf("first op = %+v, want the 3px border line", d.ops[0])
	}
}

type staticSource struct {
	level   float64
	playing bool
}

func (s *staticSource) Level() float64 { return s.level }
func (s *staticSource) Playing() bool  { return s.playing }

func TestFormatDuration(t *testing.T) {
	if got := formatDuration(83 * time.Second); got != "01:23" {
		t.Errorf("formatDuration = %q, want 01:23", got)
	}
}

func TestHsvToRgb(t *testing.T) {
	tests := []struct {
		h       float64
		r, g, b uint8
	}{
		{0, 255, 0, 0},
		{120, 0, 255, 0},
		{240, 0, 0, 255},
		{-120, 0, 0, 255},
	}
	for _, tt := range tests {
		r, g, b := hsvToRgb(tt.h, 1, 1)
		if r != tt.r || g != tt.g || b != tt.b {
			t.Errorf("hsvToRgb(%v) = %d,%d,%d; want %d,%d,%d", tt.h, r, g, b, tt.r, tt.g, tt.b)
		}
	}
}
