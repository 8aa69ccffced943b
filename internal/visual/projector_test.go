package visual

import (
	"math"
	"testing"
)

func TestSplit(t *testing.T) {
	samples := samplesOf(0.1, 0.2, 0.3, 0.4, 0.5)
	for at := -1; at <= 6; at++ {
		dots, lines := Split(samples, at)
		if len(dots)+len(lines) != len(samples) {
			t.Fatalf("at %d: %d + %d != %d", at, len(dots), len(lines), len(samples))
		}
		p := min(max(at, 0), len(samples))
		if len(dots) != len(samples)-p {
			t.Errorf("at %d: len(dots) = %d, want %d", at, len(dots), len(samples)-p)
		}
		if len(dots) > 0 && &dots[len(dots)-1] != &samples[len(samples)-1] {
			t.Errorf("at %d: dots is not the tail of samples", at)
		}
	}
}

func TestLinearPlacement(t *testing.T) {
	p := Projector{Width: 10, Height: 100}
	dots, lines := Split(samplesOf(0.5, -1, 1, 0, 0.25), 2)

	gotDots := p.LinearDots(dots)
	wantDots := []Point{{7, 0}, {8, 100}, {9, 75}}
	if len(gotDots) != len(wantDots) {
		t.Fatalf("len(dots) = %d, want %d", len(gotDots), len(wantDots))
	}
	for i, w := range wantDots {
		if gotDots[i].Point != w {
			t.Errorf("dot %d = %v, want %v", i, gotDots[i].Point, w)
		}
	}

	// the absent sample keeps its slot: only x = 5 is drawn
	gotLines := p.LinearLines(lines, len(dots))
	if len(gotLines) != 1 {
		t.Fatalf("len(lines) = %d, want 1", len(gotLines))
	}
	if want := (Point{5, 50}); gotLines[0].Point != want {
		t.Errorf("line vertex = %v, want %v", gotLines[0].Point, want)
	}
}

func TestCenterOffset(t *testing.T) {
	p := Projector{Width: 800, Height: 400}
	tests := []struct {
		max  float64
		want float64
	}{
		{0, -200},
		{1, 0},
		{0.9, -200 + 360.0/2},
	}
	for _, tt := range tests {
		if got := p.CenterOffset(tt.max); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("CenterOffset(%v) = %v, want %v", tt.max, got, tt.want)
		}
	}
}

func TestAngleWraps(t *testing.T) {
	pairs := [][2]int{{0, 360}, {359, 719}, {1, 721}}
	for _, p := range pairs {
		if Angle(p[0]) != Angle(p[1]) {
			t.Errorf("Angle(%d) = %v, Angle(%d) = %v; want equal", p[0], Angle(p[0]), p[1], Angle(p[1]))
		}
	}
	if got := Angle(90); got != 90 {
		t.Errorf("Angle(90) = %v, want 90", got)
	}
}

func TestRingsSplitAtBorder(t *testing.T) {
	p := Projector{Width: 800, Height: 400}
	// index 45 sits on the diagonal, so both axes agree
	samples := make([]Sample, 46)
	for i := range samples {
		samples[i] = Absent
	}

	quiet := append([]Sample(nil), samples...)
	quiet[45] = Present(0)
	// radius 10 inner, 10 outer; border diameter 200 means radius 100
	if got := len(p.InnerRing(quiet, 200)); got != 1 {
		t.Errorf("quiet inner ring = %d points, want 1", got)
	}
	if got := len(p.OuterRing(quiet, 200)); got != 0 {
		t.Errorf("quiet outer ring = %d points, want 0", got)
	}

	loud := append([]Sample(nil), samples...)
	loud[45] = Present(1)
	// radius 200 inner, 400 outer; both past the 100 border
	if got := len(p.InnerRing(loud, 200)); got != 0 {
		t.Errorf("loud inner ring = %d points, want 0", got)
	}
	out := p.OuterRing(loud, 200)
	if len(out) != 1 {
		t.Fatalf("loud outer ring = %d points, want 1", len(out))
	}
	r := math.Hypot(out[0].X, out[0].Y)
	if math.Abs(r-400) > 1e-9 {
		t.Errorf("outer radius = %v, want 400", r)
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"linear", Linear, false},
		{"Circular", Circular, false},
		{"", Linear, false},
		{"spiral", Linear, true},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseMode(%q) = %v, %v; want %v, err %v", tt.in, got, err, tt.want, tt.wantErr)
		}
	}
	if Linear.Next() != Circular || Circular.Next() != Linear {
		t.Error("Next does not cycle between modes")
	}
}
