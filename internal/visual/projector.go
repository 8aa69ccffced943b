package visual

import (
	"fmt"
	"math"
	"strings"
)

// Mode selects how the history is laid out on the canvas.
type Mode int

const (
	Linear Mode = iota
	Circular
)

func (m Mode) String() string {
	switch m {
	case Linear:
		return "linear"
	case Circular:
		return "circular"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Next cycles to the other mode.
func (m Mode) Next() Mode {
	if m == Linear {
		return Circular
	}
	return Linear
}

// ParseMode parses "linear" or "circular" (case-insensitive).
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "linear", "":
		return Linear, nil
	case "circular":
		return Circular, nil
	}
	return Linear, fmt.Errorf("unknown mode %q", s)
}

const (
	// degreesPerTurn is how many history indices make up one revolution
	// in circular mode. Indices past it wrap onto the same angles.
	degreesPerTurn = 360
	minRingRadius  = 10
)

// Split divides samples at index at: lines holds the settled head and dots the
// live tail.
func Split(samples []Sample, at int) (dots, lines []Sample) {
	if at < 0 {
		at = 0
	}
	if at > len(samples) {
		at = len(samples)
	}
	return samples[at:], samples[:at]
}

// Projected is a present sample placed on the canvas.
type Projected struct {
	Point
	Volume float64
}

// Projector maps samples to canvas coordinates.
type Projector struct {
	Width, Height float64
}

// volumeY puts silence at the bottom edge and full volume at the top.
func (p Projector) volumeY(v float64) float64 {
	return mapRange(v, 0, 1, p.Height, 0)
}

// LinearDots places the live tail against the right edge of the canvas.
func (p Projector) LinearDots(dots []Sample) []Projected {
	return p.linear(dots, p.Width-float64(len(dots)))
}

// LinearLines places the settled head immediately left of the dots.
func (p Projector) LinearLines(lines []Sample, dotCount int) []Projected {
	return p.linear(lines, p.Width-float64(len(lines))-float64(dotCount))
}

func (p Projector) linear(samples []Sample, left float64) []Projected {
	out := make([]Projected, 0, len(samples))
	for i, s := range samples {
		v, ok := s.Value()
		if !ok {
			continue
		}
		out = append(out, Projected{
			Point:  Point{X: left + float64(i), Y: p.volumeY(v)},
			Volume: v,
		})
	}
	return out
}

// CenterOffset is the vertical translation that centers the waveform on
// its own peak.
func (p Projector) CenterOffset(maxVolume float64) float64 {
	lineHeight := mapRange(maxVolume, 0, 1, 0, p.Height)
	return -(p.Height / 2) + lineHeight/2
}

// Angle returns the angle in degrees for history index i.
func Angle(i int) float64 {
	d := i % degreesPerTurn
	if d < 0 {
		d += degreesPerTurn
	}
	return float64(d)
}

// InnerRing projects every present sample onto the inner ring. A point is
// dropped when it lies past the border circle on both axes.
func (p Projector) InnerRing(samples []Sample, borderDiameter float64) []Projected {
	return p.ring(samples, p.Height/2, borderDiameter, func(pastX, pastY bool) bool {
		return !(pastX && pastY)
	})
}

// OuterRing projects every present sample onto the outer ring. A point is
// dropped when it lies within the border circle on both axes.
func (p Projector) OuterRing(samples []Sample, borderDiameter float64) []Projected {
	return p.ring(samples, p.Height, borderDiameter, func(pastX, pastY bool) bool {
		return pastX || pastY
	})
}

func (p Projector) ring(samples []Sample, maxRadius, borderDiameter float64, keep func(pastX, pastY bool) bool) []Projected {
	borderR := borderDiameter / 2
	out := make([]Projected, 0, len(samples))
	for i, s := range samples {
		v, ok := s.Value()
		if !ok {
			continue
		}
		sin, cos := math.Sincos(Angle(i) * math.Pi / 180)
		r := mapRange(v, 0, 1, minRingRadius, maxRadius)
		pt := Point{X: r * cos, Y: r * sin}
		if !keep(math.Abs(pt.X) > math.Abs(borderR*cos), math.Abs(pt.Y) > math.Abs(borderR*sin)) {
			continue
		}
		out = append(out, Projected{Point: pt, Volume: v})
	}
	return out
}
