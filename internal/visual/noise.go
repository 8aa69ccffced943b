package visual

import "image/color"

const (
	DefaultIntensity = 10
	DefaultShift     = 100
)

// Rand is the random source used for noise. *rand.Rand from math/rand/v2
// satisfies it.
type Rand interface {
	IntN(n int) int
	Float64() float64
}

// Point is a position in surface coordinates.
type Point struct {
	X, Y float64
}

// RenderPoint is a colored point produced for a single frame.
type RenderPoint struct {
	Point
	Color color.RGBA
}

// Scatter returns intensity randomly colored points, each offset from origin
// by up to shiftX and shiftY pixels in a random direction.
func Scatter(rng Rand, origin Point, intensity, shiftX, shiftY int) []RenderPoint {
	if intensity <= 0 {
		return nil
	}
	out := make([]RenderPoint, 0, intensity)
	for range intensity {
		c := randomColor(rng)
		dx := shifted(rng, shiftX)
		dy := shifted(rng, shiftY)
		out = append(out, RenderPoint{
			Point: Point{X: origin.X + float64(dx), Y: origin.Y + float64(dy)},
			Color: c,
		})
	}
	return out
}

// shifted returns a signed offset with magnitude in [0, max).
func shifted(rng Rand, max int) int {
	sign := 1
	if rng.Float64() < 0.5 {
		sign = -1
	}
	return randomInt(rng, max) * sign
}

func randomInt(rng Rand, max int) int {
	if max <= 0 {
		return 0
	}
	return rng.IntN(max)
}

func randomColor(rng Rand) color.RGBA {
	return color.RGBA{
		R: uint8(rng.IntN(255)),
		G: uint8(rng.IntN(255)),
		B: uint8(rng.IntN(255)),
		A: 255,
	}
}
