package visual

import "image/color"

// Surface is the drawing target for one frame. Translations accumulate until
// the host starts the next frame.
type Surface interface {
	Stroke(c color.RGBA)
	Point(x, y float64)
	BeginCurve()
	Vertex(x, y float64)
	EndCurve()
	Translate(dx, dy float64)
	Line(x1, y1, x2, y2, width float64)
	Circle(cx, cy, diameter, width float64)
}

// AudioSource supplies the current level and playing state.
type AudioSource interface {
	Level() float64
	Playing() bool
}

var (
	borderColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	dotColor    = color.RGBA{R: 214, G: 214, B: 214, A: 255}
	lineColor   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)
