package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/magic-wand/internal/visual"
)

// curveSteps is how many line pieces approximate one curve span.
const curveSteps = 8

type opKind int

const (
	opPoint opKind = iota
	opLine
	opCircle
)

type drawOp struct {
	kind           opKind
	x1, y1, x2, y2 float32
	width          float32
	clr            color.RGBA
}

type curveVertex struct {
	visual.Point
	clr color.RGBA
}

// displayList is a visual.Surface that records one frame of drawing in
// Update so Draw can replay it however often ebiten asks.
type displayList struct {
	ops    []drawOp
	stroke color.RGBA
	dx, dy float64

	curve   []curveVertex
	inCurve bool
}

var _ visual.Surface = (*displayList)(nil)

// reset starts a new frame with no translation.
func (d *displayList) reset() {
	d.ops = d.ops[:0]
	d.stroke = color.RGBA{A: 255}
	d.dx, d.dy = 0, 0
	d.curve = d.curve[:0]
	d.inCurve = false
}

func (d *displayList) Stroke(c color.RGBA) { d.stroke = c }

func (d *displayList) Point(x, y float64) {
	x, y = x+d.dx, y+d.dy
	d.ops = append(d.ops, drawOp{kind: opPoint, x1: float32(x), y1: float32(y), clr: d.stroke})
}

func (d *displayList) BeginCurve() {
	d.curve = d.curve[:0]
	d.inCurve = true
}

// Vertex outside a curve is drawn as a point.
func (d *displayList) Vertex(x, y float64) {
	if !d.inCurve {
		d.Point(x, y)
		return
	}
	d.curve = append(d.curve, curveVertex{
		Point: visual.Point{X: x + d.dx, Y: y + d.dy},
		clr:   d.stroke,
	})
}

// EndCurve flattens the Catmull-Rom spline through the collected vertices.
// The first and last vertex only steer the curve, and every span takes the
// color of the vertex it ends on.
func (d *displayList) EndCurve() {
	d.inCurve = false
	for i := 1; i+2 < len(d.curve); i++ {
		p0, p1, p2, p3 := d.curve[i-1].Point, d.curve[i].Point, d.curve[i+1].Point, d.curve[i+2].Point
		prev := p1
		for s := 1; s <= curveSteps; s++ {
			next := catmullRom(p0, p1, p2, p3, float64(s)/curveSteps)
			d.ops = append(d.ops, drawOp{
				kind:  opLine,
				x1:    float32(prev.X),
				y1:    float32(prev.Y),
				x2:    float32(next.X),
				y2:    float32(next.Y),
				width: 1,
				clr:   d.curve[i+1].clr,
			})
			prev = next
		}
	}
	d.curve = d.curve[:0]
}

func (d *displayList) Translate(dx, dy float64) {
	d.dx += dx
	d.dy += dy
}

func (d *displayList) Line(x1, y1, x2, y2, width float64) {
	d.ops = append(d.ops, drawOp{
		kind:  opLine,
		x1:    float32(x1 + d.dx),
		y1:    float32(y1 + d.dy),
		x2:    float32(x2 + d.dx),
		y2:    float32(y2 + d.dy),
		width: float32(width),
		clr:   d.stroke,
	})
}

func (d *displayList) Circle(cx, cy, diameter, width float64) {
	d.ops = append(d.ops, drawOp{
		kind:  opCircle,
		x1:    float32(cx + d.dx),
		y1:    float32(cy + d.dy),
		x2:    float32(diameter / 2),
		width: float32(width),
		clr:   d.stroke,
	})
}

func (d *displayList) replay(dst *ebiten.Image) {
	for _, op := range d.ops {
		switch op.kind {
		case opPoint:
			vector.DrawFilledRect(dst, op.x1, op.y1, 1, 1, op.clr, false)
		case opLine:
			vector.StrokeLine(dst, op.x1, op.y1, op.x2, op.y2, op.width, op.clr, true)
		case opCircle:
			if op.x2 > 0 {
				vector.StrokeCircle(dst, op.x1, op.y1, op.x2, op.width, op.clr, true)
			}
		}
	}
}

// catmullRom evaluates the uniform Catmull-Rom span from p1 to p2 at t.
func catmullRom(p0, p1, p2, p3 visual.Point, t float64) visual.Point {
	t2 := t * t
	t3 := t2 * t
	f := func(a, b, c, d float64) float64 {
		return 0.5 * (2*b + (-a+c)*t + (2*a-5*b+4*c-d)*t2 + (-a+3*b-3*c+d)*t3)
	}
	return visual.Point{
		X: f(p0.X, p1.X, p2.X, p3.X),
		Y: f(p0.Y, p1.Y, p2.Y, p3.Y),
	}
}
