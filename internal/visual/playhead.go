package visual

import "math"

// Playhead is the scrub position splitting the history into the settled
// trace (left of it) and the live dotted edge (right of it).
type Playhead struct {
	pos         float64
	capacity    float64
	borderWidth float64
}

// NewPlayhead places the playhead in the middle of the visible range.
func NewPlayhead(capacity int, borderWidth float64) *Playhead {
	return &Playhead{
		pos:         float64(capacity) / 2,
		capacity:    float64(capacity),
		borderWidth: borderWidth,
	}
}

// UpdateFromPointer moves the playhead to the pointer's x position. Pointers
// below controlRegionBelowY are over the UI controls and are ignored.
func (p *Playhead) UpdateFromPointer(x, y, controlRegionBelowY float64) {
	if math.IsNaN(y) || y > controlRegionBelowY {
		return
	}
	switch {
	case math.IsNaN(x), x <= 0:
		p.pos = 0
	case x >= p.capacity:
		p.pos = math.Max(0, p.capacity-p.borderWidth)
	default:
		p.pos = x
	}
}

func (p *Playhead) Position() float64 { return p.pos }

func (p *Playhead) BorderWidth() float64 { return p.borderWidth }

// Index returns the split index for a buffer of length n.
func (p *Playhead) Index(n int) int {
	i := int(p.pos)
	if i < 0 {
		return 0
	}
	if i > n {
		return n
	}
	return i
}

// BorderDiameter maps the playhead onto the diameter of the circular
// border, from 0 at the left edge to canvasHeight at the right edge.
func (p *Playhead) BorderDiameter(canvasHeight float64) float64 {
	return mapRange(p.pos, 0, p.capacity, 0, canvasHeight)
}
