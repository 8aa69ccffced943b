package visual

import (
	"log/slog"
	"math/rand/v2"
)

// Noise budgets per segment.
const (
	loudDotIntensity  = 10
	quietDotIntensity = 3

	linearLineIntensity   = 3
	circularLineIntensity = 1

	loudLineShift  = 150
	quietLineShift = 50

	lineNoiseChance = 0.5
)

// Session owns the history and playhead of one visualization and renders a
// frame per Tick.
type Session struct {
	history  *History
	playhead *Playhead
	proj     Projector
	mode     Mode

	reactivity    int
	loudThreshold float64
	controlY      float64
	controlSet    bool

	rng Rand
	log *slog.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithCanvasHeight sets the canvas height. The default is half the capacity.
func WithCanvasHeight(h float64) Option {
	return func(s *Session) { s.proj.Height = h }
}

// WithBorderWidth sets the stroke width of the playhead border.
func WithBorderWidth(w float64) Option {
	return func(s *Session) { s.playhead.borderWidth = w }
}

// WithControlRegion sets the y coordinate below which pointer drags are
// ignored. The default is 1.2 times the canvas height.
func WithControlRegion(y float64) Option {
	return func(s *Session) {
		s.controlY = y
		s.controlSet = true
	}
}

func WithMode(m Mode) Option {
	return func(s *Session) { s.mode = m }
}

// WithRand replaces the random source used for noise.
func WithRand(r Rand) Option {
	return func(s *Session) { s.rng = r }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Session) { s.log = l }
}

// NewSession creates a session whose history holds capacity samples, one per
// pixel of canvas width.
func NewSession(capacity, reactivityWindow int, loudThreshold float64, opts ...Option) *Session {
	s := &Session{
		history:       NewHistory(capacity),
		playhead:      NewPlayhead(capacity, 3),
		proj:          Projector{Width: float64(capacity), Height: float64(capacity) / 2},
		reactivity:    reactivityWindow,
		loudThreshold: loudThreshold,
		rng:           rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		log:           slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if !s.controlSet {
		s.controlY = s.proj.Height * 1.2
	}
	return s
}

// FrameStats describes what a Tick drew.
type FrameStats struct {
	Playing   bool
	Loud      bool
	MaxVolume float64
	Offset    float64 // vertical centering in linear mode

	// Linear mode counts the slots of each segment, absent ones included.
	// Circular mode counts the ring points left after culling against the
	// border circle.
	Dots  int
	Lines int

	Points int // noise points emitted
}

// Tick records the current level and draws one frame onto dst. While the
// source is not playing its level is not read and nothing is drawn.
func (s *Session) Tick(src AudioSource, dst Surface) FrameStats {
	playing := src.Playing()
	if playing {
		s.history.Record(Present(src.Level()), true)
	}

	samples := s.history.Samples()
	maxVolume, _ := s.history.MaxVolume()
	stats := FrameStats{
		Playing:   playing,
		Loud:      IsRecentlyLoud(samples, s.reactivity, s.loudThreshold),
		MaxVolume: maxVolume,
	}
	if !playing {
		return stats
	}

	switch s.mode {
	case Circular:
		s.drawCircular(samples, dst, &stats)
	default:
		s.drawLinear(samples, dst, &stats)
	}
	return stats
}

func (s *Session) drawLinear(samples []Sample, dst Surface, stats *FrameStats) {
	x := s.playhead.Position()
	dst.Stroke(borderColor)
	dst.Line(x, 0, x, s.proj.Height, s.playhead.BorderWidth())

	stats.Offset = s.proj.CenterOffset(stats.MaxVolume)
	dst.Translate(0, stats.Offset)

	dots, lines := Split(samples, s.playhead.Index(len(samples)))
	stats.Dots, stats.Lines = len(dots), len(lines)

	s.drawDots(s.proj.LinearDots(dots), dst, stats)
	s.drawLines(s.proj.LinearLines(lines, len(dots)), linearLineIntensity, dst, stats)
}

func (s *Session) drawCircular(samples []Sample, dst Surface, stats *FrameStats) {
	d := s.playhead.BorderDiameter(s.proj.Height)
	cx, cy := s.proj.Width/2, s.proj.Height/2
	dst.Stroke(borderColor)
	dst.Circle(cx, cy, d, s.playhead.BorderWidth())

	dst.Translate(cx, cy)

	inner := s.proj.InnerRing(samples, d)
	outer := s.proj.OuterRing(samples, d)
	stats.Dots, stats.Lines = len(inner), len(outer)

	s.drawDots(inner, dst, stats)
	s.drawLines(outer, circularLineIntensity, dst, stats)
}

// drawDots plots the live segment as a point cloud wrapped in noise.
func (s *Session) drawDots(pts []Projected, dst Surface, stats *FrameStats) {
	intensity := quietDotIntensity
	if stats.Loud {
		intensity = loudDotIntensity
	}
	for _, p := range pts {
		dst.Stroke(dotColor)
		dst.Point(p.X, p.Y)
		for _, n := range Scatter(s.rng, p.Point, intensity, DefaultShift, DefaultShift) {
			dst.Stroke(n.Color)
			dst.Point(n.X, n.Y)
			stats.Points++
		}
	}
}

// drawLines threads the settled segment through a curve. About half of its
// vertices pull the curve out through a few noise vertices.
func (s *Session) drawLines(pts []Projected, intensity int, dst Surface, stats *FrameStats) {
	bound := quietLineShift
	if stats.Loud {
		bound = loudLineShift
	}
	dst.BeginCurve()
	for _, p := range pts {
		dst.Stroke(lineColor)
		dst.Vertex(p.X, p.Y)
		if s.rng.Float64() >= lineNoiseChance {
			continue
		}
		shiftX, shiftY := randomInt(s.rng, bound), randomInt(s.rng, bound)
		for _, n := range Scatter(s.rng, p.Point, intensity, shiftX, shiftY) {
			dst.Stroke(n.Color)
			dst.Vertex(n.X, n.Y)
			stats.Points++
		}
	}
	dst.EndCurve()
}

// OnPointerDrag moves the playhead. Drags over the control region are ignored.
func (s *Session) OnPointerDrag(x, y float64) {
	s.playhead.UpdateFromPointer(x, y, s.controlY)
}

// Stop clears the history. The playhead keeps its position.
func (s *Session) Stop() {
	s.history.Reset()
	s.log.Debug("history reset", "capacity", s.history.Cap())
}

func (s *Session) SetMode(m Mode) {
	if m == s.mode {
		return
	}
	s.log.Debug("mode changed", "from", s.mode, "to", m)
	s.mode = m
}

func (s *Session) Mode() Mode { return s.mode }

func (s *Session) Playhead() *Playhead { return s.playhead }

func (s *Session) History() *History { return s.history }
