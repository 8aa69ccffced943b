// Package game hosts the visualization in an ebiten window: it plays the
// track, feeds its loudness to the visual session and draws the controls.
package game

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/magic-wand/internal/config"
	"github.com/iburimskiy/magic-wand/internal/visual"
)

type button struct {
	x, y, w, h int
	label      func() string
	onClick    func() error

	hovered bool
	pressed bool
}

func (b *button) contains(x, y int) bool {
	return x >= b.x && x <= b.x+b.w && y >= b.y && y <= b.y+b.h
}

// Game implements ebiten.Game.
type Game struct {
	cfg     *config.Config
	session *visual.Session
	player  *player
	frame   displayList
	canvas  *ebiten.Image
	stats   visual.FrameStats

	buttons []*button

	// input edge detection
	prevKey map[ebiten.Key]bool
	drag    dragTracker

	lastErr error
	log     *slog.Logger
}

// New builds the game from cfg. The window is not opened until ebiten runs it.
func New(cfg *config.Config, log *slog.Logger) (*Game, error) {
	mode, err := visual.ParseMode(cfg.Visual.Mode)
	if err != nil {
		return nil, err
	}
	g := &Game{
		cfg: cfg,
		session: visual.NewSession(cfg.Canvas.Width, cfg.Visual.ReactivityWindow, cfg.Visual.LoudThreshold,
			visual.WithCanvasHeight(float64(cfg.Canvas.Height)),
			visual.WithBorderWidth(cfg.Canvas.BorderWidth),
			visual.WithControlRegion(cfg.ControlRegionY()),
			visual.WithMode(mode),
			visual.WithLogger(log),
		),
		player:  newPlayer(cfg.Audio.TapRingSize, cfg.Audio.LevelWindow, cfg.Audio.SmoothingFactor, log),
		prevKey: map[ebiten.Key]bool{},
		log:     log,
	}
	g.layoutButtons()
	return g, nil
}

func (g *Game) layoutButtons() {
	y := g.cfg.ButtonsY()
	x := 20
	add := func(label func() string, onClick func() error) {
		g.buttons = append(g.buttons, &button{
			x: x, y: y, w: config.ButtonWidth, h: config.ButtonHeight,
			label: label, onClick: onClick,
		})
		x += config.ButtonWidth + config.ButtonGap
	}

	add(func() string { return "Open File" }, g.openFileDialog)
	add(func() string {
		if g.player.Playing() {
			return "Stop"
		}
		return "Play"
	}, g.togglePlay)
	add(func() string { return "Mode: " + g.session.Mode().String() }, func() error {
		g.session.SetMode(g.session.Mode().Next())
		return nil
	})
}

// Load opens a track and starts playing it.
func (g *Game) Load(path string) error {
	if err := g.player.Load(path); err != nil {
		return err
	}
	g.session.Stop()
	return nil
}

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	mouseX, mouseY := ebiten.CursorPosition()
	for _, b := range g.buttons {
		b.hovered = b.contains(mouseX, mouseY)
		if b.hovered && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			b.pressed = true
		}
		if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
			if b.pressed && b.hovered {
				g.setErr(b.onClick())
			}
			b.pressed = false
		}
	}

	if g.drag.update(inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft), mouseX, mouseY, g.cfg.ControlRegionY()) {
		g.session.OnPointerDrag(float64(mouseX), float64(mouseY))
	}

	if justPressed(ebiten.KeySpace) {
		g.player.TogglePause()
	}
	if justPressed(ebiten.KeyM) {
		g.session.SetMode(g.session.Mode().Next())
	}
	if justPressed(ebiten.KeyS) {
		g.setErr(g.stop())
	}
	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		g.player.Close()
		return ebiten.Termination
	}

	g.frame.reset()
	g.stats = g.session.Tick(g.player, &g.frame)
	return nil
}

func (g *Game) setErr(err error) {
	if err == nil {
		return
	}
	g.log.Error("action failed", "error", err)
	g.lastErr = err
}

func (g *Game) togglePlay() error {
	stopped, err := g.player.TogglePlay()
	if stopped {
		g.session.Stop()
	}
	return err
}

func (g *Game) stop() error {
	err := g.player.Stop()
	g.session.Stop()
	return err
}

func (g *Game) openFileDialog() error {
	filename, err := zenity.SelectFile(
		zenity.Title("Open Audio File"),
		zenity.FileFilters{{
			Name:     "Audio",
			Patterns: []string{"*.wav", "*.mp3", "*.flac"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}
	g.lastErr = nil
	return g.Load(filename)
}

func (g *Game) Draw(screen *ebiten.Image) {
	w, h := g.cfg.Canvas.Width, g.cfg.Canvas.Height
	if g.canvas == nil {
		g.canvas = ebiten.NewImage(w, h)
	}
	g.canvas.Fill(color.Black)
	g.frame.replay(g.canvas)

	screen.Fill(color.RGBA{R: 12, G: 12, B: 16, A: 255})
	screen.DrawImage(g.canvas, nil)

	g.drawLevelMeter(screen)
	for _, b := range g.buttons {
		g.drawButton(screen, b)
	}
	ebitenutil.DebugPrintAt(screen, g.status(), 12, g.cfg.StatusY()+(config.StatusHeight-16)/2)
}

func (g *Game) status() string {
	if !g.player.Loaded() {
		return "Click Open File to choose a track"
	}
	s := fmt.Sprintf("%s | %s | %s / %s", g.session.Mode(), g.player.State(),
		formatDuration(g.player.Position()), formatDuration(g.player.Duration()))
	if g.stats.Loud {
		s += " | loud"
	}
	if g.lastErr != nil {
		s += " | Error: " + g.lastErr.Error()
	}
	return s
}

// drawLevelMeter shows the most recent level at the right of the control
// strip, shifting from green to red as it gets louder.
func (g *Game) drawLevelMeter(screen *ebiten.Image) {
	const meterW, meterH = 120, 8
	x := float32(g.cfg.Canvas.Width - meterW - 20)
	y := float32(g.cfg.StatusY() + (config.StatusHeight-meterH)/2)

	var level float64
	if tail := g.session.History().Tail(1); len(tail) == 1 {
		level, _ = tail[0].Value()
	}
	r, gr, b := hsvToRgb(120*(1-level), 0.8, 0.9)
	vector.DrawFilledRect(screen, x, y, meterW, meterH, color.RGBA{R: 30, G: 30, B: 40, A: 255}, false)
	vector.DrawFilledRect(screen, x, y, float32(level)*meterW, meterH, color.RGBA{R: r, G: gr, B: b, A: 255}, false)
}

func (g *Game) drawButton(screen *ebiten.Image, b *button) {
	var bgColor color.Color
	switch {
	case b.pressed:
		bgColor = color.RGBA{R: 60, G: 80, B: 120, A: 255}
	case b.hovered:
		bgColor = color.RGBA{R: 80, G: 100, B: 140, A: 255}
	default:
		bgColor = color.RGBA{R: 100, G: 120, B: 160, A: 255}
	}
	vector.DrawFilledRect(screen, float32(b.x), float32(b.y), float32(b.w), float32(b.h), bgColor, false)

	borderColor := color.RGBA{R: 150, G: 170, B: 200, A: 255}
	vector.StrokeRect(screen, float32(b.x), float32(b.y), float32(b.w), float32(b.h), 2, borderColor, false)

	text := b.label()
	textWidth := len(text) * 6 // debug font glyphs are 6px wide
	ebitenutil.DebugPrintAt(screen, text, b.x+(b.w-textWidth)/2, b.y+(b.h-16)/2)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Canvas.Width, g.cfg.WindowHeight()
}
