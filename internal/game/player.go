package game

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
)

// ErrUnsupportedFormat is returned for files that are not wav, mp3 or flac.
var ErrUnsupportedFormat = errors.New("unsupported file type")

type playState int

const (
	stateStopped playState = iota
	statePlaying
	statePaused
)

func (s playState) String() string {
	switch s {
	case statePlaying:
		return "playing"
	case statePaused:
		return "paused"
	}
	return "stopped"
}

// player loops one track through the speaker and exposes its loudness.
// It implements visual.AudioSource.
type player struct {
	ringSize    int
	levelWindow int
	smoothing   float64

	mu          sync.Mutex
	currentFile *os.File
	streamer    beep.StreamSeekCloser
	format      beep.Format
	ctrl        *beep.Ctrl
	tap         *visualTap
	state       playState
	initDone    bool
	level       float64

	log *slog.Logger
}

func newPlayer(ringSize, levelWindow int, smoothing float64, log *slog.Logger) *player {
	return &player{
		ringSize:    ringSize,
		levelWindow: levelWindow,
		smoothing:   smoothing,
		log:         log,
	}
}

func decode(f *os.File) (beep.StreamSeekCloser, beep.Format, error) {
	switch ext := strings.ToLower(filepath.Ext(f.Name())); ext {
	case ".wav":
		return wav.Decode(f)
	case ".mp3":
		return mp3.Decode(f)
	case ".flac":
		return flac.Decode(f)
	default:
		return nil, beep.Format{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
}

// Load opens path, replaces the current track and starts looping it.
func (p *player) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	streamer, format, err := decode(f)
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}

	// streamer -> loop -> tap -> ctrl
	t := newVisualTap(beep.Loop(-1, streamer), p.ringSize)
	ctrl := &beep.Ctrl{Streamer: t, Paused: false}

	p.mu.Lock()
	defer p.mu.Unlock()

	bufferSize := format.SampleRate.N(time.Second / 20)
	switch {
	case !p.initDone:
		if err := speaker.Init(format.SampleRate, bufferSize); err != nil {
			_ = streamer.Close()
			_ = f.Close()
			return fmt.Errorf("init speaker: %w", err)
		}
		p.initDone = true
	case p.format.SampleRate != format.SampleRate:
		speaker.Clear()
		if err := speaker.Init(format.SampleRate, bufferSize); err != nil {
			_ = streamer.Close()
			_ = f.Close()
			return fmt.Errorf("init speaker: %w", err)
		}
	default:
		speaker.Clear()
	}
	p.closeLocked()

	p.currentFile = f
	p.streamer = streamer
	p.format = format
	p.ctrl = ctrl
	p.tap = t
	p.state = statePlaying
	p.level = 0

	speaker.Play(ctrl)

	p.log.Info("playing", "file", filepath.Base(path), "sample_rate", int(format.SampleRate),
		"duration", format.SampleRate.D(streamer.Len()).Round(time.Second))
	return nil
}

func (p *player) closeLocked() {
	if p.streamer != nil {
		_ = p.streamer.Close()
		p.streamer = nil
	}
	if p.currentFile != nil {
		_ = p.currentFile.Close()
		p.currentFile = nil
	}
	p.ctrl = nil
	p.tap = nil
}

// TogglePlay starts a stopped or paused track, or stops a playing one.
// It reports whether the track was stopped.
func (p *player) TogglePlay() (stopped bool, err error) {
	p.mu.Lock()
	state := p.state
	loaded := p.ctrl != nil
	p.mu.Unlock()

	if !loaded {
		return false, nil
	}
	if state == statePlaying {
		return true, p.Stop()
	}
	p.setPaused(false)
	return false, nil
}

// TogglePause pauses or resumes without rewinding.
func (p *player) TogglePause() {
	p.mu.Lock()
	state := p.state
	p.mu.Unlock()

	switch state {
	case statePlaying:
		p.setPaused(true)
	case statePaused:
		p.setPaused(false)
	}
}

func (p *player) setPaused(paused bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ctrl == nil {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = paused
	speaker.Unlock()
	if paused {
		p.state = statePaused
	} else {
		p.state = statePlaying
	}
}

// Stop halts playback and rewinds to the start of the track.
func (p *player) Stop() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ctrl == nil {
		return nil
	}

	speaker.Lock()
	p.ctrl.Paused = true
	err := p.streamer.Seek(0)
	speaker.Unlock()

	p.tap.reset()
	p.state = stateStopped
	p.level = 0
	if err != nil {
		return fmt.Errorf("rewind: %w", err)
	}
	return nil
}

// Playing reports whether audio is currently audible.
func (p *player) Playing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state == statePlaying
}

func (p *player) State() playState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

func (p *player) Loaded() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ctrl != nil
}

// Level returns the smoothed RMS of the most recently played frames.
func (p *player) Level() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.tap == nil {
		return 0
	}
	rms := p.tap.level(p.levelWindow)
	p.level = p.smoothing*p.level + (1-p.smoothing)*rms
	return p.level
}

// Position is the playback position within the current loop.
func (p *player) Position() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.streamer == nil {
		return 0
	}
	speaker.Lock()
	pos := p.streamer.Position()
	speaker.Unlock()
	return p.format.SampleRate.D(pos)
}

func (p *player) Duration() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.streamer == nil {
		return 0
	}
	return p.format.SampleRate.D(p.streamer.Len())
}

// Close stops the speaker and releases the file.
func (p *player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.initDone {
		speaker.Clear()
	}
	p.closeLocked()
	p.state = stateStopped
}
