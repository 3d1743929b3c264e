// Package backend holds what the window backends share: building the frame
// driver and the chrome, and turning raw pointer and key input into frame
// samples and toolbar clicks.
package backend

import (
	"fmt"
	"image"
	"log"
	"time"

	"github.com/example/paintit/internal/frame"
	"github.com/example/paintit/internal/geom"
	"github.com/example/paintit/internal/overlay"
	"github.com/example/paintit/internal/theme"
	"github.com/example/paintit/internal/tools"
	"github.com/example/paintit/internal/ui"
)

// DefaultFPS is used when Options.FPS is not positive.
const DefaultFPS = 60

// Title is the window title.
const Title = "paintit"

// Options configures a window session.
type Options struct {
	Theme *theme.Theme
	FPS   int
	// StartTool is selected before the first frame when HasStart is set.
	StartTool tools.Kind
	HasStart  bool
	// ToolOptions are passed to every tool the driver creates.
	ToolOptions []tools.Option
}

// Session is one open window: the driver, its chrome and the pointer state
// between frames.
type Session struct {
	Driver *frame.Driver
	Chrome *ui.Chrome

	fps     int
	pointer geom.WindowPoint
	down    bool
}

// NewSession creates the driver for cfg with the backend's display and
// texture loader, and the chrome around it.
func NewSession(cfg frame.Config, opts Options, display frame.Display, textures overlay.TextureLoader) (*Session, error) {
	fo := []frame.Option{frame.WithToolOptions(opts.ToolOptions...)}
	if display != nil {
		fo = append(fo, frame.WithDisplay(display))
	}
	if textures != nil {
		fo = append(fo, frame.WithTextures(textures))
	}
	d, err := frame.New(cfg, fo...)
	if err != nil {
		return nil, fmt.Errorf("new frame driver: %w", err)
	}
	if opts.HasStart {
		if err := d.Select(opts.StartTool); err != nil {
			return nil, fmt.Errorf("start tool: %w", err)
		}
	}
	th := opts.Theme
	if th == nil {
		th = theme.Default()
	}
	fps := opts.FPS
	if fps <= 0 {
		fps = DefaultFPS
	}
	s := &Session{Driver: d, fps: fps}
	s.Chrome = ui.NewChrome(th, d, s.selectTool)
	return s, nil
}

func (s *Session) selectTool(k tools.Kind) {
	if err := s.Driver.Select(k); err != nil {
		log.Printf("select %v: %v", k, err)
	}
}

// FPS is the frame rate.
func (s *Session) FPS() int { return s.fps }

// Interval is the time between frames.
func (s *Session) Interval() time.Duration { return time.Second / time.Duration(s.fps) }

// Size returns the window size.
func (s *Session) Size() image.Point { return s.Chrome.Size() }

// Move records the pointer position.
func (s *Session) Move(p geom.WindowPoint) {
	s.pointer = p
	s.Chrome.Toolbar.Hover(p.Pt())
}

// Press handles the primary button going down at p. Presses on the toolbar
// start a click and never reach the tool.
func (s *Session) Press(p geom.WindowPoint) {
	s.Move(p)
	if s.Chrome.Toolbar.Press(p.Pt()) {
		return
	}
	s.down = true
}

// Release handles the primary button going up at p.
func (s *Session) Release(p geom.WindowPoint) {
	s.Move(p)
	s.down = false
	s.Chrome.Toolbar.Release(p.Pt())
}

// Key handles a key press. It reports whether the key was bound.
func (s *Session) Key(r rune) bool {
	switch r {
	case 'x', 'X':
		s.Driver.SwapColors()
		return true
	}
	return false
}

// Sample returns the input state for the next frame.
func (s *Session) Sample() frame.Sample {
	return frame.Sample{Pointer: s.pointer, Down: s.down}
}

// Frame runs one frame with the current input. It reports whether the
// canvas changed.
func (s *Session) Frame() bool {
	return s.Driver.Tick(s.Sample())
}
