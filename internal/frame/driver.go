// Package frame runs the active tool once per rendered frame and decides when
// the canvas has to be uploaded to the display again.
package frame

import (
	"fmt"
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/clone"

	"github.com/example/paintit/internal/geom"
	"github.com/example/paintit/internal/overlay"
	"github.com/example/paintit/internal/raster"
	"github.com/example/paintit/internal/tools"
)

// Default canvas geometry: two 32 px toolbar columns plus a 4 px margin.
const (
	DefaultWidth   = 743
	DefaultHeight  = 406
	DefaultOriginX = 68
	DefaultOriginY = 4
)

// Display receives the canvas whenever it changed.
type Display interface {
	UploadCanvas(canvas *image.RGBA)
}

// Sample is the input state for one frame.
type Sample struct {
	Pointer geom.WindowPoint
	// Down reports whether the primary button is held.
	Down bool
}

// Config describes a new session.
type Config struct {
	Width, Height int
	Origin        geom.WindowPoint
	Fill          color.RGBA
	Colors        [2]color.RGBA
	Settings      tools.Settings
}

// DefaultConfig returns a transparent 743x406 canvas, black on white.
func DefaultConfig() Config {
	return Config{
		Width:    DefaultWidth,
		Height:   DefaultHeight,
		Origin:   geom.Window(DefaultOriginX, DefaultOriginY),
		Colors:   [2]color.RGBA{{A: 255}, {255, 255, 255, 255}},
		Settings: tools.DefaultSettings(),
	}
}

// Option configures a Driver.
type Option func(*Driver)

// WithDisplay sets where the canvas is uploaded on dirty frames.
func WithDisplay(d Display) Option { return func(dr *Driver) { dr.display = d } }

// WithTextures sets the loader for preview textures.
func WithTextures(l overlay.TextureLoader) Option { return func(dr *Driver) { dr.textures = l } }

// WithToolOptions passes options to every tool the driver creates.
func WithToolOptions(opts ...tools.Option) Option {
	return func(dr *Driver) { dr.toolOpts = append(dr.toolOpts, opts...) }
}

// Driver owns the canvas, the colours and the active tool.
type Driver struct {
	canvas    *image.RGBA
	transform geom.Transform
	colors    [2]color.RGBA
	settings  tools.Settings
	active    *tools.Active

	display  Display
	textures overlay.TextureLoader
	toolOpts []tools.Option

	pointer  geom.WindowPoint
	uploaded bool
	frames   uint64
	uploads  uint64
}

// New creates a driver with a freshly filled canvas and no active tool.
func New(cfg Config, opts ...Option) (*Driver, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("invalid canvas size %dx%d", cfg.Width, cfg.Height)
	}
	d := &Driver{
		canvas:    image.NewRGBA(image.Rect(0, 0, cfg.Width, cfg.Height)),
		transform: geom.Transform{Origin: cfg.Origin},
		colors:    cfg.Colors,
		settings:  cfg.Settings,
	}
	raster.FillRect(d.canvas, d.canvas.Bounds(), cfg.Fill)
	for _, o := range opts {
		o(d)
	}
	return d, nil
}

// Select makes k the active tool with fresh state, discarding whatever the
// previous tool was in the middle of.
func (d *Driver) Select(k tools.Kind) error {
	a, err := tools.Activate(k, d.toolOpts...)
	if err != nil {
		return err
	}
	d.active = a
	return nil
}

// SelectIndex selects the tool behind toolbar button i.
func (d *Driver) SelectIndex(i int) error {
	k, err := tools.KindFromIndex(i)
	if err != nil {
		return err
	}
	return d.Select(k)
}

// Deselect leaves no tool active.
func (d *Driver) Deselect() { d.active = nil }

// Active returns the active tool kind.
func (d *Driver) Active() (tools.Kind, bool) {
	if d.active == nil {
		return 0, false
	}
	return d.active.Kind, true
}

// Tick runs one frame: update, draw, post-draw reset, colour feedback and,
// when the canvas changed, upload. It reports whether the canvas changed.
func (d *Driver) Tick(s Sample) bool {
	d.frames++
	d.pointer = s.Pointer

	dirty := false
	if a := d.active; a != nil {
		in := d.input()
		if s.Down && d.PointerInCanvas() {
			a.Tool.UpdatePressed(in)
		} else {
			a.Tool.UpdateUnpressed(in)
		}
		dirty = a.Tool.Draw(d.canvas)
		if dirty {
			a.Tool.UpdateAfterDraw(in)
			tools.Logger().Debug("canvas changed", "tool", a.Kind, "frame", d.frames)
		}
		if c, ok := a.Color(); ok {
			d.colors[tools.Foreground] = c
		}
	}

	if (dirty || !d.uploaded) && d.display != nil {
		d.display.UploadCanvas(d.canvas)
		d.uploaded = true
		d.uploads++
	}
	return dirty
}

// DrawOverlay lets the active tool paint its preview onto s.
func (d *Driver) DrawOverlay(s overlay.Surface) {
	if d.active == nil {
		return
	}
	d.active.Tool.DrawState(d.input(), s)
}

func (d *Driver) input() tools.Input {
	return tools.Input{
		Pointer:   d.pointer,
		Colors:    d.colors,
		Transform: d.transform,
		Settings:  d.settings,
		Canvas:    d.canvas,
		Textures:  d.textures,
	}
}

// CanvasRect is the canvas area in window space.
func (d *Driver) CanvasRect() geom.Rect {
	b := d.canvas.Bounds()
	return geom.Rect{X: d.transform.Origin.X, Y: d.transform.Origin.Y, W: float32(b.Dx()), H: float32(b.Dy())}
}

// PointerInCanvas reports whether the last sampled pointer is over the
// canvas.
func (d *Driver) PointerInCanvas() bool {
	return d.CanvasRect().Contains(d.pointer.Vec2)
}

// Pointer returns the last sampled pointer in window and canvas space.
func (d *Driver) Pointer() (geom.WindowPoint, geom.CanvasPoint) {
	return d.pointer, d.transform.ToCanvas(d.pointer)
}

// Canvas returns the live canvas. Callers must not write to it.
func (d *Driver) Canvas() *image.RGBA { return d.canvas }

// Snapshot returns a copy of the canvas.
func (d *Driver) Snapshot() *image.RGBA { return clone.AsRGBA(d.canvas) }

// Transform returns the window/canvas transform.
func (d *Driver) Transform() geom.Transform { return d.transform }

// Colors returns the foreground and background colours.
func (d *Driver) Colors() [2]color.RGBA { return d.colors }

// SetColor replaces the colour at tools.Foreground or tools.Background.
func (d *Driver) SetColor(i int, c color.RGBA) { d.colors[i] = c }

// SwapColors exchanges foreground and background.
func (d *Driver) SwapColors() {
	d.colors[0], d.colors[1] = d.colors[1], d.colors[0]
}

// Settings returns the tool settings.
func (d *Driver) Settings() tools.Settings { return d.settings }

// SetSettings replaces the tool settings. Tools read them on the next press.
func (d *Driver) SetSettings(s tools.Settings) { d.settings = s }

// Stats returns how many frames ran and how many caused an upload.
func (d *Driver) Stats() (frames, uploads uint64) { return d.frames, d.uploads }
