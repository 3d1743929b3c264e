// Package overlaytest provides a recording overlay.Surface for tests.
package overlaytest

import (
	"image"
	"image/color"

	"github.com/example/paintit/internal/geom"
	"github.com/example/paintit/internal/overlay"
)

// Op names a recorded overlay call.
type Op int

const (
	OpPixel Op = iota
	OpLine
	OpRect
	OpTexture
)

// Call is one recorded overlay call. Unused points are zero.
type Call struct {
	Op      Op
	P0, P1  geom.WindowPoint
	Color   color.RGBA
	Texture overlay.Texture
}

// Recorder is a Surface that remembers what was drawn, so tests can inspect
// previews without a display. It is also a TextureLoader.
type Recorder struct {
	Calls []Call
}

// Reset forgets every recorded call.
func (r *Recorder) Reset() { r.Calls = r.Calls[:0] }

// Count returns how many calls of kind op were recorded.
func (r *Recorder) Count(op Op) int {
	n := 0
	for _, c := range r.Calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

func (r *Recorder) Pixel(p geom.WindowPoint, col color.RGBA) {
	r.Calls = append(r.Calls, Call{Op: OpPixel, P0: p, Color: col})
}

func (r *Recorder) Line(p0, p1 geom.WindowPoint, col color.RGBA) {
	r.Calls = append(r.Calls, Call{Op: OpLine, P0: p0, P1: p1, Color: col})
}

func (r *Recorder) RectLines(p0, p1 geom.WindowPoint, col color.RGBA) {
	r.Calls = append(r.Calls, Call{Op: OpRect, P0: p0, P1: p1, Color: col})
}

func (r *Recorder) Texture(t overlay.Texture, at geom.WindowPoint) {
	r.Calls = append(r.Calls, Call{Op: OpTexture, P0: at, Texture: t})
}

// LoadTexture returns a texture that only remembers its bounds.
func (r *Recorder) LoadTexture(img *image.RGBA) overlay.Texture {
	return boundsTexture(img.Bounds())
}

var (
	_ overlay.Surface       = (*Recorder)(nil)
	_ overlay.TextureLoader = (*Recorder)(nil)
)

type boundsTexture image.Rectangle

func (b boundsTexture) Bounds() image.Rectangle { return image.Rectangle(b) }
