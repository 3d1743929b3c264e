package tools

import (
	"image"
	"image/color"

	"github.com/example/paintit/internal/geom"
	"github.com/example/paintit/internal/overlay/overlaytest"
)

var (
	black = color.RGBA{A: 255}
	white = color.RGBA{255, 255, 255, 255}
	red   = color.RGBA{R: 255, A: 255}
	blue  = color.RGBA{B: 255, A: 255}
)

var testOrigin = geom.Window(68, 4)

// bench drives a tool the way the frame driver does.
type bench struct {
	tool   Tool
	canvas *image.RGBA
	in     Input
	rec    overlaytest.Recorder
}

func newBench(tool Tool, w, h int) *bench {
	b := &bench{
		tool:   tool,
		canvas: image.NewRGBA(image.Rect(0, 0, w, h)),
	}
	b.in = Input{
		Colors:    [2]color.RGBA{black, white},
		Transform: geom.Transform{Origin: testOrigin},
		Settings:  DefaultSettings(),
		Canvas:    b.canvas,
	}
	b.in.Textures = &b.rec
	return b
}

// frame runs one frame with the pointer at canvas point (x, y).
func (b *bench) frame(x, y float32, down bool) bool {
	b.in.Pointer = b.in.Transform.ToWindow(geom.Canvas(x, y))
	if down {
		b.tool.UpdatePressed(b.in)
	} else {
		b.tool.UpdateUnpressed(b.in)
	}
	dirty := b.tool.Draw(b.canvas)
	if dirty {
		b.tool.UpdateAfterDraw(b.in)
	}
	b.rec.Reset()
	b.tool.DrawState(b.in, &b.rec)
	return dirty
}

func (b *bench) click(x, y float32) {
	b.frame(x, y, true)
	b.frame(x, y, false)
}

func (b *bench) fill(c color.RGBA) {
	for i := 0; i < len(b.canvas.Pix); i += 4 {
		b.canvas.Pix[i], b.canvas.Pix[i+1], b.canvas.Pix[i+2], b.canvas.Pix[i+3] = c.R, c.G, c.B, c.A
	}
}

func (b *bench) snapshot() []uint8 {
	return append([]uint8(nil), b.canvas.Pix...)
}

func (b *bench) painted(c color.RGBA) image.Rectangle {
	var r image.Rectangle
	bounds := b.canvas.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if b.canvas.RGBAAt(x, y) == c {
				r = r.Union(image.Rect(x, y, x+1, y+1))
			}
		}
	}
	return r
}
