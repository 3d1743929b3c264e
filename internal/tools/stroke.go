package tools

import (
	"fmt"
	"image"
	"image/color"

	"github.com/example/paintit/internal/geom"
	"github.com/example/paintit/internal/overlay"
	"github.com/example/paintit/internal/raster"
)

// sample is an optional canvas point.
type sample struct {
	p  geom.CanvasPoint
	ok bool
}

func sampled(p geom.CanvasPoint) sample { return sample{p: p, ok: true} }

func (s sample) pt() image.Point { return s.p.Pt() }

// stroke keeps the last two pointer samples of a freehand gesture.
type stroke struct {
	prev, cur sample
}

func (s *stroke) advance(p geom.CanvasPoint) {
	s.prev = s.cur
	s.cur = sampled(p)
}

func (s *stroke) reset() { *s = stroke{} }

// draw stamps the current sample, or every point between the previous and
// current samples. A previous sample without a current one means a release
// was not handled and panics.
func (s *stroke) draw(canvas *image.RGBA, tool string, stamp func() raster.Stamp) bool {
	switch {
	case !s.prev.ok && !s.cur.ok:
		return false
	case !s.cur.ok:
		panic(fmt.Sprintf("%s: previous sample %v without a current sample", tool, s.prev.p))
	case !s.prev.ok:
		stamp()(canvas, s.cur.pt())
	default:
		raster.StrokeLine(canvas, s.prev.pt(), s.cur.pt(), stamp())
	}
	return true
}

// PencilState draws one pixel wide freehand lines.
type PencilState struct {
	stroke
	color color.RGBA
}

func (t *PencilState) UpdatePressed(in Input) {
	t.advance(in.CanvasPointer())
	t.color = in.foreground()
}

func (t *PencilState) UpdateUnpressed(in Input) {
	t.reset()
	t.color = in.foreground()
}

func (t *PencilState) Draw(canvas *image.RGBA) bool {
	return t.draw(canvas, "pencil", func() raster.Stamp { return raster.PixelStamp(t.color) })
}

func (t *PencilState) UpdateAfterDraw(Input)            {}
func (t *PencilState) DrawState(Input, overlay.Surface) {}

// BrushState draws freehand strokes with a circular or square stamp.
type BrushState struct {
	stroke
	color color.RGBA
	size  BrushSize
	shape BrushShape
}

func (t *BrushState) UpdatePressed(in Input) {
	t.advance(in.CanvasPointer())
	t.size = in.Settings.BrushSize
	t.shape = in.Settings.BrushShape
	t.color = in.foreground()
}

func (t *BrushState) UpdateUnpressed(Input) { t.reset() }

func (t *BrushState) Draw(canvas *image.RGBA) bool {
	return t.draw(canvas, "brush", t.stamp)
}

func (t *BrushState) stamp() raster.Stamp {
	w := t.size.Width()
	switch t.shape {
	case BrushCircle:
		return raster.CircleStamp(w/2, t.color)
	case BrushSquare:
		return raster.SquareStamp(w, t.color)
	}
	panic(fmt.Sprintf("brush: %v stamp not implemented", t.shape))
}

func (t *BrushState) UpdateAfterDraw(Input)            {}
func (t *BrushState) DrawState(Input, overlay.Surface) {}

// EraserState clears a square around the pointer to transparent.
type EraserState struct {
	stroke
	size EraserSize
}

func (t *EraserState) UpdatePressed(in Input) {
	t.advance(in.CanvasPointer())
	t.size = in.Settings.EraserSize
}

func (t *EraserState) UpdateUnpressed(Input) { t.reset() }

func (t *EraserState) Draw(canvas *image.RGBA) bool {
	return t.draw(canvas, "eraser", func() raster.Stamp {
		return raster.SquareStamp(t.size.Width(), raster.Transparent)
	})
}

func (t *EraserState) UpdateAfterDraw(Input)            {}
func (t *EraserState) DrawState(Input, overlay.Surface) {}
