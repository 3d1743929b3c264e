package tools

import (
	"image"
	"image/color"

	"github.com/example/paintit/internal/geom"
	"github.com/example/paintit/internal/overlay"
	"github.com/example/paintit/internal/raster"
)

// anchors is the two-click placement shared by the shape tools: the first
// press sets start, later presses move end, and a release with both set
// marks the shape for commit on the next Draw.
type anchors struct {
	start, end sample
	commit     bool
	color      color.RGBA
}

func (a *anchors) UpdatePressed(in Input) {
	p := in.CanvasPointer()
	if !a.start.ok {
		a.start = sampled(p)
	} else {
		a.end = sampled(p)
	}
	a.color = in.foreground()
}

func (a *anchors) UpdateUnpressed(Input) {
	if a.placed() {
		a.commit = true
	}
}

func (a *anchors) UpdateAfterDraw(Input) {
	if a.commit {
		a.start, a.end = sample{}, sample{}
		a.commit = false
	}
}

func (a *anchors) placed() bool { return a.start.ok && a.end.ok }

func (a *anchors) window(in Input) (geom.WindowPoint, geom.WindowPoint) {
	return in.Transform.ToWindow(a.start.p), in.Transform.ToWindow(a.end.p)
}

// LineState draws a straight line between two anchors.
type LineState struct{ anchors }

func (t *LineState) Draw(canvas *image.RGBA) bool {
	if !t.commit {
		return false
	}
	raster.Line(canvas, t.start.pt(), t.end.pt(), t.color)
	return true
}

func (t *LineState) DrawState(in Input, s overlay.Surface) {
	if !t.placed() {
		return
	}
	p0, p1 := t.window(in)
	s.Line(p0, p1, t.color)
}

// RectangleState outlines the box spanned by two anchors.
type RectangleState struct{ anchors }

func (t *RectangleState) Draw(canvas *image.RGBA) bool {
	if !t.commit {
		return false
	}
	raster.RectOutline(canvas, t.start.pt(), t.end.pt(), t.color)
	return true
}

func (t *RectangleState) DrawState(in Input, s overlay.Surface) {
	if !t.placed() {
		return
	}
	p0, p1 := t.window(in)
	s.RectLines(p0, p1, t.color)
}

// RoundedRectangleState outlines the box spanned by two anchors with
// rounded corners.
type RoundedRectangleState struct{ anchors }

func (t *RoundedRectangleState) Draw(canvas *image.RGBA) bool {
	if !t.commit {
		return false
	}
	raster.Segments(canvas, geom.RoundedRectSegments(t.start.p.Vec2, t.end.p.Vec2), t.color)
	return true
}

func (t *RoundedRectangleState) DrawState(in Input, s overlay.Surface) {
	if !t.placed() {
		return
	}
	p0, p1 := t.window(in)
	for _, seg := range geom.RoundedRectSegments(p0.Vec2, p1.Vec2) {
		s.Line(geom.WindowPoint{Vec2: seg.P0}, geom.WindowPoint{Vec2: seg.P1}, t.color)
	}
}

// EllipseState outlines the ellipse inscribed in the box spanned by two
// anchors.
type EllipseState struct{ anchors }

func (t *EllipseState) Draw(canvas *image.RGBA) bool {
	if !t.commit {
		return false
	}
	raster.Points(canvas, geom.EllipsePoints(t.start.p.Vec2, t.end.p.Vec2, geom.EllipseStep), t.color)
	return true
}

func (t *EllipseState) DrawState(in Input, s overlay.Surface) {
	if !t.placed() {
		return
	}
	p0, p1 := t.window(in)
	for _, p := range geom.EllipsePoints(p0.Vec2, p1.Vec2, geom.EllipseStep) {
		s.Pixel(geom.WindowPoint{Vec2: p}, t.color)
	}
}
