package tools

import (
	"image"
	"image/color"

	"github.com/example/paintit/internal/geom"
	"github.com/example/paintit/internal/overlay"
	"github.com/example/paintit/internal/raster"
)

// PolygonCloseDistance is how close, in canvas pixels, a point must land to
// the first point to close the polygon.
const PolygonCloseDistance = 5.0

// PolygonState collects clicked vertices and commits a closed outline once
// a vertex lands back on the first one.
type PolygonState struct {
	points []geom.CanvasPoint
	// pending is only set while points is non-empty.
	pending sample
	color   color.RGBA
}

func (t *PolygonState) UpdatePressed(in Input) {
	p := in.CanvasPointer()
	if len(t.points) == 0 {
		t.points = append(t.points, p)
	} else {
		t.pending = sampled(p)
	}
	t.color = in.foreground()
}

func (t *PolygonState) UpdateUnpressed(Input) {
	if !t.pending.ok {
		return
	}
	first := t.points[0]
	if len(t.points) == 1 && first.Dist(t.pending.p.Vec2) <= PolygonCloseDistance {
		// a second vertex on top of the first would close instantly
		t.pending = sample{}
		t.points = t.points[:0]
		return
	}
	t.points = append(t.points, t.pending.p)
	t.pending = sample{}
}

// Draw commits when the newest vertex is within PolygonCloseDistance of the
// first. The newest vertex itself is dropped: the outline closes from the
// vertex before it straight back to the first.
func (t *PolygonState) Draw(canvas *image.RGBA) bool {
	n := len(t.points)
	if n < 2 {
		return false
	}
	first, last := t.points[0], t.points[n-1]
	if first.Dist(last.Vec2) > PolygonCloseDistance {
		return false
	}
	ring := t.points[:n-1]
	for i := 1; i < len(ring); i++ {
		raster.Line(canvas, ring[i-1].Pt(), ring[i].Pt(), t.color)
	}
	raster.Line(canvas, ring[len(ring)-1].Pt(), first.Pt(), t.color)
	Logger().Debug("polygon committed", "vertices", len(ring))

	t.pending = sample{}
	t.points = t.points[:0]
	return true
}

func (t *PolygonState) UpdateAfterDraw(Input) {}

func (t *PolygonState) DrawState(in Input, s overlay.Surface) {
	for i := 1; i < len(t.points); i++ {
		s.Line(in.Transform.ToWindow(t.points[i-1]), in.Transform.ToWindow(t.points[i]), t.color)
	}
	if t.pending.ok {
		s.Line(in.Transform.ToWindow(t.points[len(t.points)-1]), in.Transform.ToWindow(t.pending.p), t.color)
	}
}
