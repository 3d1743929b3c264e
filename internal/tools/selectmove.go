package tools

import (
	"image"
	"image/color"

	"github.com/example/paintit/internal/geom"
	"github.com/example/paintit/internal/overlay"
	"github.com/example/paintit/internal/raster"
)

// selectionOutline is the colour of the selection rectangle preview.
var selectionOutline = color.RGBA{A: 255}

// capture is a region lifted off the canvas together with its uploaded
// texture. It is handed from phase to phase, never copied.
type capture struct {
	img     *image.RGBA
	texture overlay.Texture
}

// selectPhase is one state of the select tool.
type selectPhase interface {
	corners() (start, end geom.CanvasPoint, ok bool)
}

type (
	// selectIdle: nothing selected.
	selectIdle struct{}
	// selectDragging: the first corner is down and the second follows the
	// pointer.
	selectDragging struct {
		start, end geom.CanvasPoint
	}
	// selectHolding: a region has been captured and can be moved or placed.
	selectHolding struct {
		start, end geom.CanvasPoint
		region     *capture
	}
	// selectMoving: the captured region follows the pointer.
	selectMoving struct {
		start, end geom.CanvasPoint
		last       geom.CanvasPoint
		region     *capture
	}
	// selectPlacing: the region will be pasted on the next Draw.
	selectPlacing struct {
		start, end geom.CanvasPoint
		region     *capture
	}
)

func (selectIdle) corners() (geom.CanvasPoint, geom.CanvasPoint, bool) {
	return geom.CanvasPoint{}, geom.CanvasPoint{}, false
}
func (s selectDragging) corners() (geom.CanvasPoint, geom.CanvasPoint, bool) {
	return s.start, s.end, true
}
func (s selectHolding) corners() (geom.CanvasPoint, geom.CanvasPoint, bool) {
	return s.start, s.end, true
}
func (s selectMoving) corners() (geom.CanvasPoint, geom.CanvasPoint, bool) {
	return s.start, s.end, true
}
func (s selectPlacing) corners() (geom.CanvasPoint, geom.CanvasPoint, bool) {
	return s.start, s.end, true
}

// pendingErase is the original area of a capture, cleared on the next Draw.
type pendingErase struct {
	rect image.Rectangle
	fill color.RGBA
}

// SelectState lifts a rectangular region off the canvas, lets it be dragged
// around and pastes it back when the user clicks outside it.
type SelectState struct {
	phase selectPhase
	erase *pendingErase
	paste raster.PasteMode
}

// NewSelect returns an idle select tool.
func NewSelect() *SelectState {
	return &SelectState{phase: selectIdle{}}
}

func selectionRect(start, end geom.CanvasPoint) geom.Rect {
	return geom.RectFromPoints(start.Vec2, end.Vec2)
}

func (t *SelectState) UpdatePressed(in Input) {
	p := in.CanvasPointer()
	switch s := t.phase.(type) {
	case selectIdle:
		t.phase = selectDragging{start: p, end: p}
	case selectDragging:
		t.phase = selectDragging{start: s.start, end: p}
	case selectHolding:
		if selectionRect(s.start, s.end).Contains(p.Vec2) {
			t.phase = selectMoving{start: s.start, end: s.end, last: p, region: s.region}
		} else {
			t.phase = selectPlacing{start: s.start, end: s.end, region: s.region}
		}
	case selectMoving:
		d := p.Sub(s.last.Vec2)
		t.phase = selectMoving{start: s.start.Translate(d), end: s.end.Translate(d), last: p, region: s.region}
	case selectPlacing:
		// stays until Draw pastes it
	}
	t.paste = in.Settings.Paste
}

func (t *SelectState) UpdateUnpressed(in Input) {
	switch s := t.phase.(type) {
	case selectDragging:
		if s.start == s.end {
			t.phase = selectIdle{}
			return
		}
		r := selectionRect(s.start, s.end).Image()
		img := raster.Capture(in.Canvas, r)
		region := &capture{img: img}
		if in.Textures != nil {
			region.texture = in.Textures.LoadTexture(img)
		}
		t.erase = &pendingErase{rect: r, fill: in.Colors[Background]}
		t.phase = selectHolding{start: s.start, end: s.end, region: region}
		Logger().Debug("selection captured", "rect", r)
	case selectMoving:
		t.phase = selectHolding{start: s.start, end: s.end, region: s.region}
	}
}

// Draw clears the original area of a fresh capture first. Only on a later
// frame does a pending placement paste the region at its current position.
func (t *SelectState) Draw(canvas *image.RGBA) bool {
	if e := t.erase; e != nil {
		t.erase = nil
		raster.FillRect(canvas, e.rect, e.fill)
		return true
	}
	s, ok := t.phase.(selectPlacing)
	if !ok {
		return false
	}
	at := selectionRect(s.start, s.end).Min().Pt()
	raster.Blit(canvas, s.region.img, at, t.paste)
	t.phase = selectIdle{}
	return true
}

func (t *SelectState) UpdateAfterDraw(Input) {}

func (t *SelectState) DrawState(in Input, s overlay.Surface) {
	start, end, ok := t.phase.corners()
	if !ok {
		return
	}
	p0, p1 := in.Transform.ToWindow(start), in.Transform.ToWindow(end)
	s.RectLines(p0, p1, selectionOutline)

	var region *capture
	switch ph := t.phase.(type) {
	case selectHolding:
		region = ph.region
	case selectMoving:
		region = ph.region
	case selectPlacing:
		region = ph.region
	}
	if region != nil && region.texture != nil {
		min := geom.RectFromPoints(p0.Vec2, p1.Vec2).Min()
		s.Texture(region.texture, geom.WindowPoint{Vec2: min})
	}
}
