package tools

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/paintit/internal/geom"
	"github.com/example/paintit/internal/overlay/overlaytest"
)

// place presses at p0, drags to p1 and releases.
func place(b *bench, p0, p1 geom.Vec2) (dirty bool) {
	b.frame(p0.X, p0.Y, true)
	b.frame(p1.X, p1.Y, true)
	return b.frame(p1.X, p1.Y, false)
}

func TestRectangleOutlineIsOrderIndependent(t *testing.T) {
	a := newBench(&RectangleState{}, 64, 64)
	require.True(t, place(a, geom.V(10, 10), geom.V(50, 40)))
	assert.Equal(t, image.Rect(10, 10, 51, 41), a.painted(black))

	b := newBench(&RectangleState{}, 64, 64)
	require.True(t, place(b, geom.V(50, 40), geom.V(10, 10)))
	assert.Equal(t, a.canvas.Pix, b.canvas.Pix)
}

func TestShapePreviewIsInWindowSpace(t *testing.T) {
	b := newBench(&RectangleState{}, 64, 64)
	b.frame(10, 10, true)
	assert.Empty(t, b.rec.Calls, "no preview with a single anchor")

	b.frame(50, 40, true)
	require.Len(t, b.rec.Calls, 1)
	call := b.rec.Calls[0]
	assert.Equal(t, overlaytest.OpRect, call.Op)
	assert.Equal(t, geom.Window(78, 14), call.P0)
	assert.Equal(t, geom.Window(118, 44), call.P1)

	before := b.snapshot()
	assert.Equal(t, before, b.canvas.Pix, "preview never touches the canvas")
}

func TestShapeAnchorsResetAfterCommit(t *testing.T) {
	tool := &LineState{}
	b := newBench(tool, 64, 64)
	require.True(t, place(b, geom.V(5, 5), geom.V(20, 5)))
	assert.False(t, tool.placed())
	assert.False(t, tool.commit)
	assert.Empty(t, b.rec.Calls)

	assert.False(t, b.frame(30, 30, false), "idle shape stays clean")
	assert.Equal(t, image.Rect(5, 5, 21, 6), b.painted(black))
}

func TestShapeTwoClickPlacement(t *testing.T) {
	b := newBench(&LineState{}, 64, 64)
	b.click(5, 5)
	assert.Equal(t, image.Rectangle{}, b.painted(black), "one click commits nothing")
	b.frame(5, 30, true)
	assert.True(t, b.frame(5, 30, false))
	assert.Equal(t, image.Rect(5, 5, 6, 31), b.painted(black))
}

func TestEllipseStaysInsideBox(t *testing.T) {
	b := newBench(&EllipseState{}, 64, 64)
	require.True(t, place(b, geom.V(10, 20), geom.V(50, 40)))
	painted := b.painted(black)
	assert.True(t, painted.In(image.Rect(10, 20, 51, 41)), "%v", painted)
	assert.Equal(t, black, b.canvas.RGBAAt(50, 30), "right extreme")
	assert.Equal(t, color.RGBA{}, b.canvas.RGBAAt(30, 30), "centre")
}

func TestRoundedRectangleCommitsAndPreviews(t *testing.T) {
	b := newBench(&RoundedRectangleState{}, 128, 128)
	b.frame(20, 20, true)
	b.frame(100, 80, true)
	assert.Equal(t, 44, b.rec.Count(overlaytest.OpLine))
	assert.True(t, b.frame(100, 80, false))

	assert.Equal(t, black, b.canvas.RGBAAt(60, 19), "top edge sits one pixel outside")
	assert.Equal(t, color.RGBA{}, b.canvas.RGBAAt(20, 20), "corner is rounded off")
}

func TestPolygonSecondPointTooCloseIsDiscarded(t *testing.T) {
	tool := &PolygonState{}
	b := newBench(tool, 64, 64)
	b.click(10, 10)
	require.Len(t, tool.points, 1)
	b.click(12, 12)
	assert.Empty(t, tool.points)
	assert.False(t, tool.pending.ok)
	assert.Equal(t, image.Rectangle{}, b.painted(black))
}

func TestPolygonTriangleCommits(t *testing.T) {
	tool := &PolygonState{}
	b := newBench(tool, 64, 64)
	b.click(10, 10)
	b.click(50, 10)
	b.click(30, 40)
	assert.Len(t, tool.points, 3)
	assert.Equal(t, image.Rectangle{}, b.painted(black), "open polygon is only previewed")
	assert.Equal(t, 2, b.rec.Count(overlaytest.OpLine))

	b.frame(11, 11, true)
	assert.Equal(t, 3, b.rec.Count(overlaytest.OpLine), "rubber band to the pending point")
	assert.True(t, b.frame(11, 11, false))
	assert.Empty(t, tool.points)

	for _, p := range []image.Point{{10, 10}, {50, 10}, {30, 40}, {30, 10}} {
		assert.Equal(t, black, b.canvas.RGBAAt(p.X, p.Y), "%v", p)
	}
	assert.Equal(t, image.Rect(10, 10, 51, 41), b.painted(black))
}

func TestPolygonClosesFromSecondToLastPoint(t *testing.T) {
	tool := &PolygonState{}
	b := newBench(tool, 64, 64)
	b.click(10, 10)
	b.click(50, 10)
	b.click(50, 50)
	b.click(14, 13)

	// The closing vertex (14,13) is dropped, so the last edge runs from
	// (50,50) to (10,10) and (14,13) itself stays blank.
	assert.Equal(t, color.RGBA{}, b.canvas.RGBAAt(14, 13))
	assert.Equal(t, black, b.canvas.RGBAAt(30, 30))
}
