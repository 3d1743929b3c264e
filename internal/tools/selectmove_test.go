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

func patterned(b *bench) {
	for y := 0; y < b.canvas.Rect.Dy(); y++ {
		for x := 0; x < b.canvas.Rect.Dx(); x++ {
			b.canvas.SetRGBA(x, y, color.RGBA{uint8(x * 3), uint8(y * 5), uint8(x + y), 255})
		}
	}
}

// lift selects the box (10,10)-(30,25) and releases.
func lift(t *testing.T, b *bench) {
	t.Helper()
	b.frame(10, 10, true)
	b.frame(30, 25, true)
	require.True(t, b.frame(30, 25, false), "release erases the original area")
}

func TestSelectZeroMoveRestoresCanvas(t *testing.T) {
	tool := NewSelect()
	b := newBench(tool, 64, 64)
	patterned(b)
	original := b.snapshot()

	lift(t, b)
	assert.Equal(t, image.Rect(10, 10, 30, 25), b.painted(white), "erased with the background colour")

	b.frame(15, 15, true)
	assert.IsType(t, selectMoving{}, tool.phase)
	assert.False(t, b.frame(15, 15, false))
	assert.IsType(t, selectHolding{}, tool.phase)

	assert.True(t, b.frame(50, 50, true), "press outside pastes")
	assert.IsType(t, selectIdle{}, tool.phase)
	assert.Equal(t, original, b.canvas.Pix)
}

func TestSelectEraseHappensOnce(t *testing.T) {
	tool := NewSelect()
	b := newBench(tool, 64, 64)
	patterned(b)
	lift(t, b)
	assert.Nil(t, tool.erase)
	for i := 0; i < 3; i++ {
		assert.False(t, b.frame(40, 40, false))
	}
}

func TestSelectMoveTranslatesRegion(t *testing.T) {
	tool := NewSelect()
	b := newBench(tool, 64, 64)
	patterned(b)
	want := b.canvas.RGBAAt(10, 10)
	lift(t, b)

	b.frame(15, 15, true)
	b.frame(20, 18, true)
	b.frame(20, 18, false)
	s, ok := tool.phase.(selectHolding)
	require.True(t, ok)
	assert.Equal(t, float32(15), s.start.X)
	assert.Equal(t, float32(13), s.start.Y)

	require.True(t, b.frame(60, 60, true))
	assert.Equal(t, want, b.canvas.RGBAAt(15, 13))
	assert.Equal(t, white, b.canvas.RGBAAt(10, 10), "vacated area keeps the erase")
}

func TestSelectClickWithoutDragDoesNothing(t *testing.T) {
	tool := NewSelect()
	b := newBench(tool, 32, 32)
	patterned(b)
	before := b.snapshot()
	b.frame(5, 5, true)
	assert.False(t, b.frame(5, 5, false))
	assert.IsType(t, selectIdle{}, tool.phase)
	assert.Nil(t, tool.erase)
	assert.Equal(t, before, b.canvas.Pix)
}

func TestSelectPreview(t *testing.T) {
	tool := NewSelect()
	b := newBench(tool, 64, 64)
	b.frame(10, 10, true)
	b.frame(30, 25, true)
	assert.Equal(t, 1, b.rec.Count(overlaytest.OpRect))
	assert.Zero(t, b.rec.Count(overlaytest.OpTexture))

	b.frame(30, 25, false)
	assert.Equal(t, 1, b.rec.Count(overlaytest.OpRect))
	require.Equal(t, 1, b.rec.Count(overlaytest.OpTexture))
	tex := b.rec.Calls[1]
	assert.Equal(t, geom.Window(78, 14), tex.P0)
	assert.Equal(t, image.Rect(0, 0, 20, 15), tex.Texture.Bounds())
}
