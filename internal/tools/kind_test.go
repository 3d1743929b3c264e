package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindIndexRoundTrip(t *testing.T) {
	for i := 0; i < NumKinds; i++ {
		k, err := KindFromIndex(i)
		require.NoError(t, err)
		assert.Equal(t, i, k.Index())
		parsed, err := ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, parsed)
	}
	assert.Equal(t, FreeFormSelect, Kinds()[0])
	assert.Equal(t, RoundedRectangle, Kinds()[15])
}

func TestKindFromIndexRejectsOutOfRange(t *testing.T) {
	for _, i := range []int{-1, 16, 99} {
		_, err := KindFromIndex(i)
		assert.ErrorIs(t, err, ErrUnknownKind)
	}
	_, err := ParseKind("airbrush")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestParseKindIsLenient(t *testing.T) {
	k, err := ParseKind(" Rounded_Rectangle ")
	require.NoError(t, err)
	assert.Equal(t, RoundedRectangle, k)
}

func TestEveryKindHasState(t *testing.T) {
	for _, k := range Kinds() {
		tool, err := New(k)
		require.NoError(t, err, k.String())
		require.NotNil(t, tool)
		_, placeholder := tool.(Placeholder)
		assert.Equal(t, !k.Implemented(), placeholder, k.String())
	}
	_, err := New(Kind(42))
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestPlaceholderIsInert(t *testing.T) {
	tool, err := New(Magnifier)
	require.NoError(t, err)
	b := newBench(tool, 8, 8)
	before := b.snapshot()
	assert.False(t, b.frame(3, 3, true))
	assert.False(t, b.frame(3, 3, false))
	assert.Equal(t, before, b.canvas.Pix)
	assert.Empty(t, b.rec.Calls)
}

func TestSettingsDefaults(t *testing.T) {
	s := DefaultSettings()
	assert.Equal(t, 8, s.BrushSize.Width())
	assert.Equal(t, float32(5), s.SpraySize.Radius())
	assert.Equal(t, 8, s.EraserSize.Width())
	assert.Equal(t, []int{4, 8, 16}, []int{BrushSmall.Width(), BrushMedium.Width(), BrushLarge.Width()})
	assert.Equal(t, []int{8, 16, 32, 64}, []int{EraserSmall.Width(), EraserMedium.Width(), EraserLarge.Width(), EraserHuge.Width()})
	assert.Equal(t, []float32{5, 10, 20}, []float32{SpraySmall.Radius(), SprayMedium.Radius(), SprayLarge.Radius()})

	shape, err := ParseBrushShape("Square")
	require.NoError(t, err)
	assert.Equal(t, BrushSquare, shape)
	_, err = ParseBrushShape("star")
	assert.Error(t, err)
}
