package tools

import (
	"fmt"
	"strings"

	"github.com/example/paintit/internal/raster"
)

// BrushSize selects the brush stamp width.
type BrushSize int

const (
	BrushSmall BrushSize = iota + 1
	BrushMedium
	BrushLarge
)

// Width returns the stamp width in pixels.
func (s BrushSize) Width() int {
	switch s {
	case BrushSmall:
		return 4
	case BrushLarge:
		return 16
	}
	return 8
}

// BrushShape selects the brush stamp.
type BrushShape int

const (
	BrushCircle BrushShape = iota
	BrushSquare
	BrushForwardLine
	BrushBackwardLine
)

var brushShapeNames = []string{"circle", "square", "forward", "backward"}

func (s BrushShape) String() string {
	if s < 0 || int(s) >= len(brushShapeNames) {
		return fmt.Sprintf("BrushShape(%d)", int(s))
	}
	return brushShapeNames[s]
}

// Implemented reports whether the brush can stamp with s.
func (s BrushShape) Implemented() bool {
	return s == BrushCircle || s == BrushSquare
}

// ParseBrushShape accepts the names printed by BrushShape.String.
func ParseBrushShape(v string) (BrushShape, error) {
	v = strings.ToLower(strings.TrimSpace(v))
	for i, n := range brushShapeNames {
		if n == v {
			return BrushShape(i), nil
		}
	}
	return 0, fmt.Errorf("unknown brush shape %q", v)
}

// SpraySize selects the spray radius.
type SpraySize int

const (
	SpraySmall SpraySize = iota + 1
	SprayMedium
	SprayLarge
)

// Radius returns the spray radius in pixels.
func (s SpraySize) Radius() float32 {
	switch s {
	case SprayMedium:
		return 10
	case SprayLarge:
		return 20
	}
	return 5
}

// EraserSize selects the eraser square.
type EraserSize int

const (
	EraserSmall EraserSize = iota + 1
	EraserMedium
	EraserLarge
	EraserHuge
)

// Width returns the eraser square side in pixels.
func (s EraserSize) Width() int {
	switch s {
	case EraserMedium:
		return 16
	case EraserLarge:
		return 32
	case EraserHuge:
		return 64
	}
	return 8
}

// Settings holds the per-tool options chosen by the user.
type Settings struct {
	BrushSize  BrushSize
	BrushShape BrushShape
	SpraySize  SpraySize
	EraserSize EraserSize
	Paste      raster.PasteMode
}

// DefaultSettings returns the settings a fresh session starts with.
func DefaultSettings() Settings {
	return Settings{
		BrushSize:  BrushMedium,
		BrushShape: BrushCircle,
		SpraySize:  SpraySmall,
		EraserSize: EraserSmall,
		Paste:      raster.PasteOpaque,
	}
}
