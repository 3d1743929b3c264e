package theme

import (
	"image/color"
)

// Theme defines the colour palette of the window chrome. The canvas itself
// is never themed.
type Theme struct {
	Name string

	// General
	Background color.RGBA // Window background around the canvas
	Foreground color.RGBA // Main text colour

	// Toolbar
	ToolbarBackground color.RGBA
	ToolbarBorder     color.RGBA

	// Tool Buttons
	ButtonBackground      color.RGBA
	ButtonBackgroundHover color.RGBA
	ButtonBackgroundPress color.RGBA // Active tool
	ButtonHighlight       color.RGBA // Bevel on raised buttons
	ButtonBorder          color.RGBA
	ButtonText            color.RGBA
	ButtonTextDisabled    color.RGBA // Tools without behaviour

	// Status bar
	StatusBackground color.RGBA
	StatusHighlight  color.RGBA
	StatusText       color.RGBA

	// Canvas
	CanvasBackdrop color.RGBA // Shown through transparent canvas pixels
	CanvasShadow   color.RGBA
}

// Default returns the hardcoded default light theme (fallback).
func Default() *Theme {
	return &Theme{
		Name:                  "Default",
		Background:            color.RGBA{130, 130, 130, 255},
		Foreground:            color.RGBA{0, 0, 0, 255},
		ToolbarBackground:     color.RGBA{200, 200, 200, 255},
		ToolbarBorder:         color.RGBA{0, 0, 0, 255},
		ButtonBackground:      color.RGBA{200, 200, 200, 255},
		ButtonBackgroundHover: color.RGBA{215, 215, 215, 255},
		ButtonBackgroundPress: color.RGBA{170, 170, 170, 255},
		ButtonHighlight:       color.RGBA{255, 255, 255, 255},
		ButtonBorder:          color.RGBA{0, 0, 0, 255},
		ButtonText:            color.RGBA{0, 0, 0, 255},
		ButtonTextDisabled:    color.RGBA{128, 128, 128, 255},
		StatusBackground:      color.RGBA{200, 200, 200, 255},
		StatusHighlight:       color.RGBA{255, 255, 255, 255},
		StatusText:            color.RGBA{0, 0, 0, 255},
		CanvasBackdrop:        color.RGBA{255, 255, 255, 255},
		CanvasShadow:          color.RGBA{0, 0, 0, 160},
	}
}
