// Package tools implements the paint tools. Each tool is a small state
// machine driven once per frame in a fixed order:
//
//	UpdatePressed or UpdateUnpressed
//	Draw           (commits pending work to the canvas, reports dirty)
//	UpdateAfterDraw (only when Draw reported dirty)
//	DrawState      (ephemeral preview, every frame)
package tools

import (
	"image"
	"image/color"

	"github.com/example/paintit/internal/geom"
	"github.com/example/paintit/internal/overlay"
)

// Indices into Input.Colors.
const (
	Foreground = 0
	Background = 1
)

// Input is the per-frame view of the user state a tool may read.
type Input struct {
	Pointer   geom.WindowPoint
	Colors    [2]color.RGBA
	Transform geom.Transform
	Settings  Settings
	// Canvas is a read-only view of the canvas between draws.
	Canvas image.Image
	// Textures uploads captured regions for the preview layer.
	Textures overlay.TextureLoader
}

// CanvasPointer is the pointer position in canvas space.
func (in Input) CanvasPointer() geom.CanvasPoint {
	return in.Transform.ToCanvas(in.Pointer)
}

func (in Input) foreground() color.RGBA { return in.Colors[Foreground] }

// Tool is the per-frame contract every tool state implements.
type Tool interface {
	// UpdatePressed runs when the primary button is held inside the canvas.
	UpdatePressed(in Input)
	// UpdateUnpressed runs on every other frame.
	UpdateUnpressed(in Input)
	// Draw commits pending work to canvas and reports whether it changed.
	// With nothing pending it must return false without touching canvas.
	Draw(canvas *image.RGBA) bool
	// UpdateAfterDraw runs only after Draw returned true.
	UpdateAfterDraw(in Input)
	// DrawState paints the preview for this frame.
	DrawState(in Input, s overlay.Surface)
}

// ColorSource is implemented by tools that sample colours. ok is true only
// on frames whose Draw took a sample; the frame driver then replaces the
// foreground colour with c.
type ColorSource interface {
	Color() (c color.RGBA, ok bool)
}
