// Package ui draws the window chrome around the canvas: the tool buttons,
// the status bar and the canvas frame.
package ui

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/example/paintit/internal/raster"
	"github.com/example/paintit/internal/theme"
	"github.com/example/paintit/internal/tools"
)

// ButtonState describes the visual state of a button.
type ButtonState int

const (
	StateDefault ButtonState = iota
	StateHover
	StatePressed
)

// Button represents an interactive UI element.
// Activate performs the button's action when clicked.
type Button interface {
	Draw(dst *image.RGBA, state ButtonState)
	Rect() image.Rectangle
	SetRect(r image.Rectangle)
	Activate()
}

// CacheButton wraps another Button and caches its rendered states.
type CacheButton struct {
	Button
	cache [3]*image.RGBA
}

var _ Button = (*CacheButton)(nil)

func (cb *CacheButton) Draw(dst *image.RGBA, state ButtonState) {
	if cb.cache[state] == nil {
		img := image.NewRGBA(cb.Button.Rect())
		cb.Button.Draw(img, state)
		cb.cache[state] = img
	}
	draw.Draw(dst, cb.Button.Rect(), cb.cache[state], cb.Button.Rect().Min, draw.Src)
}

func (cb *CacheButton) SetRect(r image.Rectangle) {
	if r != cb.Button.Rect() {
		cb.Button.SetRect(r)
		cb.cache = [3]*image.RGBA{}
	}
}

var labels = [tools.NumKinds]string{
	tools.FreeFormSelect:   "Free",
	tools.Select:           "Sel",
	tools.Eraser:           "Ers",
	tools.PaintBucket:      "Fill",
	tools.ColorPicker:      "Pick",
	tools.Magnifier:        "Zoom",
	tools.Pencil:           "Pen",
	tools.Brush:            "Brsh",
	tools.Spray:            "Spry",
	tools.InsertText:       "Text",
	tools.Line:             "Line",
	tools.Curve:            "Crv",
	tools.Rectangle:        "Rect",
	tools.Polygon:          "Poly",
	tools.Ellipse:          "Ell",
	tools.RoundedRectangle: "RRct",
}

// Label returns the short caption shown on the button for k.
func Label(k tools.Kind) string {
	if k < 0 || int(k) >= len(labels) {
		return "?"
	}
	return labels[k]
}

// ToolButton selects a drawing tool.
type ToolButton struct {
	Kind  tools.Kind
	theme *theme.Theme
	rect  image.Rectangle
	// onSelect is called when the button is activated.
	onSelect func(tools.Kind)
}

func (tb *ToolButton) Draw(dst *image.RGBA, state ButtonState) {
	th := tb.theme
	c := th.ButtonBackground
	switch state {
	case StateHover:
		c = th.ButtonBackgroundHover
	case StatePressed:
		c = th.ButtonBackgroundPress
	}
	raster.FillRect(dst, tb.rect, c)
	bevel(dst, tb.rect, th.ButtonHighlight, th.ButtonBorder, state == StatePressed)

	text := th.ButtonText
	if !tb.Kind.Implemented() {
		text = th.ButtonTextDisabled
	}
	label := Label(tb.Kind)
	off := image.Pt(0, 0)
	if state == StatePressed {
		off = image.Pt(1, 1)
	}
	w := font.MeasureString(basicfont.Face7x13, label).Ceil()
	drawText(dst, label, image.Pt(tb.rect.Min.X+(tb.rect.Dx()-w)/2, tb.rect.Min.Y+20).Add(off), text)
}

func (tb *ToolButton) Rect() image.Rectangle { return tb.rect }

func (tb *ToolButton) SetRect(r image.Rectangle) {
	if r != tb.rect {
		tb.rect = r
	}
}

func (tb *ToolButton) Activate() {
	if tb.onSelect != nil {
		tb.onSelect(tb.Kind)
	}
}

// bevel draws a raised or sunken one pixel frame inside r.
func bevel(dst *image.RGBA, r image.Rectangle, light, dark color.RGBA, sunken bool) {
	if r.Empty() {
		return
	}
	if sunken {
		light, dark = dark, light
	}
	tl := r.Min
	tr := image.Pt(r.Max.X-1, r.Min.Y)
	bl := image.Pt(r.Min.X, r.Max.Y-1)
	br := r.Max.Sub(image.Pt(1, 1))
	raster.Line(dst, tl, tr, light)
	raster.Line(dst, tl, bl, light)
	raster.Line(dst, bl, br, dark)
	raster.Line(dst, tr, br, dark)
}

// drawText writes s with its baseline starting at dot.
func drawText(dst *image.RGBA, s string, dot image.Point, col color.RGBA) {
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(col), Face: basicfont.Face7x13,
		Dot: fixed.P(dot.X, dot.Y)}
	d.DrawString(s)
}
