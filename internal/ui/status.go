package ui

import (
	"fmt"
	"image"
	"image/color"

	"github.com/example/paintit/internal/frame"
	"github.com/example/paintit/internal/raster"
	"github.com/example/paintit/internal/theme"
	"github.com/example/paintit/internal/tools"
)

// StatusHeight is the height of the status bar below the canvas.
const StatusHeight = 20

const swatchSize = 12

// Status is what the status bar shows for one frame.
type Status struct {
	Tool     string
	Pointer  image.Point // canvas coordinates
	InCanvas bool
	Colors   [2]color.RGBA
}

// StatusOf reads the status from the frame driver.
func StatusOf(d *frame.Driver) Status {
	s := Status{Colors: d.Colors(), InCanvas: d.PointerInCanvas()}
	if k, ok := d.Active(); ok {
		s.Tool = k.String()
	}
	_, cp := d.Pointer()
	s.Pointer = cp.Pt()
	return s
}

// Text returns the status line. Coordinates are only shown while the
// pointer is over the canvas.
func (s Status) Text() string {
	tool := s.Tool
	if tool == "" {
		tool = "no tool"
	}
	if !s.InCanvas {
		return tool
	}
	return fmt.Sprintf("%s  %d,%d", tool, s.Pointer.X, s.Pointer.Y)
}

// StatusBar draws the status line and the colour swatches.
type StatusBar struct {
	rect  image.Rectangle
	theme *theme.Theme
}

// NewStatusBar creates a status bar covering r.
func NewStatusBar(th *theme.Theme, r image.Rectangle) *StatusBar {
	return &StatusBar{rect: r, theme: th}
}

// Rect returns the area of the status bar.
func (sb *StatusBar) Rect() image.Rectangle { return sb.rect }

// TextOrigin is the baseline start of the status text.
func (sb *StatusBar) TextOrigin() image.Point {
	return image.Pt(sb.rect.Min.X+Margin, sb.rect.Min.Y+15)
}

// Draw paints the panel, the swatches and the text.
func (sb *StatusBar) Draw(dst *image.RGBA, s Status) {
	sb.DrawPanel(dst, s)
	drawText(dst, s.Text(), sb.TextOrigin(), sb.theme.StatusText)
}

// DrawPanel paints everything except the text, for backends that render
// text themselves.
func (sb *StatusBar) DrawPanel(dst *image.RGBA, s Status) {
	r := sb.rect
	raster.FillRect(dst, r, sb.theme.StatusBackground)
	raster.Line(dst, r.Min, image.Pt(r.Max.X-1, r.Min.Y), sb.theme.StatusHighlight)

	sw := sb.Swatches()
	for _, i := range []int{tools.Background, tools.Foreground} {
		sw := sw[i]
		raster.FillRect(dst, sw, s.Colors[i])
		raster.RectOutline(dst, sw.Min, sw.Max.Sub(image.Pt(1, 1)), sb.theme.ButtonBorder)
	}
}

// Swatches returns the foreground and background swatch rectangles. The
// foreground swatch overlaps the background one, so it is drawn last.
func (sb *StatusBar) Swatches() [2]image.Rectangle {
	x := sb.rect.Max.X - Margin - swatchSize - swatchSize/2
	y := sb.rect.Min.Y + (sb.rect.Dy()-swatchSize)/2 - 2
	fg := image.Rect(x, y, x+swatchSize, y+swatchSize)
	bg := fg.Add(image.Pt(swatchSize/2, 4))
	var out [2]image.Rectangle
	out[tools.Background] = bg
	out[tools.Foreground] = fg
	return out
}
