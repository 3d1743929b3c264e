package ui

import (
	"image"

	"github.com/example/paintit/internal/frame"
	"github.com/example/paintit/internal/overlay"
	"github.com/example/paintit/internal/raster"
	"github.com/example/paintit/internal/render"
	"github.com/example/paintit/internal/theme"
	"github.com/example/paintit/internal/tools"
)

// Layout places the chrome around a canvas rectangle given in window space.
type Layout struct {
	Window  image.Rectangle
	Toolbar image.Rectangle
	Canvas  image.Rectangle
	Status  image.Rectangle
}

// NewLayout computes the window layout for canvas.
func NewLayout(canvas image.Rectangle) Layout {
	rows := (int(tools.NumKinds) + ToolbarColumns - 1) / ToolbarColumns
	toolbar := image.Rect(0, canvas.Min.Y, ToolbarWidth, canvas.Min.Y+rows*CellSize)
	top := max(canvas.Max.Y, toolbar.Max.Y) + Margin
	width := max(canvas.Max.X+Margin, ToolbarWidth)
	return Layout{
		Window:  image.Rect(0, 0, width, top+StatusHeight),
		Toolbar: toolbar,
		Canvas:  canvas,
		Status:  image.Rect(0, top, width, top+StatusHeight),
	}
}

// Chrome draws everything in the window that is not the canvas itself.
type Chrome struct {
	Theme   *theme.Theme
	Layout  Layout
	Toolbar *Toolbar
	Status  *StatusBar

	shadow render.Shadow
}

// NewChrome builds the chrome for d's canvas. onSelect is called when a
// tool button is clicked.
func NewChrome(th *theme.Theme, d *frame.Driver, onSelect func(tools.Kind)) *Chrome {
	l := NewLayout(d.CanvasRect().Image())
	opts := render.DefaultShadowOptions()
	opts.Color = th.CanvasShadow
	return &Chrome{
		Theme:   th,
		Layout:  l,
		Toolbar: NewToolbar(th, l.Toolbar.Min, onSelect),
		Status:  NewStatusBar(th, l.Status),
		shadow:  render.RectShadow(l.Canvas, opts),
	}
}

// Size returns the window size.
func (c *Chrome) Size() image.Point { return c.Layout.Window.Size() }

// DrawUnder paints the layers below the canvas: background, toolbar,
// shadow and the backdrop behind transparent canvas pixels.
func (c *Chrome) DrawUnder(dst *image.RGBA, d *frame.Driver) {
	th := c.Theme
	raster.FillRect(dst, c.Layout.Window, th.Background)
	column := image.Rect(0, 0, ToolbarWidth, c.Layout.Status.Min.Y)
	raster.FillRect(dst, column, th.ToolbarBackground)
	raster.Line(dst, image.Pt(column.Max.X, 0), image.Pt(column.Max.X, column.Max.Y-1), th.ToolbarBorder)

	k, ok := d.Active()
	c.Toolbar.Draw(dst, k, ok)

	c.shadow.Draw(dst)
	raster.FillRect(dst, c.Layout.Canvas, th.CanvasBackdrop)
}

// DrawStatus paints the status bar.
func (c *Chrome) DrawStatus(dst *image.RGBA, d *frame.Driver) {
	c.Status.Draw(dst, StatusOf(d))
}

// Compose renders a whole window frame into dst: chrome, canvas, the active
// tool's preview and the status bar. canvas is the copy last uploaded to the
// display.
func (c *Chrome) Compose(dst *image.RGBA, d *frame.Driver, canvas image.Image) {
	c.DrawUnder(dst, d)
	raster.Blit(dst, canvas, c.Layout.Canvas.Min, raster.PasteTransparent)
	d.DrawOverlay(overlay.NewImage(dst))
	c.DrawStatus(dst, d)
}
