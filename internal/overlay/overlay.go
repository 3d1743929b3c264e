// Package overlay is the ephemeral preview layer tools draw on every frame.
// Nothing drawn here reaches the canvas; backends clear it and redraw it
// from scratch each frame.
package overlay

import (
	"image"
	"image/color"

	"github.com/example/paintit/internal/geom"
)

// Texture is an uploaded image the display can blit without touching the
// canvas.
type Texture interface {
	Bounds() image.Rectangle
}

// TextureLoader turns a pixel buffer into a Texture.
type TextureLoader interface {
	LoadTexture(img *image.RGBA) Texture
}

// Surface receives the preview geometry of the active tool. All coordinates
// are in window space.
type Surface interface {
	Pixel(p geom.WindowPoint, col color.RGBA)
	Line(p0, p1 geom.WindowPoint, col color.RGBA)
	// RectLines outlines the box spanned by two window corners.
	RectLines(p0, p1 geom.WindowPoint, col color.RGBA)
	Texture(t Texture, at geom.WindowPoint)
}
