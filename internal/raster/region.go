package raster

import (
	"image"

	"github.com/anthonynsimon/bild/transform"
	"golang.org/x/image/draw"
)

// PasteMode controls how a captured region is composited back.
type PasteMode int

const (
	// PasteOpaque replaces the destination pixels, alpha included.
	PasteOpaque PasteMode = iota
	// PasteTransparent blends the region over the destination.
	PasteTransparent
)

func (m PasteMode) String() string {
	switch m {
	case PasteOpaque:
		return "opaque"
	case PasteTransparent:
		return "transparent"
	}
	return "unknown"
}

// Capture copies r out of img. The copy's bounds start at (0, 0) and r is
// clipped to img first; an empty intersection yields an empty image.
func Capture(img image.Image, r image.Rectangle) *image.RGBA {
	r = r.Canon().Intersect(img.Bounds())
	if r.Empty() {
		return image.NewRGBA(image.Rectangle{})
	}
	out := transform.Crop(img, r)
	// Pix[0] is the pixel at Rect.Min for both fresh and sub images.
	out.Rect = out.Rect.Sub(out.Rect.Min)
	return out
}

// Blit draws src onto dst with src's top-left corner at at.
func Blit(dst *image.RGBA, src image.Image, at image.Point, mode PasteMode) {
	sb := src.Bounds()
	r := image.Rectangle{Min: at, Max: at.Add(sb.Size())}
	op := draw.Src
	if mode == PasteTransparent {
		op = draw.Over
	}
	draw.Draw(dst, r, src, sb.Min, op)
}
