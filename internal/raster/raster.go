// Package raster contains the pixel level drawing routines shared by the
// paint tools. Every write goes through Set, which silently drops pixels
// outside the destination bounds, so callers never need to clamp.
package raster

import (
	"image"
	"image/color"

	"github.com/example/paintit/internal/geom"
)

// Transparent is the colour written by the eraser.
var Transparent = color.RGBA{}

// Set replaces the pixel at (x, y) with col. Out of bounds writes are ignored.
func Set(img *image.RGBA, x, y int, col color.RGBA) {
	if !image.Pt(x, y).In(img.Bounds()) {
		return
	}
	img.SetRGBA(x, y, col)
}

// At returns the colour at p and whether p is inside img.
func At(img image.Image, p image.Point) (color.RGBA, bool) {
	if !p.In(img.Bounds()) {
		return color.RGBA{}, false
	}
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba.RGBAAt(p.X, p.Y), true
	}
	return color.RGBAModel.Convert(img.At(p.X, p.Y)).(color.RGBA), true
}

// Bresenham visits every integer point on the line from p0 to p1, both
// endpoints included, stepping at most one pixel per axis between visits.
func Bresenham(p0, p1 image.Point, visit func(image.Point)) {
	x0, y0 := p0.X, p0.Y
	x1, y1 := p1.X, p1.Y
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := -dy / 2
	if dx > dy {
		err = dx / 2
	}
	for {
		visit(image.Pt(x0, y0))
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := err
		if e2 > -dx {
			err -= dy
			x0 += sx
		}
		if e2 < dy {
			err += dx
			y0 += sy
		}
	}
}

// Stamp paints a shape centred on p.
type Stamp func(img *image.RGBA, p image.Point)

// PixelStamp paints a single pixel.
func PixelStamp(col color.RGBA) Stamp {
	return func(img *image.RGBA, p image.Point) {
		Set(img, p.X, p.Y, col)
	}
}

// CircleStamp paints a filled circle of radius r.
func CircleStamp(r int, col color.RGBA) Stamp {
	return func(img *image.RGBA, p image.Point) {
		FillCircle(img, p, r, col)
	}
}

// SquareStamp paints a size x size square whose top-left corner is p - size/2.
func SquareStamp(size int, col color.RGBA) Stamp {
	return func(img *image.RGBA, p image.Point) {
		min := p.Sub(image.Pt(size/2, size/2))
		FillRect(img, image.Rectangle{Min: min, Max: min.Add(image.Pt(size, size))}, col)
	}
}

// StrokeLine stamps s at every point of the line between p0 and p1 so fast
// pointer motion leaves no gaps.
func StrokeLine(img *image.RGBA, p0, p1 image.Point, s Stamp) {
	Bresenham(p0, p1, func(p image.Point) { s(img, p) })
}

// Line draws a one pixel wide line.
func Line(img *image.RGBA, p0, p1 image.Point, col color.RGBA) {
	StrokeLine(img, p0, p1, PixelStamp(col))
}

// FillCircle paints every pixel whose distance from c is at most r.
func FillCircle(img *image.RGBA, c image.Point, r int, col color.RGBA) {
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				Set(img, c.X+dx, c.Y+dy, col)
			}
		}
	}
}

// FillRect replaces every pixel of r (clipped to img) with col.
func FillRect(img *image.RGBA, r image.Rectangle, col color.RGBA) {
	r = r.Canon().Intersect(img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetRGBA(x, y, col)
		}
	}
}

// RectOutline draws the outline of the box spanned by the corners p0 and p1.
// Both corners lie on the outline whatever order they are given in.
func RectOutline(img *image.RGBA, p0, p1 image.Point, col color.RGBA) {
	r := image.Rectangle{Min: p0, Max: p1}.Canon()
	Line(img, r.Min, image.Pt(r.Max.X, r.Min.Y), col)
	Line(img, image.Pt(r.Max.X, r.Min.Y), r.Max, col)
	Line(img, r.Max, image.Pt(r.Min.X, r.Max.Y), col)
	Line(img, image.Pt(r.Min.X, r.Max.Y), r.Min, col)
}

// Segments draws each segment as a one pixel line.
func Segments(img *image.RGBA, segs []geom.Segment, col color.RGBA) {
	for _, s := range segs {
		Line(img, s.P0.Pt(), s.P1.Pt(), col)
	}
}

// Points sets every point in pts.
func Points(img *image.RGBA, pts []geom.Vec2, col color.RGBA) {
	for _, p := range pts {
		q := p.Pt()
		Set(img, q.X, q.Y, col)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
