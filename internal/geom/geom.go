// Package geom holds the two coordinate spaces used by the paint engine and
// the transform between them.
//
// A WindowPoint is only meaningful in the window layout; a CanvasPoint is only
// meaningful as an index into the canvas. Both wrap the same Vec2 so the
// arithmetic is shared, but they are distinct types so one cannot be passed
// where the other is required.
package geom

import (
	"image"

	"github.com/chewxy/math32"
)

// Vec2 is a two component float32 vector.
type Vec2 struct {
	X, Y float32
}

// V returns the vector (x, y).
func V(x, y float32) Vec2 { return Vec2{X: x, Y: y} }

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale multiplies both components by s.
func (v Vec2) Scale(s float32) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Dist returns the Euclidean distance between v and o.
func (v Vec2) Dist(o Vec2) float32 {
	d := v.Sub(o)
	return math32.Sqrt(d.X*d.X + d.Y*d.Y)
}

// Pt floors both components into an image.Point.
func (v Vec2) Pt() image.Point {
	return image.Pt(int(math32.Floor(v.X)), int(math32.Floor(v.Y)))
}

// FromPoint converts an integer point to a vector.
func FromPoint(p image.Point) Vec2 { return Vec2{float32(p.X), float32(p.Y)} }

// WindowPoint is a position in window space.
type WindowPoint struct{ Vec2 }

// CanvasPoint is a position in canvas space.
type CanvasPoint struct{ Vec2 }

// Window returns the window-space point (x, y).
func Window(x, y float32) WindowPoint { return WindowPoint{Vec2{x, y}} }

// Canvas returns the canvas-space point (x, y).
func Canvas(x, y float32) CanvasPoint { return CanvasPoint{Vec2{x, y}} }

// Translate moves a canvas point by d.
func (p CanvasPoint) Translate(d Vec2) CanvasPoint { return CanvasPoint{p.Add(d)} }

// Transform maps between window and canvas space. Origin is where the canvas'
// top-left pixel sits in the window.
type Transform struct {
	Origin WindowPoint
}

// ToCanvas converts a window point to canvas space.
func (t Transform) ToCanvas(p WindowPoint) CanvasPoint {
	return CanvasPoint{p.Sub(t.Origin.Vec2)}
}

// ToWindow converts a canvas point to window space.
func (t Transform) ToWindow(p CanvasPoint) WindowPoint {
	return WindowPoint{p.Add(t.Origin.Vec2)}
}

// Rect is an axis aligned rectangle with its top-left corner at (X, Y).
type Rect struct {
	X, Y, W, H float32
}

// RectFromPoints builds the rectangle spanned by two corners given in any
// order.
func RectFromPoints(p0, p1 Vec2) Rect {
	minX, maxX := p0.X, p1.X
	if minX > maxX {
		minX, maxX = maxX, minX
	}
	minY, maxY := p0.Y, p1.Y
	if minY > maxY {
		minY, maxY = maxY, minY
	}
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// Min returns the top-left corner.
func (r Rect) Min() Vec2 { return Vec2{r.X, r.Y} }

// Max returns the bottom-right corner.
func (r Rect) Max() Vec2 { return Vec2{r.X + r.W, r.Y + r.H} }

// Contains reports whether p lies in the half-open rectangle
// [X, X+W) x [Y, Y+H).
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Image converts r to an image.Rectangle by flooring both corners.
func (r Rect) Image() image.Rectangle {
	return image.Rectangle{Min: r.Min().Pt(), Max: r.Max().Pt()}
}

// Translate moves r by d.
func (r Rect) Translate(d Vec2) Rect {
	r.X += d.X
	r.Y += d.Y
	return r
}
