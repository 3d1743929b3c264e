package geom

import "github.com/chewxy/math32"

// Segment is a straight line between two points.
type Segment struct {
	P0, P1 Vec2
}

// Translate moves both endpoints by d.
func (s Segment) Translate(d Vec2) Segment {
	return Segment{s.P0.Add(d), s.P1.Add(d)}
}

const (
	// EllipseStep is the angular step, in radians, used when sampling an
	// ellipse outline.
	EllipseStep float32 = 0.001

	cornerSegments   = 10
	cornerMaxRadius  = 10
	outlineThickness = 1
)

// EllipsePoints samples the outline of the ellipse inscribed in the box
// spanned by p0 and p1, one point every step radians.
func EllipsePoints(p0, p1 Vec2, step float32) []Vec2 {
	r := RectFromPoints(p0, p1)
	a := r.W / 2
	b := r.H / 2
	c := Vec2{r.X + a, r.Y + b}
	n := int(2*math32.Pi/step) + 1
	pts := make([]Vec2, 0, n)
	for t := float32(0); t < 2*math32.Pi; t += step {
		pts = append(pts, Vec2{c.X + a*math32.Cos(t), c.Y + b*math32.Sin(t)})
	}
	return pts
}

// RoundedRectSegments returns the outline of a rounded rectangle spanning p0
// and p1: ten segments per corner arc followed by the four straight edges.
// The arcs and edges sit one pixel outside the box.
func RoundedRectSegments(p0, p1 Vec2) []Segment {
	r := RectFromPoints(p0, p1)
	step := (math32.Pi / 2) / cornerSegments
	radius := math32.Min(cornerMaxRadius, math32.Min(r.H/2, r.W/2))
	outer := radius + outlineThickness
	right, bottom := r.X+r.W, r.Y+r.H

	centers := [4]Vec2{
		{r.X + radius, r.Y + radius},
		{right - radius, r.Y + radius},
		{right - radius, bottom - radius},
		{r.X + radius, bottom - radius},
	}
	angles := [4]float32{math32.Pi, 3 * math32.Pi / 2, 0, math32.Pi / 2}

	segs := make([]Segment, 0, 4*cornerSegments+4)
	for k, c := range centers {
		angle := angles[k]
		for i := 0; i < cornerSegments; i++ {
			segs = append(segs, Segment{
				Vec2{c.X + math32.Cos(angle)*outer, c.Y + math32.Sin(angle)*outer},
				Vec2{c.X + math32.Cos(angle+step)*outer, c.Y + math32.Sin(angle+step)*outer},
			})
			angle += step
		}
	}

	t := float32(outlineThickness)
	segs = append(segs,
		Segment{Vec2{r.X + radius, r.Y - t}, Vec2{right - radius, r.Y - t}},
		Segment{Vec2{right + t, r.Y + radius}, Vec2{right + t, bottom - radius}},
		Segment{Vec2{right - radius, bottom + t}, Vec2{r.X + radius, bottom + t}},
		Segment{Vec2{r.X - t, bottom - radius}, Vec2{r.X - t, r.Y + radius}},
	)
	return segs
}

// Polar returns the offset at distance r and angle theta from the origin.
func Polar(r, theta float32) Vec2 {
	return Vec2{r * math32.Cos(theta), r * math32.Sin(theta)}
}
