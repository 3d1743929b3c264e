package raster

import (
	"image"
	"image/color"
)

// FloodFill repaints the 4-connected region of pixels around seed that share
// the seed's colour. The region is collected first and painted in one pass,
// so the result does not depend on traversal order. It returns the number of
// pixels repainted; a seed outside img repaints nothing.
func FloodFill(img *image.RGBA, seed image.Point, col color.RGBA) int {
	b := img.Bounds()
	target, ok := At(img, seed)
	if !ok {
		return 0
	}

	w := b.Dx()
	index := func(p image.Point) int { return (p.Y-b.Min.Y)*w + (p.X - b.Min.X) }
	visited := make([]bool, w*b.Dy())
	var region []image.Point

	stack := []image.Point{seed}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		i := index(p)
		if visited[i] {
			continue
		}
		visited[i] = true
		if img.RGBAAt(p.X, p.Y) != target {
			continue
		}
		region = append(region, p)
		for _, n := range [4]image.Point{
			{p.X, p.Y - 1},
			{p.X + 1, p.Y},
			{p.X, p.Y + 1},
			{p.X - 1, p.Y},
		} {
			if n.In(b) && !visited[index(n)] {
				stack = append(stack, n)
			}
		}
	}

	for _, p := range region {
		img.SetRGBA(p.X, p.Y, col)
	}
	return len(region)
}
