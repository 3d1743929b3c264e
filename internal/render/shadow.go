// Package render draws decorations of the window chrome.
package render

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// ShadowOptions configures the drop shadow behind the canvas.
type ShadowOptions struct {
	Radius int
	Offset image.Point
	Color  color.RGBA
}

// DefaultShadowOptions returns a small, soft shadow offset to the bottom
// right.
func DefaultShadowOptions() ShadowOptions {
	return ShadowOptions{
		Radius: 4,
		Offset: image.Pt(3, 3),
		Color:  color.RGBA{A: 160},
	}
}

// Shadow is a pre-blurred shadow image and where it goes in the window.
type Shadow struct {
	Image *image.RGBA
	At    image.Point
}

// RectShadow renders the shadow cast by the window-space rectangle r. The
// result only depends on r's size and opts, so callers render it once and
// redraw it every frame.
func RectShadow(r image.Rectangle, opts ShadowOptions) Shadow {
	if r.Empty() || opts.Color.A == 0 {
		return Shadow{}
	}
	radius := opts.Radius
	if radius < 0 {
		radius = 0
	}

	padded := image.Rect(0, 0, r.Dx(), r.Dy()).Inset(-radius)
	mask := image.NewGray(padded.Sub(padded.Min))
	draw.Draw(mask, image.Rect(radius, radius, radius+r.Dx(), radius+r.Dy()), image.NewUniform(color.Gray{Y: 255}), image.Point{}, draw.Src)
	blurred := blurGray(mask, radius)

	img := image.NewRGBA(mask.Bounds())
	draw.DrawMask(img, img.Bounds(), image.NewUniform(opts.Color), image.Point{}, blurred, image.Point{}, draw.Src)

	return Shadow{
		Image: img,
		At:    r.Min.Add(opts.Offset).Sub(image.Pt(radius, radius)),
	}
}

// Draw composites the shadow onto dst.
func (s Shadow) Draw(dst *image.RGBA) {
	if s.Image == nil {
		return
	}
	draw.Draw(dst, s.Image.Bounds().Add(s.At), s.Image, image.Point{}, draw.Over)
}

// blurGray is a separable box blur of the given radius.
func blurGray(src *image.Gray, radius int) *image.Gray {
	if radius <= 0 {
		out := image.NewGray(src.Bounds())
		copy(out.Pix, src.Pix)
		return out
	}
	bounds := src.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()
	tmp := image.NewGray(bounds)
	dst := image.NewGray(bounds)

	boxPass(w, h, radius,
		func(line, i int) int { return int(src.Pix[line*src.Stride+i]) },
		func(line, i int, v uint8) { tmp.Pix[line*tmp.Stride+i] = v })
	boxPass(h, w, radius,
		func(line, i int) int { return int(tmp.Pix[i*tmp.Stride+line]) },
		func(line, i int, v uint8) { dst.Pix[i*dst.Stride+line] = v })
	return dst
}

// boxPass averages every run of 2*radius+1 samples along each of lines
// lines of length n, clamping the window at both ends.
func boxPass(n, lines, radius int, get func(line, i int) int, set func(line, i int, v uint8)) {
	prefix := make([]int, n+1)
	for line := 0; line < lines; line++ {
		for i := 0; i < n; i++ {
			prefix[i+1] = prefix[i] + get(line, i)
		}
		for i := 0; i < n; i++ {
			lo := max(i-radius, 0)
			hi := min(i+radius, n-1)
			set(line, i, uint8((prefix[hi+1]-prefix[lo])/(hi-lo+1)))
		}
	}
}
