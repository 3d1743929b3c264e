package raster

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	black = color.RGBA{A: 255}
	red   = color.RGBA{R: 255, A: 255}
	white = color.RGBA{255, 255, 255, 255}
)

func TestBresenhamIsContinuous(t *testing.T) {
	cases := []struct{ p0, p1 image.Point }{
		{image.Pt(0, 0), image.Pt(10, 3)},
		{image.Pt(10, 3), image.Pt(0, 0)},
		{image.Pt(5, 5), image.Pt(5, 20)},
		{image.Pt(-4, 7), image.Pt(9, -12)},
		{image.Pt(3, 3), image.Pt(3, 3)},
	}
	for _, c := range cases {
		var pts []image.Point
		Bresenham(c.p0, c.p1, func(p image.Point) { pts = append(pts, p) })
		require.NotEmpty(t, pts)
		assert.Equal(t, c.p0, pts[0])
		assert.Equal(t, c.p1, pts[len(pts)-1])
		for i := 1; i < len(pts); i++ {
			d := pts[i].Sub(pts[i-1])
			assert.LessOrEqual(t, abs(d.X), 1, "%v -> %v", pts[i-1], pts[i])
			assert.LessOrEqual(t, abs(d.Y), 1, "%v -> %v", pts[i-1], pts[i])
		}
	}
}

func TestSetIgnoresOutOfBounds(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	assert.NotPanics(t, func() {
		Set(img, -1, 0, black)
		Set(img, 4, 4, black)
		Line(img, image.Pt(-10, -10), image.Pt(20, 20), black)
		FillCircle(img, image.Pt(0, 0), 6, black)
	})
	assert.Equal(t, black, img.RGBAAt(3, 3))
}

func TestSquareStampCorner(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 20, 20))
	SquareStamp(8, black)(img, image.Pt(10, 10))
	assert.Equal(t, black, img.RGBAAt(6, 6))
	assert.Equal(t, black, img.RGBAAt(13, 13))
	assert.Equal(t, color.RGBA{}, img.RGBAAt(14, 14))
	assert.Equal(t, color.RGBA{}, img.RGBAAt(5, 6))
}

func TestRectOutlineBoundsAndOrder(t *testing.T) {
	a := image.NewRGBA(image.Rect(0, 0, 64, 64))
	b := image.NewRGBA(image.Rect(0, 0, 64, 64))
	RectOutline(a, image.Pt(10, 10), image.Pt(50, 40), black)
	RectOutline(b, image.Pt(50, 40), image.Pt(10, 10), black)
	assert.Equal(t, a.Pix, b.Pix)

	set := image.Rectangle{}
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			if a.RGBAAt(x, y) == black {
				set = set.Union(image.Rect(x, y, x+1, y+1))
			}
		}
	}
	assert.Equal(t, image.Rect(10, 10, 51, 41), set)
	assert.Equal(t, color.RGBA{}, a.RGBAAt(30, 25), "interior untouched")
}

func TestFloodFillStopsAtBorder(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 30, 30))
	FillRect(img, img.Bounds(), white)
	RectOutline(img, image.Pt(5, 5), image.Pt(20, 20), black)

	n := FloodFill(img, image.Pt(10, 10), red)
	assert.Equal(t, 14*14, n)
	assert.Equal(t, red, img.RGBAAt(6, 6))
	assert.Equal(t, red, img.RGBAAt(19, 19))
	assert.Equal(t, black, img.RGBAAt(5, 10))
	assert.Equal(t, white, img.RGBAAt(2, 2))
}

func TestFloodFillIgnoresDiagonalGaps(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 5, 5))
	FillRect(img, img.Bounds(), white)
	for x := 0; x < 5; x++ {
		img.SetRGBA(x, 4-x, black)
	}

	n := FloodFill(img, image.Pt(0, 0), red)
	assert.Equal(t, 10, n)
	assert.Equal(t, red, img.RGBAAt(3, 0))
	assert.Equal(t, red, img.RGBAAt(0, 3))
	assert.Equal(t, black, img.RGBAAt(1, 3))
	assert.Equal(t, white, img.RGBAAt(4, 4))
	assert.Equal(t, white, img.RGBAAt(2, 3), "no leak through the diagonal")
}

func TestFloodFillSameColourIsNoop(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	FillRect(img, img.Bounds(), red)
	before := append([]uint8(nil), img.Pix...)
	FloodFill(img, image.Pt(3, 3), red)
	assert.Equal(t, before, img.Pix)
}

func TestFloodFillOutsideSeed(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	assert.Zero(t, FloodFill(img, image.Pt(8, 0), red))
}

func TestCaptureAndBlitRoundTrip(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	for i := range img.Pix {
		img.Pix[i] = uint8(i)
	}
	r := image.Rect(3, 4, 11, 9)
	region := Capture(img, r)
	require.Equal(t, image.Rect(0, 0, 8, 5), region.Bounds())
	assert.Equal(t, img.RGBAAt(3, 4), region.RGBAAt(0, 0))
	assert.Equal(t, img.RGBAAt(10, 8), region.RGBAAt(7, 4))

	before := append([]uint8(nil), img.Pix...)
	FillRect(img, r, white)
	Blit(img, region, r.Min, PasteOpaque)
	assert.Equal(t, before, img.Pix)
}

func TestCaptureClipsToImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	assert.Equal(t, image.Rect(0, 0, 2, 2), Capture(img, image.Rect(2, 2, 10, 10)).Bounds())
	assert.True(t, Capture(img, image.Rect(5, 5, 10, 10)).Bounds().Empty())
}
