package ebitenwin

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/example/paintit/internal/geom"
	"github.com/example/paintit/internal/overlay"
)

// texture is a preview image living on the GPU.
type texture struct {
	img    *ebiten.Image
	bounds image.Rectangle
}

func (t *texture) Bounds() image.Rectangle { return t.bounds }

type textureLoader struct{}

var _ overlay.TextureLoader = textureLoader{}

func (textureLoader) LoadTexture(img *image.RGBA) overlay.Texture {
	b := img.Bounds()
	return &texture{img: ebiten.NewImageFromImage(img), bounds: image.Rectangle{Max: b.Size()}}
}

// surface draws tool previews straight onto the screen image.
type surface struct {
	dst *ebiten.Image
}

var _ overlay.Surface = (*surface)(nil)

func (s *surface) Pixel(p geom.WindowPoint, col color.RGBA) {
	q := p.Pt()
	s.dst.Set(q.X, q.Y, col)
}

// Line strokes through pixel centres so one pixel wide lines stay sharp.
func (s *surface) Line(p0, p1 geom.WindowPoint, col color.RGBA) {
	a, b := p0.Pt(), p1.Pt()
	vector.StrokeLine(s.dst, float32(a.X)+0.5, float32(a.Y)+0.5, float32(b.X)+0.5, float32(b.Y)+0.5, 1, col, false)
}

func (s *surface) RectLines(p0, p1 geom.WindowPoint, col color.RGBA) {
	r := image.Rectangle{Min: p0.Pt(), Max: p1.Pt()}.Canon()
	vector.StrokeRect(s.dst, float32(r.Min.X)+0.5, float32(r.Min.Y)+0.5, float32(r.Dx()), float32(r.Dy()), 1, col, false)
}

func (s *surface) Texture(t overlay.Texture, at geom.WindowPoint) {
	tex, ok := t.(*texture)
	if !ok {
		return
	}
	q := at.Pt()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(q.X), float64(q.Y))
	s.dst.DrawImage(tex.img, op)
}
