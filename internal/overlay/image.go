package overlay

import (
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/clone"

	"github.com/example/paintit/internal/geom"
	"github.com/example/paintit/internal/raster"
)

// Image is a Surface that draws straight into an RGBA window buffer. It is
// also a TextureLoader whose textures are private copies of the source.
type Image struct {
	Dst *image.RGBA
}

// NewImage wraps dst.
func NewImage(dst *image.RGBA) *Image {
	return &Image{Dst: dst}
}

// RGBATexture is a Texture held in memory.
type RGBATexture struct {
	img *image.RGBA
}

func (t *RGBATexture) Bounds() image.Rectangle { return t.img.Bounds() }

// RGBA exposes the texture pixels.
func (t *RGBATexture) RGBA() *image.RGBA { return t.img }

// LoadTexture copies img so later canvas writes do not leak into the texture.
func (s *Image) LoadTexture(img *image.RGBA) Texture {
	return LoadRGBA(img)
}

// LoadRGBA copies img into a new RGBATexture.
func LoadRGBA(img *image.RGBA) *RGBATexture {
	return &RGBATexture{img: clone.AsRGBA(img)}
}

func (s *Image) Pixel(p geom.WindowPoint, col color.RGBA) {
	q := p.Pt()
	raster.Set(s.Dst, q.X, q.Y, col)
}

func (s *Image) Line(p0, p1 geom.WindowPoint, col color.RGBA) {
	raster.Line(s.Dst, p0.Pt(), p1.Pt(), col)
}

func (s *Image) RectLines(p0, p1 geom.WindowPoint, col color.RGBA) {
	raster.RectOutline(s.Dst, p0.Pt(), p1.Pt(), col)
}

// Texture blends t over the buffer. Textures from other loaders are skipped.
func (s *Image) Texture(t Texture, at geom.WindowPoint) {
	rt, ok := t.(*RGBATexture)
	if !ok {
		return
	}
	raster.Blit(s.Dst, rt.img, at.Pt(), raster.PasteTransparent)
}
