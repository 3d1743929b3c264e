package tools

import (
	"image"
	"image/color"
	"math/rand/v2"

	"github.com/chewxy/math32"

	"github.com/example/paintit/internal/geom"
	"github.com/example/paintit/internal/overlay"
	"github.com/example/paintit/internal/raster"
)

// SprayState emits one random pixel per frame around the pointer while the
// button is held, so density grows with hold time.
type SprayState struct {
	anchor sample
	radius float32
	color  color.RGBA
	rng    *rand.Rand
}

// NewSpray returns a spray whose randomness comes from rng. A nil rng uses a
// randomly seeded source.
func NewSpray(rng *rand.Rand) *SprayState {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &SprayState{rng: rng}
}

func (t *SprayState) UpdatePressed(in Input) {
	t.anchor = sampled(in.CanvasPointer())
	t.radius = in.Settings.SpraySize.Radius()
	t.color = in.foreground()
}

func (t *SprayState) UpdateUnpressed(Input) { t.anchor = sample{} }

func (t *SprayState) Draw(canvas *image.RGBA) bool {
	if !t.anchor.ok {
		return false
	}
	p := t.next().Pt()
	raster.Set(canvas, p.X, p.Y, t.color)
	return true
}

// next picks a point at a uniform angle and a uniform distance in
// [0, radius) from the anchor.
func (t *SprayState) next() geom.CanvasPoint {
	theta := t.rng.Float32() * 2 * math32.Pi
	r := t.rng.Float32() * t.radius
	return t.anchor.p.Translate(geom.Polar(r, theta))
}

func (t *SprayState) UpdateAfterDraw(Input)            {}
func (t *SprayState) DrawState(Input, overlay.Surface) {}
