package tools

import (
	"image"
	"image/color"

	"github.com/example/paintit/internal/overlay"
	"github.com/example/paintit/internal/raster"
)

// BucketState flood fills the region under the pointer.
type BucketState struct {
	seed  sample
	color color.RGBA
}

func (t *BucketState) UpdatePressed(in Input) {
	t.seed = sampled(in.CanvasPointer())
	t.color = in.foreground()
}

func (t *BucketState) UpdateUnpressed(Input) { t.seed = sample{} }

func (t *BucketState) Draw(canvas *image.RGBA) bool {
	if !t.seed.ok {
		return false
	}
	n := raster.FloodFill(canvas, t.seed.pt(), t.color)
	Logger().Debug("bucket fill", "seed", t.seed.pt(), "pixels", n)
	return n > 0
}

func (t *BucketState) UpdateAfterDraw(Input)            {}
func (t *BucketState) DrawState(Input, overlay.Surface) {}

// PickerState samples the canvas colour under the pointer. It never
// modifies the canvas; the frame driver reads the sample through Color.
type PickerState struct {
	at    sample
	color color.RGBA
	// fresh is set by a Draw that sampled and cleared by the next update.
	fresh bool
}

func (t *PickerState) UpdatePressed(in Input) {
	t.at = sampled(in.CanvasPointer())
	t.fresh = false
}

func (t *PickerState) UpdateUnpressed(Input) {
	t.at = sample{}
	t.fresh = false
}

func (t *PickerState) Draw(canvas *image.RGBA) bool {
	if !t.at.ok {
		return false
	}
	if c, ok := raster.At(canvas, t.at.pt()); ok {
		t.color = c
		t.fresh = true
	}
	return false
}

// Color returns the colour sampled by this frame's Draw. Frames without a
// sample report false so the foreground can change by other means.
func (t *PickerState) Color() (color.RGBA, bool) { return t.color, t.fresh }

func (t *PickerState) UpdateAfterDraw(Input)            {}
func (t *PickerState) DrawState(Input, overlay.Surface) {}
