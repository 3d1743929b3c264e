package tools

import (
	"fmt"
	"image"
	"image/color"
	"math/rand/v2"

	"github.com/example/paintit/internal/overlay"
)

// Placeholder is the state of a tool that has a button but no behaviour
// yet. Every operation is a no-op.
type Placeholder struct {
	Kind Kind
}

func (Placeholder) UpdatePressed(Input)              {}
func (Placeholder) UpdateUnpressed(Input)            {}
func (Placeholder) Draw(*image.RGBA) bool            { return false }
func (Placeholder) UpdateAfterDraw(Input)            {}
func (Placeholder) DrawState(Input, overlay.Surface) {}

// Option configures tool construction.
type Option func(*options)

type options struct {
	rng *rand.Rand
}

// WithRand sets the random source used by the spray.
func WithRand(r *rand.Rand) Option { return func(o *options) { o.rng = r } }

// New returns fresh state for k. Kinds without behaviour get a Placeholder.
func New(k Kind, opts ...Option) (Tool, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	switch k {
	case Select:
		return NewSelect(), nil
	case Eraser:
		return &EraserState{}, nil
	case PaintBucket:
		return &BucketState{}, nil
	case ColorPicker:
		return &PickerState{}, nil
	case Pencil:
		return &PencilState{}, nil
	case Brush:
		return &BrushState{}, nil
	case Spray:
		return NewSpray(o.rng), nil
	case Line:
		return &LineState{}, nil
	case Rectangle:
		return &RectangleState{}, nil
	case Polygon:
		return &PolygonState{}, nil
	case Ellipse:
		return &EllipseState{}, nil
	case RoundedRectangle:
		return &RoundedRectangleState{}, nil
	case FreeFormSelect, Magnifier, InsertText, Curve:
		return Placeholder{Kind: k}, nil
	}
	return nil, fmt.Errorf("new tool %d: %w", int(k), ErrUnknownKind)
}

// Active is the selected tool together with its state.
type Active struct {
	Kind Kind
	Tool Tool
}

// Activate builds fresh state for k.
func Activate(k Kind, opts ...Option) (*Active, error) {
	t, err := New(k, opts...)
	if err != nil {
		return nil, err
	}
	Logger().Debug("tool selected", "tool", k, "implemented", k.Implemented())
	return &Active{Kind: k, Tool: t}, nil
}

// Color reports the sampled colour of colour sampling tools.
func (a *Active) Color() (color.RGBA, bool) {
	if cs, ok := a.Tool.(ColorSource); ok {
		return cs.Color()
	}
	return color.RGBA{}, false
}
