package tools

import (
	"errors"
	"fmt"
	"strings"
)

// Kind identifies one of the sixteen toolbar tools. The numeric value is the
// toolbar button index.
type Kind int

const (
	FreeFormSelect Kind = iota
	Select
	Eraser
	PaintBucket
	ColorPicker
	Magnifier
	Pencil
	Brush
	Spray
	InsertText
	Line
	Curve
	Rectangle
	Polygon
	Ellipse
	RoundedRectangle
)

// NumKinds is the number of tool kinds.
const NumKinds = 16

// ErrUnknownKind is returned for indices or names outside the tool set.
var ErrUnknownKind = errors.New("unknown tool")

var kindNames = [NumKinds]string{
	"free-form-select",
	"select",
	"eraser",
	"paint-bucket",
	"color-picker",
	"magnifier",
	"pencil",
	"brush",
	"spray",
	"insert-text",
	"line",
	"curve",
	"rectangle",
	"polygon",
	"ellipse",
	"rounded-rectangle",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= NumKinds {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Index returns the toolbar index of k.
func (k Kind) Index() int { return int(k) }

// Implemented reports whether selecting k does anything.
func (k Kind) Implemented() bool {
	switch k {
	case FreeFormSelect, Magnifier, InsertText, Curve:
		return false
	}
	return k >= 0 && int(k) < NumKinds
}

// KindFromIndex maps a toolbar index to its Kind.
func KindFromIndex(i int) (Kind, error) {
	if i < 0 || i >= NumKinds {
		return 0, fmt.Errorf("index %d: %w", i, ErrUnknownKind)
	}
	return Kind(i), nil
}

// ParseKind looks a kind up by name, ignoring case and accepting underscores
// or spaces in place of dashes.
func ParseKind(s string) (Kind, error) {
	n := strings.ToLower(strings.TrimSpace(s))
	n = strings.NewReplacer("_", "-", " ", "-").Replace(n)
	for i, name := range kindNames {
		if name == n {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("%q: %w", s, ErrUnknownKind)
}

// Kinds returns every kind in toolbar order.
func Kinds() []Kind {
	ks := make([]Kind, NumKinds)
	for i := range ks {
		ks[i] = Kind(i)
	}
	return ks
}
