package ui

import (
	"image"

	"github.com/example/paintit/internal/theme"
	"github.com/example/paintit/internal/tools"
)

// Toolbar geometry. The canvas origin of (68, 4) leaves room for exactly
// ToolbarColumns cells plus Margin.
const (
	CellSize       = 32
	ToolbarColumns = 2
	Margin         = 4
	ToolbarWidth   = ToolbarColumns * CellSize
)

// Toolbar is the grid of tool buttons. Button i selects tools.Kind(i).
type Toolbar struct {
	Buttons []*CacheButton
	rect    image.Rectangle

	hover   int
	pressed int
}

// NewToolbar lays out one button per tool kind, two per row, starting at
// origin. onSelect runs when a click is released over the same button it
// started on.
func NewToolbar(th *theme.Theme, origin image.Point, onSelect func(tools.Kind)) *Toolbar {
	tb := &Toolbar{hover: -1, pressed: -1}
	for _, k := range tools.Kinds() {
		b := &CacheButton{Button: &ToolButton{Kind: k, theme: th, onSelect: onSelect}}
		b.SetRect(cellRect(origin, k.Index()))
		tb.Buttons = append(tb.Buttons, b)
	}
	rows := (len(tb.Buttons) + ToolbarColumns - 1) / ToolbarColumns
	tb.rect = image.Rect(origin.X, origin.Y, origin.X+ToolbarWidth, origin.Y+rows*CellSize)
	return tb
}

func cellRect(origin image.Point, i int) image.Rectangle {
	x := origin.X + (i%ToolbarColumns)*CellSize
	y := origin.Y + (i/ToolbarColumns)*CellSize
	return image.Rect(x, y, x+CellSize, y+CellSize)
}

// Rect returns the area covered by the buttons.
func (tb *Toolbar) Rect() image.Rectangle { return tb.rect }

// HitTest returns the kind of the button under p.
func (tb *Toolbar) HitTest(p image.Point) (tools.Kind, bool) {
	for i, b := range tb.Buttons {
		if p.In(b.Rect()) {
			k, err := tools.KindFromIndex(i)
			return k, err == nil
		}
	}
	return 0, false
}

// Hover records the pointer position for hover highlighting.
func (tb *Toolbar) Hover(p image.Point) {
	tb.hover = -1
	if k, ok := tb.HitTest(p); ok {
		tb.hover = k.Index()
	}
}

// Press starts a click at p. It reports whether p is on a button.
func (tb *Toolbar) Press(p image.Point) bool {
	tb.pressed = -1
	k, ok := tb.HitTest(p)
	if ok {
		tb.pressed = k.Index()
	}
	return ok
}

// Release finishes a click and activates the button if the pointer is
// still on the one that was pressed.
func (tb *Toolbar) Release(p image.Point) bool {
	pressed := tb.pressed
	tb.pressed = -1
	k, ok := tb.HitTest(p)
	if !ok || k.Index() != pressed {
		return false
	}
	tb.Buttons[pressed].Activate()
	return true
}

// Draw paints the toolbar. The button of the active tool is drawn pressed.
func (tb *Toolbar) Draw(dst *image.RGBA, active tools.Kind, hasActive bool) {
	for i, b := range tb.Buttons {
		state := StateDefault
		switch {
		case hasActive && i == active.Index(), i == tb.pressed:
			state = StatePressed
		case i == tb.hover:
			state = StateHover
		}
		b.Draw(dst, state)
	}
}
