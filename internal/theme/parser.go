package theme

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"image/color"
	"io"
	"reflect"
	"strings"
)

// Parse reads a theme definition. Each line is "Key: #RRGGBB[AA]"; keys are
// matched case-insensitively against the Theme fields and unknown keys are
// ignored. Fields not mentioned keep their Default value.
func Parse(r io.Reader) (*Theme, error) {
	t := Default()
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "//") || (strings.HasPrefix(line, "#") && !strings.Contains(line, ":")) {
			continue
		}
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		if err := t.Set(strings.TrimSpace(key), strings.TrimSpace(value)); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	return t, scanner.Err()
}

// Field is one colour of a theme, addressed by its Go field name.
type Field struct {
	Name  string
	Color *color.RGBA
}

var rgbaType = reflect.TypeOf(color.RGBA{})

// Fields lists the colour fields of t in declaration order. Writes through
// Field.Color change t.
func (t *Theme) Fields() []Field {
	val := reflect.ValueOf(t).Elem()
	typ := val.Type()
	var fields []Field
	for i := 0; i < typ.NumField(); i++ {
		if typ.Field(i).Type != rgbaType {
			continue
		}
		fields = append(fields, Field{typ.Field(i).Name, val.Field(i).Addr().Interface().(*color.RGBA)})
	}
	return fields
}

// Set assigns the field named key. "Name" sets the theme name, colour keys
// take a hex colour, anything else is ignored.
func (t *Theme) Set(key, value string) error {
	if strings.EqualFold(key, "name") {
		t.Name = value
		return nil
	}
	for _, f := range t.Fields() {
		if !strings.EqualFold(f.Name, key) {
			continue
		}
		col, err := ParseColor(value)
		if err != nil {
			return fmt.Errorf("invalid color for key %s: %w", key, err)
		}
		*f.Color = col
		return nil
	}
	return nil
}

// ParseColor parses #RGB, #RRGGBB or #RRGGBBAA.
func ParseColor(s string) (color.RGBA, error) {
	digits, ok := strings.CutPrefix(s, "#")
	if !ok {
		return color.RGBA{}, fmt.Errorf("color %q must start with #", s)
	}
	if len(digits) == 3 {
		digits = string([]byte{digits[0], digits[0], digits[1], digits[1], digits[2], digits[2]})
	}
	if len(digits) != 6 && len(digits) != 8 {
		return color.RGBA{}, fmt.Errorf("color %q: want 3, 6 or 8 hex digits", s)
	}
	b, err := hex.DecodeString(digits)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	c := color.RGBA{R: b[0], G: b[1], B: b[2], A: 255}
	if len(b) == 4 {
		c.A = b[3]
	}
	return c, nil
}

// Hex formats c the way ParseColor reads it, dropping an opaque alpha.
func Hex(c color.RGBA) string {
	if c.A == 255 {
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}
