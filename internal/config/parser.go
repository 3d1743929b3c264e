package config

import (
	"bufio"
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/example/paintit/internal/theme"
	"github.com/example/paintit/internal/tools"
)

// Parse reads configuration from an io.Reader.
func Parse(r io.Reader) (*Config, error) {
	cfg := New()
	scanner := bufio.NewScanner(r)

	var currentSection string
	var currentTheme *theme.Theme
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			currentSection = strings.ToLower(strings.TrimSuffix(strings.TrimPrefix(line, "["), "]"))
			currentTheme = nil

			if strings.HasPrefix(currentSection, "theme.") {
				themeName := strings.TrimPrefix(currentSection, "theme.")
				// Start with defaults so missing keys are fine
				currentTheme = theme.Default()
				currentTheme.Name = themeName
				cfg.Themes[themeName] = currentTheme
			}
			continue
		}

		key, value, ok := splitKeyValue(line)
		if !ok {
			continue
		}

		var err error
		switch {
		case currentTheme != nil:
			err = currentTheme.Set(key, value)
		case currentSection == "":
			err = setRootField(cfg, key, value)
		case currentSection == "canvas":
			err = setCanvasField(&cfg.Canvas, key, value)
		case currentSection == "colors":
			err = setColorsField(&cfg.Colors, key, value)
		case currentSection == "tools":
			err = setToolsField(&cfg.Tools, key, value)
		}
		if err != nil {
			section := currentSection
			if section == "" {
				section = "root"
			}
			return nil, fmt.Errorf("line %d [%s]: %w", lineNo, section, err)
		}
	}

	return cfg, scanner.Err()
}

// splitKeyValue accepts "key = value" and "key: value". Quotes around the
// value are removed.
func splitKeyValue(line string) (key, value string, ok bool) {
	var parts []string
	if strings.Contains(line, "=") {
		parts = strings.SplitN(line, "=", 2)
	} else if strings.Contains(line, ":") {
		parts = strings.SplitN(line, ":", 2)
	} else {
		return "", "", false
	}
	key = strings.ToLower(strings.TrimSpace(parts[0]))
	value = strings.TrimSpace(parts[1])
	if len(value) >= 2 && strings.HasPrefix(value, "\"") && strings.HasSuffix(value, "\"") {
		value = value[1 : len(value)-1]
	}
	return key, value, true
}

func setRootField(cfg *Config, key, value string) error {
	switch key {
	case "theme":
		cfg.Theme = value
	case "backend":
		v := strings.ToLower(value)
		if v != BackendShiny && v != BackendEbiten {
			return fmt.Errorf("unknown backend %q", value)
		}
		cfg.Backend = v
	case "fps":
		n, err := positive(key, value)
		if err != nil {
			return err
		}
		cfg.FPS = n
	}
	return nil
}

func setCanvasField(c *Canvas, key, value string) error {
	var err error
	switch key {
	case "width":
		c.Width, err = positive(key, value)
	case "height":
		c.Height, err = positive(key, value)
	case "origin_x":
		c.OriginX, err = strconv.Atoi(value)
	case "origin_y":
		c.OriginY, err = strconv.Atoi(value)
	case "fill":
		c.Fill, err = ParseColor(value)
	}
	if err != nil {
		return fmt.Errorf("invalid value for key %s: %w", key, err)
	}
	return nil
}

func setColorsField(c *Colors, key, value string) error {
	var err error
	switch key {
	case "foreground":
		c.Foreground, err = ParseColor(value)
	case "background":
		c.Background, err = ParseColor(value)
	}
	if err != nil {
		return fmt.Errorf("invalid color for key %s: %w", key, err)
	}
	return nil
}

func setToolsField(t *Tools, key, value string) error {
	var err error
	switch key {
	case "brush_size":
		t.BrushSize, err = step(key, value, 3)
	case "spray_size":
		t.SpraySize, err = step(key, value, 3)
	case "eraser_size":
		t.EraserSize, err = step(key, value, 4)
	case "brush_shape":
		t.BrushShape, err = tools.ParseBrushShape(value)
		if err == nil && !t.BrushShape.Implemented() {
			t.BrushShape = tools.BrushCircle
			err = fmt.Errorf("brush shape %q is not implemented", value)
		}
	case "start_tool":
		t.StartTool, err = tools.ParseKind(value)
		t.HasStart = err == nil
	}
	return err
}

func positive(key, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %d", key, n)
	}
	return n, nil
}

func step(key, value string, max int) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid value for key %s: %w", key, err)
	}
	if n < 1 || n > max {
		return 0, fmt.Errorf("%s must be between 1 and %d, got %d", key, max, n)
	}
	return n, nil
}

// ParseColor accepts #RRGGBB, #RRGGBBAA, "transparent" or an SVG colour
// name such as "red" or "cornflowerblue".
func ParseColor(s string) (color.RGBA, error) {
	if strings.HasPrefix(s, "#") {
		return theme.ParseColor(s)
	}
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "transparent" {
		return color.RGBA{}, nil
	}
	if c, ok := colornames.Map[name]; ok {
		return c, nil
	}
	return color.RGBA{}, fmt.Errorf("unknown color %q", s)
}
