package config

import (
	"fmt"
	"image/color"
	"sort"
	"strings"

	"github.com/example/paintit/internal/frame"
	"github.com/example/paintit/internal/geom"
	"github.com/example/paintit/internal/theme"
	"github.com/example/paintit/internal/tools"
)

// Backends accepted by the backend key.
const (
	BackendShiny  = "shiny"
	BackendEbiten = "ebiten"
)

// Canvas holds the [canvas] section.
type Canvas struct {
	Width   int
	Height  int
	OriginX int
	OriginY int
	Fill    color.RGBA
}

// Colors holds the [colors] section.
type Colors struct {
	Foreground color.RGBA
	Background color.RGBA
}

// Tools holds the [tools] section. Sizes are the 1-based steps shown in the
// UI.
type Tools struct {
	BrushSize  int
	BrushShape tools.BrushShape
	SpraySize  int
	EraserSize int
	StartTool  tools.Kind
	HasStart   bool
}

// Config holds the application configuration.
type Config struct {
	Theme   string
	Backend string
	FPS     int
	Canvas  Canvas
	Colors  Colors
	Tools   Tools
	Themes  map[string]*theme.Theme
}

// New creates a new Config with defaults.
func New() *Config {
	d := frame.DefaultConfig()
	return &Config{
		Theme:   "", // Default to empty to allow fallback to Env/Default
		Backend: BackendShiny,
		FPS:     60,
		Canvas: Canvas{
			Width:   d.Width,
			Height:  d.Height,
			OriginX: int(d.Origin.X),
			OriginY: int(d.Origin.Y),
			Fill:    d.Fill,
		},
		Colors: Colors{
			Foreground: d.Colors[tools.Foreground],
			Background: d.Colors[tools.Background],
		},
		Tools: Tools{
			BrushSize:  int(d.Settings.BrushSize),
			BrushShape: d.Settings.BrushShape,
			SpraySize:  int(d.Settings.SpraySize),
			EraserSize: int(d.Settings.EraserSize),
		},
		Themes: make(map[string]*theme.Theme),
	}
}

// Frame converts the configuration into a frame driver configuration.
func (c *Config) Frame() frame.Config {
	s := tools.DefaultSettings()
	s.BrushSize = tools.BrushSize(c.Tools.BrushSize)
	if c.Tools.BrushShape.Implemented() {
		s.BrushShape = c.Tools.BrushShape
	}
	s.SpraySize = tools.SpraySize(c.Tools.SpraySize)
	s.EraserSize = tools.EraserSize(c.Tools.EraserSize)
	return frame.Config{
		Width:    c.Canvas.Width,
		Height:   c.Canvas.Height,
		Origin:   geom.Window(float32(c.Canvas.OriginX), float32(c.Canvas.OriginY)),
		Fill:     c.Canvas.Fill,
		Colors:   [2]color.RGBA{c.Colors.Foreground, c.Colors.Background},
		Settings: s,
	}
}

// String implements fmt.Stringer and returns the configuration in RC format.
func (c *Config) String() string {
	var sb strings.Builder

	// Root section
	if c.Theme != "" {
		fmt.Fprintf(&sb, "theme = %s\n", c.Theme)
	}
	fmt.Fprintf(&sb, "backend = %s\n", c.Backend)
	fmt.Fprintf(&sb, "fps = %d\n", c.FPS)
	sb.WriteString("\n")

	sb.WriteString("[canvas]\n")
	fmt.Fprintf(&sb, "width = %d\n", c.Canvas.Width)
	fmt.Fprintf(&sb, "height = %d\n", c.Canvas.Height)
	fmt.Fprintf(&sb, "origin_x = %d\n", c.Canvas.OriginX)
	fmt.Fprintf(&sb, "origin_y = %d\n", c.Canvas.OriginY)
	fmt.Fprintf(&sb, "fill = %s\n", theme.Hex(c.Canvas.Fill))
	sb.WriteString("\n")

	sb.WriteString("[colors]\n")
	fmt.Fprintf(&sb, "foreground = %s\n", theme.Hex(c.Colors.Foreground))
	fmt.Fprintf(&sb, "background = %s\n", theme.Hex(c.Colors.Background))
	sb.WriteString("\n")

	sb.WriteString("[tools]\n")
	fmt.Fprintf(&sb, "brush_size = %d\n", c.Tools.BrushSize)
	fmt.Fprintf(&sb, "brush_shape = %s\n", c.Tools.BrushShape)
	fmt.Fprintf(&sb, "spray_size = %d\n", c.Tools.SpraySize)
	fmt.Fprintf(&sb, "eraser_size = %d\n", c.Tools.EraserSize)
	if c.Tools.HasStart {
		fmt.Fprintf(&sb, "start_tool = %s\n", c.Tools.StartTool)
	}
	sb.WriteString("\n")

	// Sort keys for deterministic output
	var themeNames []string
	for name := range c.Themes {
		themeNames = append(themeNames, name)
	}
	sort.Strings(themeNames)

	for _, name := range themeNames {
		fmt.Fprintf(&sb, "[theme.%s]\n", name)
		writeTheme(&sb, c.Themes[name])
		sb.WriteString("\n")
	}

	return sb.String()
}

// writeTheme emits every colour field of t in declaration order.
func writeTheme(sb *strings.Builder, t *theme.Theme) {
	fmt.Fprintf(sb, "Name: %s\n", t.Name)
	for _, f := range t.Fields() {
		fmt.Fprintf(sb, "%s: %s\n", f.Name, theme.Hex(*f.Color))
	}
}
