package theme

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseKeepsDefaultsForMissingKeys(t *testing.T) {
	th, err := Parse(strings.NewReader("Name: Mine\nBackground: #102030\nCanvasShadow: #00000080\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if th.Name != "Mine" {
		t.Errorf("Name = %q", th.Name)
	}
	if th.Background != (color.RGBA{0x10, 0x20, 0x30, 255}) {
		t.Errorf("Background = %v", th.Background)
	}
	if th.CanvasShadow.A != 0x80 {
		t.Errorf("CanvasShadow = %v", th.CanvasShadow)
	}
	if th.ButtonBorder != Default().ButtonBorder {
		t.Errorf("ButtonBorder lost its default: %v", th.ButtonBorder)
	}
}

func TestParseRejectsBadColor(t *testing.T) {
	if _, err := Parse(strings.NewReader("Background: red\n")); err == nil {
		t.Fatal("expected error for non-hex colour")
	}
	if _, err := ParseColor("#12345"); err == nil {
		t.Fatal("expected error for short hex")
	}
}

func TestLoaderEmbedded(t *testing.T) {
	l := &Loader{}
	th, err := l.Load("Dark")
	if err != nil {
		t.Fatalf("Load(dark) failed: %v", err)
	}
	if th.Name != "Dark" {
		t.Errorf("Name = %q", th.Name)
	}
	if _, err := l.Load("no-such-theme"); err == nil {
		t.Error("expected error for unknown theme")
	}
	names := l.Names()
	if len(names) < 2 || names[0] != "dark" || names[1] != "default" {
		t.Errorf("Names() = %v", names)
	}
}

func TestLoaderConfigDirAndPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sunset.theme")
	if err := os.WriteFile(path, []byte("Name: Sunset\nBackground: #FF8800\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	l := &Loader{ConfigDir: dir}
	for _, name := range []string{"sunset", path} {
		th, err := l.Load(name)
		if err != nil {
			t.Fatalf("Load(%q) failed: %v", name, err)
		}
		if th.Name != "Sunset" {
			t.Errorf("Load(%q).Name = %q", name, th.Name)
		}
	}
}

func TestResolvePrecedence(t *testing.T) {
	l := &Loader{}
	inline := map[string]*Theme{"mine": {Name: "mine"}}

	t.Setenv(EnvVar, "")
	if th, _ := l.Resolve("", "mine", inline); th.Name != "mine" {
		t.Errorf("config theme not used: %q", th.Name)
	}
	t.Setenv(EnvVar, "dark")
	if th, _ := l.Resolve("", "mine", inline); th.Name != "Dark" {
		t.Errorf("env theme not used: %q", th.Name)
	}
	if th, _ := l.Resolve("default", "mine", inline); th.Name != "Default" {
		t.Errorf("flag theme not used: %q", th.Name)
	}
	th, err := l.Resolve("missing", "", nil)
	if err == nil || th.Name != "Default" {
		t.Errorf("unknown theme should fall back with an error, got %q, %v", th.Name, err)
	}
}

func TestParseColorForms(t *testing.T) {
	cases := map[string]color.RGBA{
		"#abc":      {0xAA, 0xBB, 0xCC, 255},
		"#102030":   {0x10, 0x20, 0x30, 255},
		"#10203040": {0x10, 0x20, 0x30, 0x40},
	}
	for in, want := range cases {
		got, err := ParseColor(in)
		if err != nil {
			t.Fatalf("ParseColor(%q): %v", in, err)
		}
		if got != want {
			t.Errorf("ParseColor(%q) = %v, want %v", in, got, want)
		}
		if back, _ := ParseColor(Hex(got)); back != got {
			t.Errorf("Hex(%v) = %q does not parse back", got, Hex(got))
		}
	}
	if _, err := ParseColor("#zzzzzz"); err == nil {
		t.Error("expected error for non-hex digits")
	}
}

func TestSetAndFields(t *testing.T) {
	th := Default()
	if err := th.Set("statustext", "#FF0000"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if th.StatusText != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("StatusText = %v", th.StatusText)
	}
	if err := th.Set("NoSuchField", "#000000"); err != nil {
		t.Errorf("unknown key should be ignored, got %v", err)
	}
	fields := th.Fields()
	if len(fields) != 16 || fields[0].Name != "Background" {
		t.Fatalf("Fields() = %d fields starting with %q", len(fields), fields[0].Name)
	}
	*fields[0].Color = color.RGBA{1, 2, 3, 4}
	if th.Background != (color.RGBA{1, 2, 3, 4}) {
		t.Errorf("write through Field.Color not visible: %v", th.Background)
	}
}

func TestParseReportsLine(t *testing.T) {
	_, err := Parse(strings.NewReader("Name: X\n\nButtonText: #12\n"))
	if err == nil || !strings.Contains(err.Error(), "line 3") {
		t.Fatalf("err = %v, want line 3", err)
	}
}
