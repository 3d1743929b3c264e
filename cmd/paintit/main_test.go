package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/example/paintit/internal/config"
	"github.com/example/paintit/internal/tools"
)

func newTestRoot(t *testing.T) (*root, *bytes.Buffer) {
	t.Helper()
	t.Setenv("PAINTIT_THEME", "")
	var out bytes.Buffer
	return newRootWith(config.New(), config.NewLoader("test", ""), &out), &out
}

func TestRootWithoutCommand(t *testing.T) {
	r, _ := newTestRoot(t)
	err := r.Run(nil)
	var uerr *UsageError
	if !errors.As(err, &uerr) {
		t.Fatalf("Run(nil) = %v, want *UsageError", err)
	}
	help := uerr.Error()
	for _, want := range []string{"Usage: paintit", "run", "-theme"} {
		if !strings.Contains(help, want) {
			t.Errorf("help missing %q:\n%s", want, help)
		}
	}
}

func TestUnknownCommand(t *testing.T) {
	r, _ := newTestRoot(t)
	var uerr *UsageError
	if err := r.Run([]string{"paint"}); !errors.As(err, &uerr) {
		t.Fatalf("Run(paint) = %v, want *UsageError", err)
	}
}

func TestToolsCmd(t *testing.T) {
	r, out := newTestRoot(t)
	if err := r.Run([]string{"tools"}); err != nil {
		t.Fatalf("Run: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != int(tools.NumKinds)+1 {
		t.Fatalf("got %d lines, want header + %d:\n%s", len(lines), tools.NumKinds, out)
	}
	if f := strings.Fields(lines[7]); len(f) != 3 || f[0] != "6" || f[1] != "pencil" || f[2] != "ready" {
		t.Errorf("pencil line = %q", lines[7])
	}
	if !strings.Contains(out.String(), "magnifier") {
		t.Errorf("magnifier missing from full list")
	}
}

func TestToolsCmdImplementedOnly(t *testing.T) {
	r, out := newTestRoot(t)
	if err := r.Run([]string{"tools", "-implemented"}); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if strings.Contains(out.String(), "placeholder") {
		t.Errorf("placeholder listed with -implemented:\n%s", out)
	}
	if !strings.Contains(out.String(), "rounded-rectangle") {
		t.Errorf("rounded-rectangle missing:\n%s", out)
	}
}

func TestRunCmdOptions(t *testing.T) {
	r, _ := newTestRoot(t)
	c, err := parseRunCmd([]string{"-tool", "pencil", "-backend", "ebiten", "-fps", "30"}, r)
	if err != nil {
		t.Fatalf("parseRunCmd: %v", err)
	}
	if c.backend != config.BackendEbiten {
		t.Errorf("backend = %q", c.backend)
	}
	opts, err := c.options()
	if err != nil {
		t.Fatalf("options: %v", err)
	}
	if !opts.HasStart || opts.StartTool != tools.Pencil || opts.FPS != 30 {
		t.Errorf("options = %+v", opts)
	}
	if c.Program() != "paintit run" {
		t.Errorf("Program() = %q", c.Program())
	}
}

func TestRunCmdDefaultsFromConfig(t *testing.T) {
	r, _ := newTestRoot(t)
	r.config.Backend = config.BackendEbiten
	r.config.Tools.StartTool = tools.Brush
	r.config.Tools.HasStart = true
	c, err := parseRunCmd(nil, r)
	if err != nil {
		t.Fatalf("parseRunCmd: %v", err)
	}
	opts, err := c.options()
	if err != nil {
		t.Fatalf("options: %v", err)
	}
	if c.backend != config.BackendEbiten || opts.StartTool != tools.Brush {
		t.Errorf("backend %q, start %v", c.backend, opts.StartTool)
	}
}

func TestRunCmdErrors(t *testing.T) {
	r, _ := newTestRoot(t)
	var uerr *UsageError
	if _, err := parseRunCmd([]string{"-backend", "gtk"}, r); !errors.As(err, &uerr) {
		t.Errorf("unknown backend: got %v", err)
	}
	if _, err := parseRunCmd([]string{"-fps", "0"}, r); !errors.As(err, &uerr) {
		t.Errorf("zero fps: got %v", err)
	}
	c, err := parseRunCmd([]string{"-tool", "lasso"}, r)
	if err != nil {
		t.Fatalf("parseRunCmd: %v", err)
	}
	if _, err := c.options(); !errors.Is(err, tools.ErrUnknownKind) {
		t.Errorf("unknown tool: got %v", err)
	}
}

func TestConfigPrint(t *testing.T) {
	r, out := newTestRoot(t)
	if err := r.Run([]string{"config", "print"}); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got, want := out.String(), config.New().String(); got != want {
		t.Errorf("config print:\n%s\nwant:\n%s", got, want)
	}
}

func TestConfigSave(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	r, _ := newTestRoot(t)
	r.config.FPS = 30
	if err := r.Run([]string{"config", "save"}); err != nil {
		t.Fatalf("Run: %v", err)
	}
	path := filepath.Join(home, ".config", "paintit", "config.rc")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read saved config: %v", err)
	}
	cfg, err := config.Parse(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("parse saved config: %v", err)
	}
	if cfg.FPS != 30 {
		t.Errorf("saved fps = %d, want 30", cfg.FPS)
	}
}

func TestConfigUnknownSubcommand(t *testing.T) {
	r, _ := newTestRoot(t)
	var uerr *UsageError
	if err := r.Run([]string{"config", "edit"}); !errors.As(err, &uerr) {
		t.Fatalf("got %v, want *UsageError", err)
	}
	if !strings.Contains(uerr.Error(), "unknown config command: edit") {
		t.Errorf("message: %s", uerr.Error())
	}
}

func TestVersion(t *testing.T) {
	r, out := newTestRoot(t)
	if err := r.Run([]string{"version"}); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.HasPrefix(out.String(), "paintit version "+version) {
		t.Errorf("version output = %q", out.String())
	}
}
