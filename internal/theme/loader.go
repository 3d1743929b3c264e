package theme

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// EnvVar names the environment variable consulted when no theme flag is set.
const EnvVar = "PAINTIT_THEME"

// Loader handles loading themes from various sources.
type Loader struct {
	ConfigDir string
	SystemDir string
}

// NewLoader creates a new Loader with standard paths.
func NewLoader() *Loader {
	home, _ := os.UserHomeDir()
	return &Loader{
		ConfigDir: filepath.Join(home, ".config", "paintit", "themes"),
		SystemDir: "/usr/share/paintit/themes",
	}
}

// Load attempts to load a theme by name or path.
// Order:
// 1. If it's a file path that exists, load it.
// 2. Check embedded themes.
// 3. Check ConfigDir.
// 4. Check SystemDir.
func (l *Loader) Load(name string) (*Theme, error) {
	if name == "" {
		return Default(), nil
	}
	if _, err := os.Stat(name); err == nil {
		return parseFile(os.DirFS(filepath.Dir(name)), filepath.Base(name))
	}

	filename := strings.ToLower(name)
	if !strings.HasSuffix(filename, ".theme") {
		filename += ".theme"
	}
	if t, err := parseFile(EmbeddedThemes, "defaults/"+filename); err == nil {
		return t, nil
	}
	for _, dir := range []string{l.ConfigDir, l.SystemDir} {
		if dir == "" {
			continue
		}
		if _, err := os.Stat(filepath.Join(dir, filename)); err == nil {
			return parseFile(os.DirFS(dir), filename)
		}
	}
	return nil, fmt.Errorf("theme '%s' not found", name)
}

// Names lists the embedded themes and those found in the theme directories.
func (l *Loader) Names() []string {
	seen := map[string]bool{}
	collect := func(fsys fs.FS, dir string) {
		matches, _ := fs.Glob(fsys, filepath.ToSlash(filepath.Join(dir, "*.theme")))
		for _, m := range matches {
			seen[strings.TrimSuffix(filepath.Base(m), ".theme")] = true
		}
	}
	collect(EmbeddedThemes, "defaults")
	for _, dir := range []string{l.ConfigDir, l.SystemDir} {
		if dir != "" {
			collect(os.DirFS(dir), ".")
		}
	}
	names := make([]string, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Resolve picks the theme for a session. The first non-empty of flag, the
// PAINTIT_THEME environment variable and configured wins. Inline themes from
// the configuration shadow loadable ones. An unknown name falls back to
// Default and returns the lookup error alongside it.
func (l *Loader) Resolve(flag, configured string, inline map[string]*Theme) (*Theme, error) {
	name := flag
	if name == "" {
		name = os.Getenv(EnvVar)
	}
	if name == "" {
		name = configured
	}
	if t, ok := inline[name]; ok {
		return t, nil
	}
	t, err := l.Load(name)
	if err != nil {
		return Default(), err
	}
	return t, nil
}

func parseFile(fsys fs.FS, name string) (*Theme, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}
