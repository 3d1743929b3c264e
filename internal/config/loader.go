package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Loader handles loading the configuration.
type Loader struct {
	Version      string // Build version, used to determine dev mode
	OverridePath string // Set at compile time if needed
}

// NewLoader creates a new Loader.
func NewLoader(version string, overridePath string) *Loader {
	return &Loader{
		Version:      version,
		OverridePath: overridePath,
	}
}

// Load attempts to load the configuration.
func (l *Loader) Load() (*Config, error) {
	path := l.GetConfigPath()
	if path == "" {
		return New(), nil // No config file found, return defaults
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cfg, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// SavePath returns where the configuration should be written: the file that
// would be loaded, or the default location under the user's config dir.
func (l *Loader) SavePath() (string, error) {
	if path := l.GetConfigPath(); path != "" {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home dir: %w", err)
	}
	return filepath.Join(home, ".config", "paintit", "config.rc"), nil
}

// GetConfigPath returns the first existing candidate file, or "" when
// none exists.
func (l *Loader) GetConfigPath() string {
	for _, path := range l.candidates() {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// candidates lists the config files in search order: the override path,
// ./.paintitrc for dev builds, then config.rc and paintit.rc under
// ~/.config/paintit.
func (l *Loader) candidates() []string {
	var paths []string
	if l.OverridePath != "" {
		paths = append(paths, l.OverridePath)
	}
	if l.Version == "dev" {
		if wd, err := os.Getwd(); err == nil {
			paths = append(paths, filepath.Join(wd, ".paintitrc"))
		}
	}
	if home, err := os.UserHomeDir(); err == nil {
		dir := filepath.Join(home, ".config", "paintit")
		paths = append(paths, filepath.Join(dir, "config.rc"), filepath.Join(dir, "paintit.rc"))
	}
	return paths
}
