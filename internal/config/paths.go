// Package config resolves and prepares the directories pal works in.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths holds the directories used across a run.
type Paths struct {
	// Config is where users drop template files (~/.config/pal).
	Config string

	// TemplateCache is where rendered templates land (~/.cache/pal/templates).
	TemplateCache string

	// SchemeCache is where cached colorscheme records live (~/.cache/pal/schemes).
	SchemeCache string
}

// Resolve determines the standard config and cache directories,
// following the platform conventions with a dotdir fallback when they
// cannot be determined.
func Resolve() (Paths, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return Paths{}, fmt.Errorf("failed to determine config directory: %w", err)
		}
		configDir = filepath.Join(home, ".config")
	}

	cacheDir, err := os.UserCacheDir()
	if err != nil {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return Paths{}, fmt.Errorf("failed to determine cache directory: %w", err)
		}
		cacheDir = filepath.Join(home, ".cache")
	}

	return Paths{
		Config:        filepath.Join(configDir, "pal"),
		TemplateCache: filepath.Join(cacheDir, "pal", "templates"),
		SchemeCache:   filepath.Join(cacheDir, "pal", "schemes"),
	}, nil
}

// Ensure creates all directories that do not exist yet.
func (p Paths) Ensure() error {
	for _, dir := range []string{p.Config, p.TemplateCache, p.SchemeCache} {
		if err := os.MkdirAll(dir, 0o755); err != nil { // #nosec G301 - standard permissions for user dirs
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}
