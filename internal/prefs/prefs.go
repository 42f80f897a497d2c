// Package prefs persists user preferences to a TOML file. Domain records
// never end up here, only presentation settings and the last signed-in user.
package prefs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Settings are the persisted preferences.
type Settings struct {
	DarkMode   bool   `toml:"dark_mode"`
	ActiveView string `toml:"active_view"`
	UserID     string `toml:"user_id,omitempty"`
}

// DefaultSettings returns the preferences used before anything was saved.
func DefaultSettings() Settings {
	return Settings{
		ActiveView: "dashboard",
	}
}

// Path returns the preferences file location, from PREFS_FILE or the default.
func Path() string {
	if path := os.Getenv("PREFS_FILE"); path != "" {
		return path
	}
	return filepath.Join("data", "prefs.toml")
}

// Load reads the preferences file, returning defaults if it doesn't exist.
func Load(path string) (Settings, error) {
	settings := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return settings, fmt.Errorf("reading preferences: %w", err)
	}

	if err := toml.Unmarshal(data, &settings); err != nil {
		return settings, fmt.Errorf("parsing preferences: %w", err)
	}

	return settings, nil
}

// Save writes the preferences to disk, creating the directory if needed.
func Save(path string, settings Settings) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating preferences dir: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating preferences file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(settings); err != nil {
		return fmt.Errorf("writing preferences: %w", err)
	}

	return nil
}
