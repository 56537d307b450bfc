// internal/config/settings.go
package config

import (
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings holds the few knobs that may be overridden from a settings.yaml
// next to the binary. Gameplay constants are intentionally not configurable.
type Settings struct {
	// Seed for the game RNG; 0 means seed from the current time.
	Seed int64 `yaml:"seed"`
	// WindowScale multiplies the window size (not the logical resolution).
	WindowScale float64 `yaml:"window_scale"`
}

// DefaultSettings returns the built-in settings values.
func DefaultSettings() Settings {
	return Settings{Seed: 0, WindowScale: 1.0}
}

// LoadSettings reads the YAML settings file at path, falling back to the
// defaults when the file is absent or malformed.
func LoadSettings(path string) Settings {
	s := DefaultSettings()
	data, err := os.ReadFile(path)
	if err != nil {
		return s
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		log.Printf("settings: ignoring %s: %v", path, err)
		return DefaultSettings()
	}
	if s.WindowScale <= 0 {
		s.WindowScale = 1.0
	}
	return s
}
