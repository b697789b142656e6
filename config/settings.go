package config

import (
	"encoding/json"
	"fmt"
	"os"

	"chime/paths"
)

// Settings represents the structure of $CHIME_HOME/settings.json
type Settings struct {
	Debug        *bool  `json:"debug,omitempty"`
	DefaultSound string `json:"default_sound,omitempty"`
	MaxLogFiles  *int   `json:"max_log_files,omitempty"`
	Mute         *bool  `json:"mute,omitempty"`
}

// LoadSettings loads settings from $CHIME_HOME/settings.json
// Returns empty Settings if file doesn't exist (not an error)
func LoadSettings() (*Settings, error) {
	path := paths.GetSettingsPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil // Not an error, use defaults
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	return &settings, nil
}

// Muted reports whether sound playback is disabled in settings.
func (s *Settings) Muted() bool {
	return s != nil && s.Mute != nil && *s.Mute
}
