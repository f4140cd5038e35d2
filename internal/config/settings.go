package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// Settings holds state that persists between runs
type Settings struct {
	// When the last update check completed (success or failure)
	LastCheck time.Time `json:"last_check,omitempty"`

	// Last repository checked, as "owner/repo"
	LastRepo string `json:"last_repo,omitempty"`
}

// SettingsPath returns the path to the settings file
func SettingsPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".relwatch", "settings.json")
}

// LoadSettings reads settings from disk
func LoadSettings() (*Settings, error) {
	path := SettingsPath()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil // Return empty settings if file doesn't exist
		}
		return nil, err
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, err
	}

	return &settings, nil
}

// Save writes settings to disk
func (s *Settings) Save() error {
	path := SettingsPath()

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}
