package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the checker configuration read from config.yaml.
type Config struct {
	Source    SourceConfig `yaml:"source"`
	Endpoint  string       `yaml:"endpoint"` // "latest" or "list"
	UI        UIConfig     `yaml:"ui"`
	TimeoutMS int          `yaml:"timeout_ms"`
}

// SourceConfig holds release-source settings.
type SourceConfig struct {
	Default     string `yaml:"default"` // "github" or "gitlab"
	GitHubToken string `yaml:"github_token"`
	GitHubURL   string `yaml:"github_url"` // enterprise base URL
	GitLabToken string `yaml:"gitlab_token"`
	GitLabHost  string `yaml:"gitlab_host"` // self-hosted instance
}

// UIConfig holds presentation settings consumed only by attached presenters.
type UIConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// NewDefault creates a Config with default values.
func NewDefault() *Config {
	return &Config{
		Source:   SourceConfig{Default: "github"},
		Endpoint: "latest",
		UI:       UIConfig{Width: 80, Height: 24},
	}
}

// ConfigPath returns the path to the config file.
func ConfigPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".relwatch", "config.yaml")
}

// Load reads the config file, falling back to defaults when it does not
// exist.
func Load() (*Config, error) {
	return LoadFrom(ConfigPath())
}

// LoadFrom reads a config file from an explicit path.
func LoadFrom(path string) (*Config, error) {
	cfg := NewDefault()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, nil
}
