package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}

	if cfg.Source.Default != "github" {
		t.Errorf("Source.Default = %q, want github", cfg.Source.Default)
	}
	if cfg.Endpoint != "latest" {
		t.Errorf("Endpoint = %q, want latest", cfg.Endpoint)
	}
	if cfg.UI.Width != 80 || cfg.UI.Height != 24 {
		t.Errorf("UI = %+v, want 80x24", cfg.UI)
	}
}

func TestLoadFromParsesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
source:
  default: gitlab
  gitlab_token: secret
  gitlab_host: https://gitlab.example.com
endpoint: list
ui:
  width: 100
  height: 40
timeout_ms: 5000
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}

	if cfg.Source.Default != "gitlab" {
		t.Errorf("Source.Default = %q, want gitlab", cfg.Source.Default)
	}
	if cfg.Source.GitLabToken != "secret" {
		t.Errorf("GitLabToken = %q, want secret", cfg.Source.GitLabToken)
	}
	if cfg.Source.GitLabHost != "https://gitlab.example.com" {
		t.Errorf("GitLabHost = %q", cfg.Source.GitLabHost)
	}
	if cfg.Endpoint != "list" {
		t.Errorf("Endpoint = %q, want list", cfg.Endpoint)
	}
	if cfg.UI.Width != 100 || cfg.UI.Height != 40 {
		t.Errorf("UI = %+v, want 100x40", cfg.UI)
	}
	if cfg.TimeoutMS != 5000 {
		t.Errorf("TimeoutMS = %d, want 5000", cfg.TimeoutMS)
	}
}

func TestLoadFromInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("source: [broken"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFrom(path); err == nil {
		t.Error("LoadFrom() expected error for invalid YAML")
	}
}
