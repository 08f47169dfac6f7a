package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/julianstephens/vitalog/internal/constants"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("a missing config file must not error: %v", err)
	}
	if !strings.HasSuffix(cfg.StoragePath, "vitalog.json") {
		t.Errorf("unexpected default storage path: %q", cfg.StoragePath)
	}
	if cfg.Units != "imperial" {
		t.Errorf("expected imperial default, got %q", cfg.Units)
	}
	if cfg.Fitbit.RedirectURI == "" {
		t.Error("expected a default redirect uri")
	}
}

func TestLoadParsesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
storage_path: /tmp/custom.db
debug: true
units: metric
fitbit:
  client_id: abc
  client_secret: shh
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.StoragePath != "/tmp/custom.db" {
		t.Errorf("unexpected storage path: %q", cfg.StoragePath)
	}
	if !cfg.Debug || cfg.Units != "metric" {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if cfg.Fitbit.ClientID != "abc" || cfg.Fitbit.ClientSecret != "shh" {
		t.Errorf("unexpected fitbit config: %+v", cfg.Fitbit)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("storage_path: [unclosed"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected malformed yaml to be rejected")
	}
}

func TestApplyEnvOverridesFitbitCredentials(t *testing.T) {
	t.Setenv(constants.EnvFitbitClientID, "env-id")
	t.Setenv(constants.EnvFitbitClientSecret, "env-secret")

	cfg := Config{Fitbit: FitbitConfig{ClientID: "file-id"}}
	cfg.ApplyEnv()

	if cfg.Fitbit.ClientID != "env-id" {
		t.Errorf("expected env override, got %q", cfg.Fitbit.ClientID)
	}
	if cfg.Fitbit.ClientSecret != "env-secret" {
		t.Errorf("expected env override, got %q", cfg.Fitbit.ClientSecret)
	}
}

func TestConfigDir(t *testing.T) {
	cfg := Config{StoragePath: "/home/u/.config/vitalog/vitalog.json"}
	if got := cfg.ConfigDir(); got != "/home/u/.config/vitalog" {
		t.Errorf("unexpected config dir: %q", got)
	}
}
