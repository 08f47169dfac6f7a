// Package config loads the optional YAML configuration file. Everything has
// a sensible default; a missing file is not an error.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/julianstephens/vitalog/internal/constants"
	"github.com/julianstephens/vitalog/internal/utils"
)

// FitbitConfig carries the OAuth application credentials. Values from the
// environment (FITBIT_CLIENT_ID / FITBIT_CLIENT_SECRET) take precedence.
type FitbitConfig struct {
	ClientID     string `yaml:"client_id"`
	ClientSecret string `yaml:"client_secret"`
	RedirectURI  string `yaml:"redirect_uri"`
}

// Config is the application configuration.
type Config struct {
	// StoragePath selects the storage backend: a .json file, a .db SQLite
	// database, or a postgres:// marker.
	StoragePath string       `yaml:"storage_path"`
	Debug       bool         `yaml:"debug"`
	Units       string       `yaml:"units"` // "imperial" or "metric"
	Fitbit      FitbitConfig `yaml:"fitbit"`
}

// DefaultPath returns the standard config file location.
func DefaultPath() string {
	return utils.ExpandHome("~/.config/vitalog/config.yaml")
}

func defaults() Config {
	return Config{
		StoragePath: utils.ExpandHome(constants.DefaultConfigPath),
		Units:       "imperial",
		Fitbit: FitbitConfig{
			RedirectURI: "http://localhost:3000/fitbit-callback",
		},
	}
}

// Load reads the config file at path, falling back to defaults when the file
// does not exist.
func Load(path string) (Config, error) {
	cfg := defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return defaults(), fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.StoragePath == "" {
		cfg.StoragePath = defaults().StoragePath
	} else {
		cfg.StoragePath = utils.ExpandHome(cfg.StoragePath)
	}
	if cfg.Units == "" {
		cfg.Units = "imperial"
	}
	if cfg.Fitbit.RedirectURI == "" {
		cfg.Fitbit.RedirectURI = defaults().Fitbit.RedirectURI
	}
	return cfg, nil
}

// ApplyEnv overlays environment variables onto the config.
func (c *Config) ApplyEnv() {
	if v := os.Getenv(constants.EnvFitbitClientID); v != "" {
		c.Fitbit.ClientID = v
	}
	if v := os.Getenv(constants.EnvFitbitClientSecret); v != "" {
		c.Fitbit.ClientSecret = v
	}
}

// ConfigDir returns the directory holding the storage file, used for logs
// and backups.
func (c *Config) ConfigDir() string {
	return filepath.Dir(c.StoragePath)
}
