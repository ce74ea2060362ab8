// Package config resolves where hamcare keeps its data and which storage
// backend it uses. Values come from flags, HAMCARE_* environment variables
// and an optional .hamcare.yaml, in that order of precedence.
package config

import (
	"fmt"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"github.com/hamcare-app/hamcare/internal/constants"
)

// Config is the resolved runtime configuration.
type Config struct {
	// Path is the storage root: a directory for the diskv backend, a
	// database file for sqlite.
	Path string
	// Backend selects the KV implementation (diskv|sqlite).
	Backend string
}

// Load reads configuration from the environment and an optional config
// file. A missing config file is not an error.
func Load() (Config, error) {
	v := viper.New()
	v.SetDefault("path", constants.DefaultConfigDir)
	v.SetDefault("backend", constants.BackendDiskv)

	v.SetConfigName(".hamcare") // .yaml is implicit
	v.SetEnvPrefix("HAMCARE")
	v.AutomaticEnv()

	v.AddConfigPath("$HOME")
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := Config{
		Path:    v.GetString("path"),
		Backend: v.GetString("backend"),
	}
	return cfg.normalize()
}

// FromFlags builds a Config from explicit command-line values, falling back
// to Load for anything unset.
func FromFlags(path, backend string) (Config, error) {
	cfg, err := Load()
	if err != nil {
		return Config{}, err
	}
	if path != "" {
		cfg.Path = path
	}
	if backend != "" {
		cfg.Backend = backend
	}
	return cfg.normalize()
}

// LogRoot returns the directory that holds the logs/ subdirectory. Log
// files live beside the storage root, never inside it, so the diskv key
// space stays free of them.
func (c Config) LogRoot() string {
	return filepath.Dir(c.Path)
}

func (c Config) normalize() (Config, error) {
	expanded, err := homedir.Expand(c.Path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to expand storage path: %w", err)
	}
	c.Path = expanded

	switch c.Backend {
	case constants.BackendDiskv, constants.BackendSQLite:
	default:
		return Config{}, fmt.Errorf("unknown storage backend %q (expected %s or %s)",
			c.Backend, constants.BackendDiskv, constants.BackendSQLite)
	}
	return c, nil
}
