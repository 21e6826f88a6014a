// Package storage implements the ConfigStore and LocationCache ports using
// files in the per-user config and cache directories.
package storage

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"

	"github.com/sanbobsan/weather-cli/internal/core/domain"
)

// configFile is the on-disk structure of config.yaml.
type configFile struct {
	// Default is the location used when the weather command gets none.
	Default string `yaml:"default"`
}

// ConfigStore implements ports.ConfigStore using a YAML file.
type ConfigStore struct {
	dir string
}

// NewConfigStore creates a ConfigStore rooted at the user config directory.
func NewConfigStore() (*ConfigStore, error) {
	dir, err := domain.ConfigDir()
	if err != nil {
		return nil, err
	}
	return newConfigStoreWithDir(dir), nil
}

// newConfigStoreWithDir creates a ConfigStore rooted at a custom directory (used for testing).
func newConfigStoreWithDir(dir string) *ConfigStore {
	return &ConfigStore{dir: dir}
}

// DefaultLocation returns the configured default location, or "" if the
// config file does not exist yet.
func (s *ConfigStore) DefaultLocation() (string, error) {
	data, err := os.ReadFile(s.path())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	var cfg configFile
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return "", zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}

	return cfg.Default, nil
}

// SetDefaultLocation persists the default location, creating the config
// directory when needed.
func (s *ConfigStore) SetDefaultLocation(location string) error {
	data, err := yaml.Marshal(configFile{Default: location})
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigMarshalFailed.Error())
	}

	if err := os.MkdirAll(s.dir, domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrConfigWriteFailed.Error())
	}

	if err := atomicWriteFile(s.path(), data); err != nil {
		return zerr.Wrap(err, domain.ErrConfigWriteFailed.Error())
	}

	return nil
}

// Clear removes the config file and its directory.
func (s *ConfigStore) Clear() error {
	if err := os.RemoveAll(s.dir); err != nil {
		return zerr.Wrap(err, domain.ErrConfigClearFailed.Error())
	}
	return nil
}

func (s *ConfigStore) path() string {
	return filepath.Join(s.dir, domain.ConfigFileName)
}
