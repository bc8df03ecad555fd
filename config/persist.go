package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/teranos/whence/errors"
)

// DefaultPath returns the user config file path, ~/.whence/whence.toml
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to determine home directory")
	}
	return filepath.Join(home, ".whence", "whence.toml"), nil
}

// Save writes the configuration to the given path as TOML, creating the
// parent directory if needed. An existing file is moved aside to .back
// first so a bad write never destroys the previous config.
func Save(cfg *Config, configPath string) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return errors.Wrap(err, "failed to create config directory")
	}

	if _, err := os.Stat(configPath); err == nil {
		if err := os.Rename(configPath, configPath+".back"); err != nil {
			return errors.Wrap(err, "failed to back up existing config")
		}
	}

	content, err := toml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}

	if err := os.WriteFile(configPath, content, 0644); err != nil {
		return errors.Wrap(err, "failed to write config")
	}
	return nil
}
