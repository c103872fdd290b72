package config

import (
	"os"
	"path/filepath"

	"github.com/grovetools/mygit/errors"
	"github.com/grovetools/mygit/util/pathutil"
	"gopkg.in/yaml.v3"
)

// EnvConfigPath overrides the default configuration file location when set.
const EnvConfigPath = "MYGIT_CONFIG"

// DefaultPath returns the well-known configuration file location,
// ~/.config/mygit/config.yml, honoring the MYGIT_CONFIG override.
func DefaultPath() (string, error) {
	if override := os.Getenv(EnvConfigPath); override != "" {
		return override, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to determine home directory")
	}
	return filepath.Join(home, ".config", "mygit", "config.yml"), nil
}

// Load reads, parses, and validates the configuration file at path.
// A missing or malformed file is fatal for the invocation; there is no
// recovery path mid-run.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ConfigNotFound(path)
		}
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to read config file").
			WithDetail("path", path)
	}

	return LoadFromBytes(data)
}

// LoadDefault loads the configuration from the well-known location.
func LoadDefault() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return Load(path)
}

// LoadFromBytes parses and validates raw configuration data. Validation runs
// against the raw document, not the decoded struct, so unknown keys are
// rejected rather than silently dropped.
func LoadFromBytes(data []byte) (*Config, error) {
	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse config file")
	}

	validator, err := NewSchemaValidator()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternal, "failed to load config schema")
	}
	if err := validator.Validate(raw); err != nil {
		return nil, errors.ConfigInvalid(err.Error())
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse config file")
	}

	if cfg.CloneDirectory == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to determine home directory")
		}
		cfg.CloneDirectory = filepath.Join(home, "mygit-repos")
	} else {
		expanded, err := pathutil.Expand(cfg.CloneDirectory)
		if err != nil {
			return nil, errors.ConfigInvalid("clone_directory: " + err.Error())
		}
		cfg.CloneDirectory = expanded
	}

	return &cfg, nil
}
