package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"

	"github.com/conn-castle/cabm/internal/messages"
)

// EnvConfigPath names the environment variable holding an explicit config path.
const EnvConfigPath = "CABM_CONFIG"

// DefaultFileName is picked up from the working directory when present.
const DefaultFileName = "cabm.toml"

// ErrConfigValidation is a sentinel that wraps config validation failures
// (as opposed to TOML syntax or filesystem errors).
var ErrConfigValidation = errors.New("config validation failed")

var (
	osStat     = os.Stat
	osReadFile = os.ReadFile
	expandPath = homedir.Expand
)

// Discover loads the config named by CABM_CONFIG, else cwd/cabm.toml when it
// exists, else the built-in defaults. It returns the config and its source.
func Discover(getenv func(string) string, cwd string) (*Config, string, error) {
	if explicit := strings.TrimSpace(getenv(EnvConfigPath)); explicit != "" {
		cfg, err := LoadConfig(explicit)
		return cfg, explicit, err
	}
	candidate := filepath.Join(cwd, DefaultFileName)
	if _, err := osStat(candidate); err == nil {
		cfg, err := LoadConfig(candidate)
		return cfg, candidate, err
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, candidate, fmt.Errorf(messages.ConfigReadFileFmt, candidate, err)
	}
	return Default(), messages.ConfigDefaultSource, nil
}

// LoadConfig reads a TOML config file, overlays it on Default(), and validates it.
func LoadConfig(path string) (*Config, error) {
	data, err := osReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(messages.ConfigReadFileFmt, path, err)
	}
	return ParseConfig(data, path)
}

// ParseConfig parses and validates config TOML data from a source identifier.
// data is the TOML content; source is used in error messages.
func ParseConfig(data []byte, source string) (*Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf(messages.ConfigInvalidConfigFmt, source, err)
	}
	if err := decodeStrict(data); err != nil {
		return nil, fmt.Errorf("%w: "+messages.ConfigUnrecognizedKeysFmt+" "+messages.ConfigValidationGuidance, ErrConfigValidation, source, err)
	}
	if err := cfg.expandPaths(source); err != nil {
		return nil, err
	}
	if err := cfg.Validate(source); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigValidation, err)
	}
	return cfg, nil
}

// decodeStrict re-decodes the TOML data with strict unknown-field rejection.
func decodeStrict(data []byte) error {
	var cfg Config
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	return decoder.Decode(&cfg)
}

// expandPaths resolves a leading ~ in file paths.
func (c *Config) expandPaths(source string) error {
	installer, err := expandPath(c.Manager.InstallerPath)
	if err != nil {
		return fmt.Errorf(messages.ConfigExpandPathFmt, source, c.Manager.InstallerPath, err)
	}
	manifest, err := expandPath(c.Environment.Manifest)
	if err != nil {
		return fmt.Errorf(messages.ConfigExpandPathFmt, source, c.Environment.Manifest, err)
	}
	c.Manager.InstallerPath = installer
	c.Environment.Manifest = manifest
	return nil
}
