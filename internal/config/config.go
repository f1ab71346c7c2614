// Package config handles persistent defaults for cddns.
//
// Defaults are stored as JSON at ~/.config/cddns/config.json (or the
// platform-equivalent path returned by os.UserConfigDir). Flags and
// environment variables always take precedence over these values.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const (
	appDir   = "cddns"
	fileName = "config.json"
)

// pathOverride, when non-empty, replaces the default config file path.
// Use SetPath / ResetPath to manage.
var pathOverride string

// SetPath overrides the config file path. Intended for testing.
func SetPath(p string) { pathOverride = p }

// ResetPath clears the path override, reverting to the default. Intended for testing.
func ResetPath() { pathOverride = "" }

// Config holds the record defaults used when neither a flag nor an
// environment variable supplies a value. Nil booleans mean "not set".
type Config struct {
	Domain string `json:"domain,omitempty"`
	IPv6   *bool  `json:"ipv6,omitempty"`
	Proxy  *bool  `json:"proxy,omitempty"`
}

// Path returns the absolute path to the config file.
// If SetPath has been called, that value is returned instead.
func Path() (string, error) {
	if pathOverride != "" {
		return pathOverride, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config: unable to determine config directory: %w", err)
	}
	return filepath.Join(base, appDir, fileName), nil
}

func resolvePath(path string) (string, error) {
	if path != "" {
		return path, nil
	}
	return Path()
}

// Load reads the config file from disk and returns the parsed Config.
// If the file does not exist, a zero-value Config is returned (not an error).
func Load() (*Config, error) {
	return LoadFrom("")
}

// LoadFrom reads the config from path, or from Path() when path is empty.
func LoadFrom(path string) (*Config, error) {
	path, err := resolvePath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("config: failed to read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return &cfg, nil
}

// Save writes the config to disk, creating the parent directory if needed.
func (c *Config) Save() error {
	return c.SaveTo("")
}

// SaveTo writes the config to path, or to Path() when path is empty.
func (c *Config) SaveTo(path string) error {
	path, err := resolvePath(path)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("config: failed to create directory %s: %w", dir, err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("config: failed to marshal config: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: failed to write %s: %w", path, err)
	}
	return nil
}
