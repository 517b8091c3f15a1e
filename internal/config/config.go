// Package config loads and saves the modwarden configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/modwarden/modwarden/module/mods/types"
	cerrors "github.com/modwarden/modwarden/util/common/errors"

	"gopkg.in/yaml.v3"
)

const (
	appName  = "modwarden"
	fileName = "config.yaml"
)

// Config represents the top-level configuration structure
type Config struct {
	ActiveProfile     int              `yaml:"activeProfile"`
	PreferredPlatform string           `yaml:"preferredPlatform,omitempty"`
	UserAgent         string           `yaml:"userAgent,omitempty"`
	Registries        RegistriesConfig `yaml:"registries,omitempty"`
	HTTP              HTTPConfig       `yaml:"http,omitempty"`
	Scan              ScanConfig       `yaml:"scan,omitempty"`
	Profiles          []types.Profile  `yaml:"profiles"`
}

// RegistriesConfig holds per-registry connection settings
type RegistriesConfig struct {
	Modrinth   RegistryConfig `yaml:"modrinth,omitempty"`
	CurseForge RegistryConfig `yaml:"curseforge,omitempty"`
}

// RegistryConfig defines how to reach one registry. Values may reference
// environment variables as ${VAR}.
type RegistryConfig struct {
	Endpoint string `yaml:"endpoint,omitempty"`
	APIKey   string `yaml:"apiKey,omitempty"`
}

// HTTPConfig tunes the registry HTTP clients
type HTTPConfig struct {
	RetryMax *int          `yaml:"retryMax,omitempty"`
	Timeout  time.Duration `yaml:"timeout,omitempty"`
}

// ScanConfig controls which files a scan looks at
type ScanConfig struct {
	Suffix  string   `yaml:"suffix,omitempty"`
	Exclude []string `yaml:"exclude,omitempty"`
}

// DefaultPath returns $XDG_CONFIG_HOME/modwarden/config.yaml, falling back
// to ~/.config when XDG_CONFIG_HOME is unset.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName, fileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("error resolving home directory: %w", err)
	}
	return filepath.Join(home, ".config", appName, fileName), nil
}

// LoadConfig loads the configuration from a file. A missing file yields an
// empty configuration.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// Save writes the configuration to path. The file is replaced atomically and
// is only readable by the owner since it may hold an API key.
func (c *Config) Save(path string) error {
	if err := validateConfig(c); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return cerrors.NewFileError(dir, "create", err)
	}

	tmp, err := os.CreateTemp(dir, "."+fileName+"-*")
	if err != nil {
		return cerrors.NewFileError(dir, "create", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return cerrors.NewFileError(tmp.Name(), "write", err)
	}
	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return cerrors.NewFileError(tmp.Name(), "chmod", err)
	}
	if err := tmp.Close(); err != nil {
		return cerrors.NewFileError(tmp.Name(), "write", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return cerrors.NewFileError(path, "write", err)
	}
	return nil
}

// Profile returns the profile called name, or the active profile when name
// is empty.
func (c *Config) Profile(name string) (*types.Profile, error) {
	if len(c.Profiles) == 0 {
		return nil, cerrors.Wrap(cerrors.ErrNotFound, "no profiles configured, create one with 'mw profile create'")
	}
	if name == "" {
		return &c.Profiles[c.ActiveProfile], nil
	}
	i := c.indexOf(name)
	if i < 0 {
		return nil, cerrors.Wrap(cerrors.ErrNotFound, fmt.Sprintf("profile %q", name))
	}
	return &c.Profiles[i], nil
}

// AddProfile appends p and makes it the active profile.
func (c *Config) AddProfile(p types.Profile) error {
	if err := validateProfile(p); err != nil {
		return err
	}
	if c.indexOf(p.Name) >= 0 {
		return cerrors.NewValidationError("name", fmt.Sprintf("profile %q already exists", p.Name))
	}
	c.Profiles = append(c.Profiles, p)
	c.ActiveProfile = len(c.Profiles) - 1
	return nil
}

// UseProfile makes the profile called name the active one.
func (c *Config) UseProfile(name string) error {
	i := c.indexOf(name)
	if i < 0 {
		return cerrors.Wrap(cerrors.ErrNotFound, fmt.Sprintf("profile %q", name))
	}
	c.ActiveProfile = i
	return nil
}

func (c *Config) indexOf(name string) int {
	for i := range c.Profiles {
		if strings.EqualFold(c.Profiles[i].Name, name) {
			return i
		}
	}
	return -1
}

// validateConfig performs basic validation on the configuration
func validateConfig(config *Config) error {
	if config.PreferredPlatform != "" {
		if _, err := types.ParsePlatform(config.PreferredPlatform); err != nil {
			return cerrors.NewValidationError("preferredPlatform", err.Error())
		}
	}

	if config.HTTP.RetryMax != nil && *config.HTTP.RetryMax < 0 {
		return cerrors.NewValidationError("http.retryMax", "must not be negative")
	}
	if config.HTTP.Timeout < 0 {
		return cerrors.NewValidationError("http.timeout", "must not be negative")
	}

	seen := make(map[string]bool, len(config.Profiles))
	for _, p := range config.Profiles {
		if err := validateProfile(p); err != nil {
			return err
		}
		key := strings.ToLower(p.Name)
		if seen[key] {
			return cerrors.NewValidationError("profiles", fmt.Sprintf("duplicate profile name %q", p.Name))
		}
		seen[key] = true
	}

	if config.ActiveProfile < 0 || (len(config.Profiles) > 0 && config.ActiveProfile >= len(config.Profiles)) {
		return cerrors.NewValidationError("activeProfile", fmt.Sprintf("index %d out of range", config.ActiveProfile))
	}
	if len(config.Profiles) == 0 && config.ActiveProfile != 0 {
		return cerrors.NewValidationError("activeProfile", "set without any profiles")
	}

	return nil
}

func validateProfile(p types.Profile) error {
	if strings.TrimSpace(p.Name) == "" {
		return cerrors.NewValidationError("name", "profile name must be specified")
	}
	if p.OutputDir == "" {
		return cerrors.NewValidationError("outputDir", fmt.Sprintf("profile %q has no output directory", p.Name))
	}
	return nil
}
