// Package config provides configuration management for basix.
// Configuration is stored at ~/.config/basix/config.yaml and lets a user
// replace the built-in catalogs and point the installers at their own
// dotfiles repository.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/usires/basix/pkg/catalog"
)

// Version is the current config schema version.
const Version = "1.0"

// Defaults for the installer settings.
const (
	DefaultConfigsRepo = "https://github.com/Usires/dotfiles.git"
	DefaultFlathubURL  = "https://dl.flathub.org/repo/flathub.flatpakrepo"
	DefaultLogLevel    = "warn"
)

var (
	// ErrInvalidConfig is returned when a loaded config fails validation.
	ErrInvalidConfig = errors.New("invalid config")
	// ErrConfigExists is returned by Init when a config file is already present.
	ErrConfigExists = errors.New("config file already exists")
)

// Config represents the basix configuration.
type Config struct {
	Version               string   `yaml:"version"`
	AptPackages           []string `yaml:"apt_packages,omitempty"`            // Replaces the native catalog
	FlatpakPackages       []string `yaml:"flatpak_packages,omitempty"`        // Replaces the Flatpak catalog
	PackageManagers       []string `yaml:"package_managers,omitempty"`        // Candidates probed at startup
	DefaultPackageManager string   `yaml:"default_package_manager,omitempty"` // Pre-selected manager
	ConfigsRepo           string   `yaml:"configs_repo"`                      // Cloned by "Copy configs"
	FlathubURL            string   `yaml:"flathub_url"`
	FontsDir              string   `yaml:"fonts_dir,omitempty"`
	LogLevel              string   `yaml:"log_level"`
}

// NewConfig creates a Config with defaults.
func NewConfig() *Config {
	return &Config{
		Version:         Version,
		AptPackages:     catalog.AptPrograms(),
		FlatpakPackages: catalog.FlatpakPrograms(),
		PackageManagers: catalog.PackageManagerCandidates(),
		ConfigsRepo:     DefaultConfigsRepo,
		FlathubURL:      DefaultFlathubURL,
		FontsDir:        DefaultFontsDir(),
		LogLevel:        DefaultLogLevel,
	}
}

// Load reads the config at path. An empty path means the default location.
// A missing file yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		var err error
		path, err = GetConfigPath()
		if err != nil {
			return nil, fmt.Errorf("failed to get config path: %w", err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML, fills empty fields with defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyDefaults fills every empty field from NewConfig.
func (c *Config) applyDefaults() {
	def := NewConfig()
	if c.Version == "" {
		c.Version = def.Version
	}
	if len(c.AptPackages) == 0 {
		c.AptPackages = def.AptPackages
	}
	if len(c.FlatpakPackages) == 0 {
		c.FlatpakPackages = def.FlatpakPackages
	}
	if len(c.PackageManagers) == 0 {
		c.PackageManagers = def.PackageManagers
	}
	if c.ConfigsRepo == "" {
		c.ConfigsRepo = def.ConfigsRepo
	}
	if c.FlathubURL == "" {
		c.FlathubURL = def.FlathubURL
	}
	if c.FontsDir == "" {
		c.FontsDir = def.FontsDir
	}
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
}

// Validate checks catalogs and the log level.
func (c *Config) Validate() error {
	lists := []struct {
		field string
		names []string
	}{
		{"apt_packages", c.AptPackages},
		{"flatpak_packages", c.FlatpakPackages},
		{"package_managers", c.PackageManagers},
	}
	for _, l := range lists {
		if problem := catalog.Validate(l.names); problem != "" {
			return fmt.Errorf("%w: %s: %s", ErrInvalidConfig, l.field, problem)
		}
	}

	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level: %q", ErrInvalidConfig, c.LogLevel)
	}

	if c.DefaultPackageManager != "" && !slices.Contains(c.PackageManagers, c.DefaultPackageManager) {
		return fmt.Errorf("%w: default_package_manager: %q is not in package_managers",
			ErrInvalidConfig, c.DefaultPackageManager)
	}

	return nil
}

// Catalog returns the candidate list configured for kind.
func (c *Config) Catalog(kind catalog.Kind) []string {
	switch kind {
	case catalog.KindApt:
		return c.AptPackages
	case catalog.KindFlatpak:
		return c.FlatpakPackages
	case catalog.KindManagers:
		return c.PackageManagers
	default:
		return nil
	}
}

// Save writes the config to path, creating the parent directory.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Init writes a default config to path. It refuses to overwrite an existing
// file unless force is set.
func Init(path string, force bool) (*Config, error) {
	if _, err := os.Stat(path); err == nil && !force {
		return nil, fmt.Errorf("%w: %s", ErrConfigExists, path)
	}

	cfg := NewConfig()
	if err := cfg.Save(path); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Marshal renders the config as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
