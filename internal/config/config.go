// Package config loads preferences and the seed collection from a YAML
// file in the user's config directory. The file is only ever read.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/settings/internal/model"
)

const (
	appName    = "settings"
	configFile = "config.yaml"
	logFile    = "settings.log"

	// ThemeEnvVar overrides the configured theme.
	ThemeEnvVar = "SETTINGS_THEME"
)

// Config is the on-disk configuration.
type Config struct {
	Theme      string          `yaml:"theme"`
	LogLevel   string          `yaml:"log_level"`
	LogFile    string          `yaml:"log_file"`
	FilterMode string          `yaml:"filter_mode"`
	Sections   [][]model.Model `yaml:"sections"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Theme:      "classic",
		FilterMode: "substring",
	}
}

// Dir returns the OS-appropriate configuration directory:
//   - Linux: $XDG_CONFIG_HOME/settings or $HOME/.config/settings
//   - macOS: $HOME/.config/settings
//   - Windows: %LOCALAPPDATA%\settings
func Dir() (string, error) {
	switch runtime.GOOS {
	case "windows":
		if d := os.Getenv("LOCALAPPDATA"); d != "" {
			return filepath.Join(d, appName), nil
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		return filepath.Join(home, "AppData", "Local", appName), nil
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		return filepath.Join(home, ".config", appName), nil
	default:
		if d := os.Getenv("XDG_CONFIG_HOME"); d != "" {
			return filepath.Join(d, appName), nil
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		return filepath.Join(home, ".config", appName), nil
	}
}

// Path returns the default config file location.
func Path() (string, error) {
	d, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(d, configFile), nil
}

// Load reads the config at path, or at Path() when path is empty.
// A missing file yields Default().
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := Path()
		if err != nil {
			return nil, err
		}
		path = p
	}
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg.applyEnv()
			return cfg, cfg.fillLogFile()
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, cfg.fillLogFile()
}

// Validate rejects seed sections that are empty or hold blank titles.
func (c *Config) Validate() error {
	for i, sec := range c.Sections {
		if len(sec) == 0 {
			return fmt.Errorf("section %d: %w", i, errEmptySection)
		}
		for j, m := range sec {
			if _, err := model.ValidateTitle(m.Title); err != nil {
				return fmt.Errorf("section %d item %d: %w", i, j, err)
			}
		}
	}
	switch strings.ToLower(c.FilterMode) {
	case "", "substring", "fuzzy":
	default:
		return fmt.Errorf("unknown filter_mode %q", c.FilterMode)
	}
	return nil
}

var errEmptySection = errors.New("section has no items")

func (c *Config) applyEnv() {
	if t := strings.TrimSpace(os.Getenv(ThemeEnvVar)); t != "" {
		c.Theme = t
	}
}

func (c *Config) fillLogFile() error {
	if c.LogFile != "" {
		return nil
	}
	d, err := Dir()
	if err != nil {
		return err
	}
	c.LogFile = filepath.Join(d, logFile)
	return nil
}

// EnsureDir creates the config directory so the log file can be opened.
func EnsureDir() error {
	d, err := Dir()
	if err != nil {
		return fmt.Errorf("failed to get config directory: %w", err)
	}
	if err := os.MkdirAll(d, 0o700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	return nil
}
