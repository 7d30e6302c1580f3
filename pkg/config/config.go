// Package config handles loading and saving sv configuration.
//
// Configuration follows the XDG Base Directory specification:
//   - Config:  ~/.config/stepview/config.yaml
//   - Data:    ~/.local/share/stepview/ (scenario files)
//   - State:   ~/.local/state/stepview/ (session history)
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// UIConfig holds player preference settings.
type UIConfig struct {
	TickMillis     int  `yaml:"tick_millis,omitempty"`     // playback tick interval (default 33)
	HidePseudocode bool `yaml:"hide_pseudocode,omitempty"` // start with the listing pane collapsed
}

// Config is the top-level configuration for sv.
type Config struct {
	DefaultAlgorithm string   `yaml:"default_algorithm,omitempty"`
	Speed            float64  `yaml:"speed,omitempty"`
	InputSize        int      `yaml:"input_size,omitempty"`
	History          *bool    `yaml:"history,omitempty"` // nil means enabled
	UI               UIConfig `yaml:"ui,omitempty"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		DefaultAlgorithm: "bubble-sort",
		Speed:            1.0,
		InputSize:        16,
		UI: UIConfig{
			TickMillis: 33,
		},
	}
}

// HistoryEnabled reports whether sessions should be persisted. Absent
// from the file means yes; only an explicit `history: false` opts out.
func (c Config) HistoryEnabled() bool {
	return c.History == nil || *c.History
}

// ConfigDir returns the XDG config directory for sv.
func ConfigDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "stepview")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "stepview")
}

// DataDir returns the XDG data directory for sv.
func DataDir() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, "stepview")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".local", "share", "stepview")
}

// StateDir returns the XDG state directory for sv.
func StateDir() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, "stepview")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".local", "state", "stepview")
}

// ScenarioDir returns the directory bare scenario names resolve
// against.
func ScenarioDir() string {
	dir := DataDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "scenarios")
}

// ConfigPath returns the full path to config.yaml.
func ConfigPath() string {
	dir := ConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}

// Load reads the config file from the XDG config directory.
// Returns DefaultConfig if the file doesn't exist.
func Load() (Config, error) {
	path := ConfigPath()
	if path == "" {
		return DefaultConfig(), nil
	}
	return LoadFrom(path)
}

// LoadFrom reads config from a specific path.
// Returns DefaultConfig if the file doesn't exist.
func LoadFrom(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.UI.TickMillis <= 0 {
		cfg.UI.TickMillis = DefaultConfig().UI.TickMillis
	}

	return cfg, nil
}

// Save writes the config to the XDG config directory.
func Save(cfg Config) error {
	path := ConfigPath()
	if path == "" {
		return fmt.Errorf("cannot determine config directory")
	}
	return SaveTo(cfg, path)
}

// SaveTo writes the config to a specific path.
func SaveTo(cfg Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}
