package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration
type Config struct {
	Endpoint      string     `toml:"endpoint"`       // suggest API base URL
	Limit         int        `toml:"limit"`          // result-count cap per request
	MinChars      int        `toml:"min_chars"`      // minimum query length before dispatch
	DebounceMS    int        `toml:"debounce_ms"`    // settle delay between keystroke and request
	ImageBase     string     `toml:"image_base"`     // when set, relative thumbnails resolve against this origin
	ImageCategory string     `toml:"image_category"` // category label marking image results (matched accent-insensitively)
	UISettings    UISettings `toml:"ui"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ExpandMS   int `toml:"expand_ms"`   // trigger-to-panel visual transition
	CollapseMS int `toml:"collapse_ms"` // panel teardown delay
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// configService is the concrete implementation
type configService struct {
	filePath string
}

// NewConfigService creates a config service rooted at the user config dir
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	return &configService{
		filePath: filepath.Join(configDir, "sitesift", "config.toml"),
	}
}

// Load loads the configuration from the default path, falling back to
// defaults when no file exists.
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return cs.LoadFromPath(cs.filePath)
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.applyBounds()

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// applyBounds clamps user-supplied values back into sane ranges so a bad
// config file degrades instead of breaking the widget.
func (c *Config) applyBounds() {
	if c.Limit < 1 {
		c.Limit = 1
	}
	if c.Limit > 50 {
		c.Limit = 50 // backend caps n_results at 50
	}
	if c.MinChars < 1 {
		c.MinChars = 1
	}
	if c.DebounceMS < 0 {
		c.DebounceMS = 0
	}
	if c.UISettings.ExpandMS < 0 {
		c.UISettings.ExpandMS = 0
	}
	if c.UISettings.CollapseMS < 0 {
		c.UISettings.CollapseMS = 0
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Endpoint:      "http://localhost:8000",
		Limit:         20,
		MinChars:      2,
		DebounceMS:    120,
		ImageBase:     "",
		ImageCategory: "image",
		UISettings: UISettings{
			ExpandMS:   400,
			CollapseMS: 250,
		},
	}
}
