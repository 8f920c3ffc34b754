package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"
)

// Config represents the inspector configuration
type Config struct {
	// Display settings
	Display struct {
		Radix       int  `toml:"radix"`        // default output radix, 2..36
		GroupDigits int  `toml:"group_digits"` // underscore group size, 0 disables
		Uppercase   bool `toml:"uppercase"`
		ShowBinary  bool `toml:"show_binary"` // include the binary panel line
	} `toml:"display"`

	// REPL settings
	Repl struct {
		DefaultWidth  int  `toml:"default_width"` // bit width of session values
		DefaultSigned bool `toml:"default_signed"`
		HistorySize   int  `toml:"history_size"`
	} `toml:"repl"`

	// TUI settings
	Tui struct {
		ShowHistory bool `toml:"show_history"`
		ShowBits    bool `toml:"show_bits"` // the bit-grid panel
	} `toml:"tui"`
}

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	cfg := &Config{}

	// Display defaults
	cfg.Display.Radix = 16
	cfg.Display.GroupDigits = 4
	cfg.Display.Uppercase = false
	cfg.Display.ShowBinary = true

	// REPL defaults
	cfg.Repl.DefaultWidth = 64
	cfg.Repl.DefaultSigned = false
	cfg.Repl.HistorySize = 1000

	// TUI defaults
	cfg.Tui.ShowHistory = true
	cfg.Tui.ShowBits = true

	return cfg
}

// Validate checks the loaded values against the ranges the engine accepts
func (c *Config) Validate() error {
	if c.Display.Radix < 2 || c.Display.Radix > 36 {
		return fmt.Errorf("display.radix %d out of range [2, 36]", c.Display.Radix)
	}
	if c.Repl.DefaultWidth < 1 {
		return fmt.Errorf("repl.default_width %d must be at least 1", c.Repl.DefaultWidth)
	}
	if c.Repl.HistorySize < 0 {
		return fmt.Errorf("repl.history_size %d must not be negative", c.Repl.HistorySize)
	}
	return nil
}

// GetConfigPath returns the platform-specific config file path
func GetConfigPath() string {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		// Windows: %APPDATA%\awint\config.toml
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		configDir = filepath.Join(configDir, "awint")

	case "darwin", "linux":
		// macOS/Linux: ~/.config/awint/config.toml
		homeDir, err := os.UserHomeDir()
		if err != nil {
			// Fallback to current directory
			return "config.toml"
		}
		configDir = filepath.Join(homeDir, ".config", "awint")

	default:
		// Unknown platform: use current directory
		return "config.toml"
	}

	// Ensure directory exists
	if err := os.MkdirAll(configDir, 0750); err != nil {
		// If we can't create the directory, fall back to current directory
		return "config.toml"
	}

	return filepath.Join(configDir, "config.toml")
}

// Load loads configuration from the default config file
func Load() (*Config, error) {
	return LoadFrom(GetConfigPath())
}

// LoadFrom loads configuration from the specified file
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	// If file doesn't exist, return default config
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	// Read and parse config file
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Save saves configuration to the default config file
func (c *Config) Save() error {
	return c.SaveTo(GetConfigPath())
}

// SaveTo saves configuration to the specified file
func (c *Config) SaveTo(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Create file
	f, err := os.Create(path) // #nosec G304 -- user config file path
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close config file: %w", closeErr)
		}
	}()

	// Encode to TOML
	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return nil
}
