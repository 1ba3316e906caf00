// Package config provides configuration management.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Generation backends.
const (
	BackendSimulated = "simulated"
	BackendLLM       = "llm"
)

// Config holds all configuration settings. The API key is deliberately not
// here — it lives in the settings store and is edited on the settings screen.
type Config struct {
	// Data directory: SQLite database and log file live under it.
	DataDir string `json:"data_dir"`

	// Logging
	LogLevel string `json:"log_level"`
	LogFile  string `json:"log_file,omitempty"` // relative to DataDir when not absolute

	// Generator settings
	Generator GeneratorConfig `json:"generator"`
}

// GeneratorConfig selects and tunes the generation backend.
type GeneratorConfig struct {
	Backend    string `json:"backend"` // "simulated" or "llm"
	Provider   string `json:"provider,omitempty"`
	Model      string `json:"model,omitempty"`
	APIBaseURL string `json:"api_base_url,omitempty"`

	// Simulated backend knobs.
	DelayMS     int    `json:"delay_ms,omitempty"`
	Placeholder string `json:"placeholder,omitempty"`
}

// DefaultConfig returns sensible defaults. The simulated backend is the
// default so the app works out of the box with no provider configured.
func DefaultConfig() *Config {
	dataDir := ".nameforge"
	if homeDir, err := os.UserHomeDir(); err == nil {
		dataDir = filepath.Join(homeDir, ".nameforge")
	}
	return &Config{
		DataDir:  dataDir,
		LogLevel: "INFO",
		LogFile:  "nameforge.log",
		Generator: GeneratorConfig{
			Backend: BackendSimulated,
			Model:   "gpt-4o-mini",
			DelayMS: 1000,
		},
	}
}

// GetConfigPaths returns a prioritized list of configuration file paths.
func GetConfigPaths(cliPath string) []string {
	if cliPath != "" {
		return []string{cliPath} // explicit path wins, nothing else is tried
	}

	paths := []string{".nameforge/config.json"}
	if homeDir, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(homeDir, ".nameforge", "config.json"))
	}
	return paths
}

// Load loads configuration from the first available path in the prioritized
// list, falling back to defaults (persisted to the primary path) when no file
// exists. It returns the config and the path it was read from or saved to.
func Load(cliPath string) (*Config, string, error) {
	paths := GetConfigPaths(cliPath)

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg := DefaultConfig()
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, path, fmt.Errorf("invalid JSON in config file %s: %w", path, err)
		}
		applyEnvOverrides(cfg)
		if err := cfg.Validate(); err != nil {
			return nil, path, fmt.Errorf("configuration validation failed in %s: %w", path, err)
		}
		return cfg, path, nil
	}

	defaultPath := paths[0]
	cfg := DefaultConfig()
	applyEnvOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, defaultPath, fmt.Errorf("default configuration validation failed: %w", err)
	}
	return cfg, defaultPath, cfg.Save(defaultPath)
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("NAMEFORGE_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("NAMEFORGE_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("NAMEFORGE_BACKEND"); v != "" {
		cfg.Generator.Backend = v
	}
	if v := os.Getenv("NAMEFORGE_PROVIDER"); v != "" {
		cfg.Generator.Provider = v
	}
	if v := os.Getenv("NAMEFORGE_MODEL"); v != "" {
		cfg.Generator.Model = v
	}
	if v := os.Getenv("NAMEFORGE_BASE_URL"); v != "" {
		cfg.Generator.APIBaseURL = v
	}
	if v := os.Getenv("NAMEFORGE_DELAY_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.Generator.DelayMS = n
		}
	}
}

// DatabasePath returns the SQLite database path under the data directory.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.DataDir, "nameforge.db")
}

// LogPath returns the resolved log file path. Relative paths are anchored at
// the data directory.
func (c *Config) LogPath() string {
	if c.LogFile == "" {
		return ""
	}
	if filepath.IsAbs(c.LogFile) {
		return c.LogFile
	}
	return filepath.Join(c.DataDir, c.LogFile)
}

// Save saves configuration to a file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("data_dir is required")
	}
	switch c.Generator.Backend {
	case BackendSimulated:
		if c.Generator.DelayMS < 0 {
			return fmt.Errorf("delay_ms must not be negative")
		}
	case BackendLLM:
		if c.Generator.Model == "" {
			return fmt.Errorf("model is required for the llm backend")
		}
	default:
		return fmt.Errorf("unknown generator backend %q (want %q or %q)",
			c.Generator.Backend, BackendSimulated, BackendLLM)
	}
	return nil
}
