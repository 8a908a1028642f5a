// Package config loads fizyo settings from a TOML file.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/fiziktedavi/fizyo/pkg/fizyo/constants"
)

// Config is the top-level TOML structure.
type Config struct {
	App AppSettings `toml:"app"`
	Log LogSettings `toml:"log"`
}

type AppSettings struct {
	StartRoute     string `toml:"start_route"`      // must name a registered static route
	StateCacheSize int    `toml:"state_cache_size"` // saved resume states kept for tab switching
}

type LogSettings struct {
	Path  string `toml:"path"`  // empty logs to stdout only
	Level string `toml:"level"` // debug, info, warn, error
}

const defaultConfigTOML = `# fizyo settings

[app]
start_route = "login"
state_cache_size = 5

[log]
path = ""
level = "info"
`

// Default returns the built-in settings.
func Default() Config {
	return Config{
		App: AppSettings{
			StartRoute:     constants.StartRoute,
			StateCacheSize: constants.DefaultStateCacheSize,
		},
		Log: LogSettings{
			Path:  "",
			Level: "info",
		},
	}
}

// DefaultPath returns the config file location: $FIZYO_CONFIG if set,
// otherwise config.toml under the user config directory.
func DefaultPath() (string, error) {
	if p := os.Getenv(constants.ConfigPathEnvVar); p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("user config dir: %w", err)
	}
	return filepath.Join(dir, "fizyo", "config.toml"), nil
}

// Load reads the config at path, creating it with defaults if it is missing.
// On error the defaults are returned alongside it.
func Load(path string) (Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if mkErr := os.MkdirAll(filepath.Dir(path), 0755); mkErr != nil {
			return Default(), fmt.Errorf("create config dir: %w", mkErr)
		}
		if wErr := os.WriteFile(path, []byte(defaultConfigTOML), 0644); wErr != nil {
			return Default(), fmt.Errorf("write default config: %w", wErr)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes TOML bytes and normalizes the result.
// Keys absent from data keep their default values.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return Default(), fmt.Errorf("parse config.toml: %w", err)
	}
	return normalize(cfg), nil
}

// Save writes cfg to path as TOML.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(normalize(cfg)); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func normalize(c Config) Config {
	out := Default()

	if s := strings.TrimSpace(c.App.StartRoute); s != "" {
		out.App.StartRoute = s
	}
	if c.App.StateCacheSize >= 1 && c.App.StateCacheSize <= constants.MaxStateCacheSize {
		out.App.StateCacheSize = c.App.StateCacheSize
	}

	out.Log.Path = strings.TrimSpace(c.Log.Path)
	switch level := strings.ToLower(strings.TrimSpace(c.Log.Level)); level {
	case "debug", "info", "warn", "warning", "error":
		out.Log.Level = level
	}
	return out
}
