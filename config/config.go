// Package config loads termtris settings from YAML.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/plus3/termtris/tetris"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// EnvPath names the environment variable consulted when no config path is given.
const EnvPath = "TERMTRIS_CONFIG"

// Config holds all game configuration
type Config struct {
	Seed   uint64              `yaml:"seed"` // 0 = random
	Keys   map[string][]string `yaml:"keys"`
	Colors map[string]string   `yaml:"colors"`
	Log    LogConfig           `yaml:"log"`
	Debug  bool                `yaml:"debug"`
}

// LogConfig holds logging settings
type LogConfig struct {
	File  string `yaml:"file"` // empty = discard
	Level string `yaml:"level"`
}

var defaultKeys = map[tetris.Action][]string{
	tetris.MoveLeft:     {"a"},
	tetris.MoveRight:    {"d"},
	tetris.HardLeft:     {"q"},
	tetris.HardRight:    {"e"},
	tetris.SoftDrop:     {"s"},
	tetris.HardDrop:     {"space"},
	tetris.RotateLeft:   {"j"},
	tetris.RotateRight:  {"k"},
	tetris.RotateDouble: {"l"},
	tetris.Hold:         {";"},
	tetris.Quit:         {"ctrl+c"},
}

var defaultColors = map[tetris.Kind]string{
	tetris.I: "aqua",
	tetris.O: "yellow",
	tetris.T: "purple",
	tetris.S: "green",
	tetris.Z: "red",
	tetris.J: "blue",
	tetris.L: "orange",
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads configuration from a YAML file. Settings missing from the file
// keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML configuration, applies defaults and validates the result.
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

// LoadOrDefault loads path, falling back to $TERMTRIS_CONFIG when path is
// empty. A missing file yields the defaults; any other error is returned.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvPath)
	}
	if path == "" {
		return Default(), nil
	}

	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

func (c *Config) applyDefaults() {
	if c.Keys == nil {
		c.Keys = make(map[string][]string, len(defaultKeys))
	}
	for action, keys := range defaultKeys {
		if _, ok := c.Keys[action.String()]; !ok {
			c.Keys[action.String()] = append([]string(nil), keys...)
		}
	}

	if c.Colors == nil {
		c.Colors = make(map[string]string, len(defaultColors))
	}
	for kind, color := range defaultColors {
		if _, ok := c.Colors[kind.String()]; !ok {
			c.Colors[kind.String()] = color
		}
	}

	if c.Log.Level == "" {
		c.Log.Level = zerolog.InfoLevel.String()
	}
}

// Validate checks action names, key bindings, piece kinds and the log level.
// It does not know which key names a frontend understands; frontends report
// those when they build their keymap.
func (c *Config) Validate() error {
	var errs []error

	owner := make(map[string]string)
	for _, name := range sortedKeys(c.Keys) {
		if _, err := tetris.ParseAction(name); err != nil {
			errs = append(errs, fmt.Errorf("keys: %w", err))
			continue
		}
		for _, key := range c.Keys[name] {
			key = strings.ToLower(strings.TrimSpace(key))
			if key == "" {
				errs = append(errs, fmt.Errorf("keys: empty key bound to %s", name))
				continue
			}
			if prev, ok := owner[key]; ok && prev != name {
				errs = append(errs, fmt.Errorf("keys: %q bound to both %s and %s", key, prev, name))
				continue
			}
			owner[key] = name
		}
	}

	for _, name := range sortedKeys(c.Colors) {
		if _, err := tetris.ParseKind(name); err != nil {
			errs = append(errs, fmt.Errorf("colors: %w", err))
		}
	}

	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log: %w", err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// Bindings returns the key names bound to each action. Call it on a validated
// config.
func (c *Config) Bindings() map[tetris.Action][]string {
	bindings := make(map[tetris.Action][]string, len(c.Keys))
	for name, keys := range c.Keys {
		action, err := tetris.ParseAction(name)
		if err != nil {
			continue
		}
		bindings[action] = keys
	}
	return bindings
}

// ColorOf returns the colour name configured for kind.
func (c *Config) ColorOf(kind tetris.Kind) string {
	if color, ok := c.Colors[kind.String()]; ok {
		return color
	}
	return defaultColors[kind]
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
