package param

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed panel.yaml
var defaultConfig []byte

// Config describes the panel's controls and logging.
type Config struct {
	Debug    bool      `yaml:"debug"`    // console logging
	Listen   bool      `yaml:"listen"`   // attach DOM listeners instead of exposing inline handler globals
	Controls []Control `yaml:"controls"`
}

// DefaultConfig returns the embedded bypass/pan configuration.
func DefaultConfig() Config {
	cfg, err := LoadConfig(defaultConfig)
	if err != nil {
		panic(err)
	}
	return cfg
}

// LoadConfig parses and validates a YAML panel config.
func LoadConfig(data []byte) (Config, error) {
	var cfg Config
	if len(strings.TrimSpace(string(data))) == 0 {
		return Config{}, fmt.Errorf("%w: empty document", ErrInvalidConfig)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks names, elements, kinds and ranges.
func (c Config) Validate() error {
	names := make(map[string]bool, len(c.Controls))
	params := make(map[Index]string, len(c.Controls))
	for i, ctrl := range c.Controls {
		if ctrl.Name == "" {
			return fmt.Errorf("%w: control %d has no name", ErrInvalidConfig, i)
		}
		if names[ctrl.Name] {
			return fmt.Errorf("%w: duplicate control %q", ErrInvalidConfig, ctrl.Name)
		}
		names[ctrl.Name] = true

		if ctrl.Element == "" {
			return fmt.Errorf("%w: control %q has no element", ErrInvalidConfig, ctrl.Name)
		}
		if other, ok := params[ctrl.Param]; ok {
			return fmt.Errorf("%w: controls %q and %q share parameter %d", ErrInvalidConfig, other, ctrl.Name, ctrl.Param)
		}
		params[ctrl.Param] = ctrl.Name

		switch ctrl.Kind {
		case Toggle:
		case Range:
			if ctrl.Max <= ctrl.Min {
				return fmt.Errorf("%w: control %q range [%v, %v] is empty", ErrInvalidConfig, ctrl.Name, ctrl.Min, ctrl.Max)
			}
		default:
			return fmt.Errorf("%w: control %q has unknown kind %q", ErrInvalidConfig, ctrl.Name, ctrl.Kind)
		}
	}
	return nil
}
