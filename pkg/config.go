package crho

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Config holds the tunable pieces of the front end. Right now that is
// the operator table: each key is a single-character operator and each
// value its binding power.
type Config struct {
	Operators map[string]int `toml:"operators" yaml:"operators"`
}

// LoadConfig reads a configuration file, picking the decoder from the
// file extension. TOML and YAML are supported.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := &Config{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q (want .toml, .yaml or .yml)", filepath.Ext(path))
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that every configured operator is a single character
// with a non-negative binding power.
func (c *Config) Validate() error {
	for op, power := range c.Operators {
		if utf8.RuneCountInString(op) != 1 {
			return fmt.Errorf("operator %q: must be a single character", op)
		}
		if power < 0 {
			return fmt.Errorf("operator %q: binding power must be non-negative, got %d", op, power)
		}
	}
	return nil
}

// Precedence builds the operator table: the defaults, overlaid with the
// configured entries. Configured operators win on conflict.
func (c *Config) Precedence() PrecedenceTable {
	table := DefaultPrecedence()
	for op, power := range c.Operators {
		r, _ := utf8.DecodeRuneInString(op)
		table[r] = power
	}
	return table
}
