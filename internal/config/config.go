// Package config holds the settings that control how the
// sortedarray command splits and orders input records.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Config controls how records are read and ordered.
type Config struct {
	// Separator splits each input line into fields.
	Separator string `yaml:"separator" toml:"separator"`

	// Field selects the zero-based field that records are
	// ordered by. When it is -1, records are ordered by all
	// their fields in turn.
	Field int `yaml:"field" toml:"field"`

	// Reverse orders records in descending order.
	Reverse bool `yaml:"reverse" toml:"reverse"`

	// FoldCase compares fields case-insensitively.
	FoldCase bool `yaml:"fold-case" toml:"fold-case"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Separator: "\t",
		Field:     -1,
	}
}

// Load reads the configuration file at path, filling in
// defaults for anything it leaves unset. The format is chosen
// by the file extension: .yaml, .yml or .toml.
// An empty path returns Default().
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("cannot read config: %w", err)
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = decodeYAML(data, &cfg)
	case ".toml":
		err = decodeTOML(data, &cfg)
	default:
		return Config{}, fmt.Errorf("config file %q: unknown format %q", path, ext)
	}
	if err != nil {
		return Config{}, fmt.Errorf("config file %q: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config file %q: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that the configuration is usable.
func (cfg Config) Validate() error {
	if cfg.Separator == "" {
		return errors.New("separator must not be empty")
	}
	if cfg.Field < -1 {
		return fmt.Errorf("invalid field %d", cfg.Field)
	}
	return nil
}

func decodeYAML(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func decodeTOML(data []byte, cfg *Config) error {
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown keys %v", undecoded)
	}
	return nil
}
