// Package config loads beaconsearch settings from YAML files.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Defaults of the puzzle input.
const (
	DefaultRow   int64 = 2_000_000
	DefaultBound int64 = 4_000_000
)

// Config holds the parameters of a search run.
type Config struct {
	// Input is the sensor report file, "-" or empty for stdin.
	Input string `yaml:"input"`
	// Row is the row scanned for covered cells.
	Row int64 `yaml:"row"`
	// Bound is the side of the search square (0,0)-(bound,bound).
	Bound int64 `yaml:"bound" validate:"gte=0"`
	// Workers is the number of search goroutines, 0 searches sequentially.
	Workers int `yaml:"workers" validate:"gte=0,lte=1024"`
	// KeepBeacons counts row cells holding known beacons as covered.
	KeepBeacons bool `yaml:"keep_beacons"`
	// LogLevel is one of debug, info, warn or error.
	LogLevel string `yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`
}

// Default returns the configuration used without a config file.
func Default() *Config {
	return &Config{
		Input:    "-",
		Row:      DefaultRow,
		Bound:    DefaultBound,
		LogLevel: "info",
	}
}

var validate = validator.New()

// Validate checks the field constraints of c.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return fmt.Errorf("invalid config: %w", verrs)
		}
		return err
	}
	return nil
}

// Decode reads a YAML document from r on top of the defaults.
// Unknown keys are rejected.
func Decode(r io.Reader) (*Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads the config file at path. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}
