// Package config loads the bnbtree CLI settings and problem instances from
// YAML files.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/katalvlaran/bnbtree/bnb"
	"github.com/katalvlaran/bnbtree/catalog"
	"gopkg.in/yaml.v3"
)

// Environment variables that override file settings.
const (
	EnvStrategy = "BNBTREE_STRATEGY"
	EnvFormat   = "BNBTREE_FORMAT"
	EnvLogLevel = "BNBTREE_LOG_LEVEL"
)

// Output formats for the search tree.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

var (
	// ErrNoItems is returned for an instance file without items.
	ErrNoItems = errors.New("config: instance has no items")

	// ErrUnknownFormat is returned for an output format other than
	// text, json or yaml.
	ErrUnknownFormat = errors.New("config: unknown output format")
)

// Config holds the run settings shared by every command.
type Config struct {
	Strategy string        `yaml:"strategy"`
	Output   OutputConfig  `yaml:"output"`
	Logging  LoggingConfig `yaml:"logging"`
}

// OutputConfig controls what solve writes to stdout.
type OutputConfig struct {
	// Format of the tree dump: text (report only), json or yaml.
	Format string `yaml:"format"`
	// Indent for json output; ignored otherwise.
	Indent int `yaml:"indent"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level    string `yaml:"level"`    // debug, info, warn, error
	Encoding string `yaml:"encoding"` // json or console
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		Strategy: bnb.OnesFirst.String(),
		Output: OutputConfig{
			Format: FormatText,
			Indent: 2,
		},
		Logging: LoggingConfig{
			Level:    "info",
			Encoding: "console",
		},
	}
}

// Load reads settings from a YAML file. A missing file yields the defaults;
// environment overrides are applied in both cases.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(EnvStrategy); v != "" {
		c.Strategy = v
	}
	if v := os.Getenv(EnvFormat); v != "" {
		c.Output.Format = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
}

// Validate checks the strategy and output format.
func (c *Config) Validate() error {
	if _, err := bnb.ParseStrategy(c.Strategy); err != nil {
		return err
	}

	return ValidateFormat(c.Output.Format)
}

// ValidateFormat accepts text, json and yaml.
func ValidateFormat(f string) error {
	switch f {
	case FormatText, FormatJSON, FormatYAML:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

// ParsedStrategy returns the configured strategy.
func (c *Config) ParsedStrategy() (bnb.Strategy, error) {
	return bnb.ParseStrategy(c.Strategy)
}

// Instance is a knapsack problem as stored on disk.
//
//	capacity: 20
//	strategy: zeroes-first   # optional, overrides the config
//	items:
//	  - {id: A, weight: 10, value: 25}
type Instance struct {
	Capacity float64        `yaml:"capacity"`
	Strategy string         `yaml:"strategy,omitempty"`
	Items    []catalog.Item `yaml:"items"`
}

// LoadInstance reads and validates an instance file.
func LoadInstance(path string) (*Instance, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read instance: %w", err)
	}

	return ParseInstance(data)
}

// ParseInstance decodes an instance from YAML and validates it.
func ParseInstance(data []byte) (*Instance, error) {
	var in Instance
	if err := yaml.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("failed to parse instance: %w", err)
	}
	if len(in.Items) == 0 {
		return nil, ErrNoItems
	}
	if in.Strategy != "" {
		if _, err := bnb.ParseStrategy(in.Strategy); err != nil {
			return nil, err
		}
	}
	if _, err := in.Catalog(); err != nil {
		return nil, err
	}

	return &in, nil
}

// Catalog builds the validated item catalog of the instance.
func (in *Instance) Catalog() (*catalog.Catalog, error) {
	return catalog.New(in.Items...)
}
