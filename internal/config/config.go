package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/dyluth/acrylic/pkg/acrylic"
	"gopkg.in/yaml.v3"
)

// DefaultFile is the config file looked up in the working directory.
const DefaultFile = "acrylic.yml"

// tomlFile is looked up when DefaultFile is absent.
const tomlFile = "acrylic.toml"

// SchemeConfig holds the defaults for the scheme command
type SchemeConfig struct {
	Kind  string   `yaml:"kind,omitempty" toml:"kind,omitempty"`
	InRGB bool     `yaml:"in_rgb,omitempty" toml:"in_rgb,omitempty"`
	Fuzzy *float64 `yaml:"fuzzy,omitempty" toml:"fuzzy,omitempty"` // degrees of hue jitter, -1 picks one at random
}

// Config represents the top-level acrylic.yml (or acrylic.toml) configuration
type Config struct {
	Version  string              `yaml:"version" toml:"version"`
	Output   string              `yaml:"output,omitempty" toml:"output,omitempty"` // default, json or yaml
	Color    string              `yaml:"color,omitempty" toml:"color,omitempty"`   // auto, always or never
	Scheme   *SchemeConfig       `yaml:"scheme,omitempty" toml:"scheme,omitempty"`
	Palettes map[string][]string `yaml:"palettes,omitempty" toml:"palettes,omitempty"`

	palettes map[string][]*acrylic.Color
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{Version: "1.0"}
	// Validate only fills in defaults here.
	_ = cfg.Validate()
	return cfg
}

// DefaultPath returns the path of the config file in the working directory.
func DefaultPath() string {
	return DefaultFile
}

// Validate performs strict validation on the configuration and applies
// defaults for omitted fields.
func (c *Config) Validate() error {
	if c.Version != "1.0" {
		return fmt.Errorf("unsupported version: %s (expected: 1.0)", c.Version)
	}

	if c.Output == "" {
		c.Output = "default"
	}
	switch c.Output {
	case "default", "json", "yaml":
	default:
		return fmt.Errorf("invalid output: %s (must be 'default', 'json', or 'yaml')", c.Output)
	}

	if c.Color == "" {
		c.Color = "auto"
	}
	switch c.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("invalid color: %s (must be 'auto', 'always', or 'never')", c.Color)
	}

	if c.Scheme == nil {
		c.Scheme = &SchemeConfig{}
	}
	if c.Scheme.Kind == "" {
		c.Scheme.Kind = acrylic.Complementary.String()
	}
	if _, err := acrylic.ParseSchemeKind(c.Scheme.Kind); err != nil {
		return fmt.Errorf("scheme.kind: %w", err)
	}
	if f := c.Scheme.Fuzzy; f != nil && *f != acrylic.Random && (*f < 0 || *f > 360) {
		return fmt.Errorf("scheme.fuzzy must be between 0 and 360 (or -1 for random), got %g", *f)
	}

	c.palettes = make(map[string][]*acrylic.Color, len(c.Palettes))
	for name, entries := range c.Palettes {
		if len(entries) == 0 {
			return fmt.Errorf("palette '%s': no colors defined", name)
		}
		colors := make([]*acrylic.Color, 0, len(entries))
		for i, entry := range entries {
			col, err := acrylic.Parse(entry)
			if err != nil {
				return fmt.Errorf("palette '%s' entry %d (%q): %w", name, i, entry, err)
			}
			colors = append(colors, col)
		}
		c.palettes[name] = colors
	}

	return nil
}

// Palette returns the parsed colors of a named palette.
func (c *Config) Palette(name string) ([]*acrylic.Color, bool) {
	colors, ok := c.palettes[name]
	return colors, ok
}

// PaletteNames returns the palette names in sorted order.
func (c *Config) PaletteNames() []string {
	names := make([]string, 0, len(c.palettes))
	for name := range c.palettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Load reads and validates a config file. Files ending in .toml are read as
// TOML, everything else as YAML.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var config Config
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if err := toml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse TOML: %w", err)
		}
	} else if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// LoadOrDefault loads path when it is set. With an empty path it loads
// acrylic.yml or else acrylic.toml from the working directory, falling back
// to Default when neither exists.
func LoadOrDefault(path string) (*Config, error) {
	if path != "" {
		return Load(path)
	}
	for _, candidate := range []string{DefaultPath(), tomlFile} {
		cfg, err := Load(candidate)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		return cfg, err
	}
	return Default(), nil
}
