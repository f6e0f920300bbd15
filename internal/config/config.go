// SPDX-License-Identifier: MIT

// Package config loads the riemann CLI configuration from a TOML or YAML file.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/riemann/cnum"
	"github.com/katalvlaran/riemann/mobius"
	"github.com/katalvlaran/riemann/sphere"
)

// EnvVar names the environment variable consulted by LoadFromEnv.
const EnvVar = "RIEMANN_CONFIG"

var (
	// ErrInvalidConfig is returned when a loaded file fails validation.
	ErrInvalidConfig = errors.New("config: invalid configuration")

	// ErrUnknownFormat is returned for a file extension other than
	// .toml, .yaml or .yml.
	ErrUnknownFormat = errors.New("config: unknown file format")

	// ErrUnknownTransform is returned by Transform for an undeclared name.
	ErrUnknownTransform = errors.New("config: unknown transform")
)

// Format selects how the CLI prints numbers.
type Format string

const (
	FormatCartesian Format = "cartesian"
	FormatPolar     Format = "polar"
)

// Config holds the complete CLI configuration.
type Config struct {
	Division   cnum.DivisionMode       `toml:"division_mode" yaml:"division_mode"`
	Epsilon    *float64                `toml:"epsilon" yaml:"epsilon"`
	Format     Format                  `toml:"format" yaml:"format"`
	Pole       sphere.Pole             `toml:"pole" yaml:"pole"`
	Transforms map[string]Coefficients `toml:"transforms" yaml:"transforms"`
}

// Coefficients holds the four coefficients of a named Möbius transform,
// written as number literals ("1", "2-i", "3*exp(0.5)").
type Coefficients struct {
	A cnum.Number `toml:"a" yaml:"a"`
	B cnum.Number `toml:"b" yaml:"b"`
	C cnum.Number `toml:"c" yaml:"c"`
	D cnum.Number `toml:"d" yaml:"d"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from path. The decoder is chosen by extension.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	default:
		return nil, fmt.Errorf("%s: %w", path, ErrUnknownFormat)
	}

	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadFromEnv loads the file named by RIEMANN_CONFIG, falling back to
// ./riemann.toml and ./riemann.yaml. With no file found it returns Default.
func LoadFromEnv() (*Config, error) {
	path := os.Getenv(EnvVar)
	if path == "" {
		for _, p := range []string{"./riemann.toml", "./riemann.yaml"} {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.Epsilon == nil {
		eps := cnum.DefaultEpsilon
		c.Epsilon = &eps
	}
	if c.Format == "" {
		c.Format = FormatCartesian
	}
	c.Format = Format(strings.ToLower(string(c.Format)))
	if c.Transforms == nil {
		c.Transforms = map[string]Coefficients{}
	}
}

func (c *Config) validate() error {
	if eps := *c.Epsilon; math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		return fmt.Errorf("epsilon %v: %w", eps, ErrInvalidConfig)
	}
	if c.Format != FormatCartesian && c.Format != FormatPolar {
		return fmt.Errorf("format %q: %w", c.Format, ErrInvalidConfig)
	}
	for _, name := range c.TransformNames() {
		if _, err := c.Transform(name); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}
	return nil
}

// Options returns the cnum options described by c.
func (c *Config) Options() []cnum.Option {
	return []cnum.Option{
		cnum.WithDivisionMode(c.Division),
		cnum.WithEpsilon(*c.Epsilon),
	}
}

// Apply installs the numeric policy of c and returns the previous one.
func (c *Config) Apply() cnum.Policy {
	return cnum.Configure(c.Options()...)
}

// FormatNumber prints z in the configured format.
func (c *Config) FormatNumber(z cnum.Number) string {
	if c.Format == FormatPolar {
		return z.StringPolar()
	}
	return z.String()
}

// TransformNames returns the declared transform names in sorted order.
func (c *Config) TransformNames() []string {
	names := make([]string, 0, len(c.Transforms))
	for name := range c.Transforms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Transform builds the named Möbius transform.
func (c *Config) Transform(name string) (mobius.Transformation, error) {
	k, ok := c.Transforms[name]
	if !ok {
		return mobius.Transformation{}, fmt.Errorf("%q: %w", name, ErrUnknownTransform)
	}
	t, err := mobius.New(k.A, k.B, k.C, k.D)
	if err != nil {
		return mobius.Transformation{}, fmt.Errorf("transform %q: %w", name, err)
	}
	return t, nil
}
