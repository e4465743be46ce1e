// Package config loads the game's tuning from YAML. Every field has a default
// matching the reference game, so an absent file is not an error.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"worldofbits/pkg/engine/world"
	"worldofbits/pkg/game/generator"
	"worldofbits/pkg/game/locale"
	"worldofbits/pkg/game/viewport"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid config")

// Reference gameplay constants
const (
	DefaultInteractRadius = 3
	DefaultTargetValue    = 16
)

// Classroom is the reference start location
var Classroom = world.LatLng{Lat: 36.997936938, Lng: -122.057035075}

type Config struct {
	Tile           float64 `yaml:"tile"`
	GridRadius     int     `yaml:"grid_radius"`
	InteractRadius int     `yaml:"interact_radius"`
	TargetValue    int     `yaml:"target_value"`

	Seed        int64   `yaml:"seed"`
	SpawnChance float64 `yaml:"spawn_chance"`
	MaxLevel    int     `yaml:"max_level"`

	Start  Position `yaml:"start"`
	Locale string   `yaml:"locale"`
}

type Position struct {
	Lat float64 `yaml:"lat"`
	Lng float64 `yaml:"lng"`
}

// Defaults returns the reference configuration
func Defaults() Config {
	return Config{
		Tile:           world.DefaultTile,
		GridRadius:     viewport.DefaultRadius,
		InteractRadius: DefaultInteractRadius,
		TargetValue:    DefaultTargetValue,
		SpawnChance:    generator.DefaultSpawnChance,
		MaxLevel:       generator.DefaultMaxLevel,
		Start:          Position{Lat: Classroom.Lat, Lng: Classroom.Lng},
		Locale:         locale.DefaultLanguage,
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Defaults()
	if strings.TrimSpace(path) == "" {
		cfg.Normalize()
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Normalize cleans up free-form fields. Numeric fields are taken as given:
// Load decodes onto Defaults, so omitted keys keep their default and an
// explicit 0 stays 0 for Validate to judge.
func (c *Config) Normalize() {
	c.Locale = strings.ToLower(strings.TrimSpace(c.Locale))
	if c.Locale == "" {
		c.Locale = locale.DefaultLanguage
	}
}

// Validate checks ranges
func (c Config) Validate() error {
	switch {
	case c.Tile <= 0 || math.IsNaN(c.Tile) || math.IsInf(c.Tile, 0):
		return fmt.Errorf("%w: tile must be positive, got %v", ErrInvalid, c.Tile)
	case c.GridRadius < 0:
		return fmt.Errorf("%w: grid_radius must not be negative, got %d", ErrInvalid, c.GridRadius)
	case c.InteractRadius < 0:
		return fmt.Errorf("%w: interact_radius must not be negative, got %d", ErrInvalid, c.InteractRadius)
	case c.TargetValue < 2 || c.TargetValue&(c.TargetValue-1) != 0:
		return fmt.Errorf("%w: target_value must be a power of two >= 2, got %d", ErrInvalid, c.TargetValue)
	case c.SpawnChance < 0 || c.SpawnChance > 1:
		return fmt.Errorf("%w: spawn_chance must be within [0,1], got %v", ErrInvalid, c.SpawnChance)
	case c.MaxLevel < 1 || c.MaxLevel > 30:
		return fmt.Errorf("%w: max_level must be within [1,30], got %d", ErrInvalid, c.MaxLevel)
	case c.Start.Lat < -90 || c.Start.Lat > 90 || c.Start.Lng < -180 || c.Start.Lng > 180:
		return fmt.Errorf("%w: start (%v,%v) is not a valid position", ErrInvalid, c.Start.Lat, c.Start.Lng)
	}
	return nil
}

// Mapper returns the coordinate mapper for the configured tile size
func (c Config) Mapper() world.Mapper {
	return world.NewMapper(c.Tile)
}

// Generator returns the token generator for the configured seed
func (c Config) Generator() generator.Generator {
	return &generator.Hashed{
		Seed:        c.Seed,
		SpawnChance: c.SpawnChance,
		MaxLevel:    c.MaxLevel,
	}
}

// StartLatLng returns the configured start position
func (c Config) StartLatLng() world.LatLng {
	return world.LatLng{Lat: c.Start.Lat, Lng: c.Start.Lng}
}
