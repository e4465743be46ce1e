package generator

import (
	"math"

	"worldofbits/pkg/engine/world"
	"worldofbits/pkg/game/token"
)

// Default generation parameters
const (
	DefaultSpawnChance = 0.25
	DefaultMaxLevel    = 3
)

// Tags mixed into the cell hash so that the spawn roll and the value roll are
// independent draws.
const (
	tagSpawn = "spawn"
	tagValue = "value"
)

// Generator derives the initial token for a cell. Implementations must be
// pure: the same cell always yields the same value, whatever was asked before.
type Generator interface {
	Generate(c world.Cell) token.Value
	Name() string
}

// Hashed generates tokens from a seeded hash of the cell coordinates
type Hashed struct {
	Seed        int64
	SpawnChance float64
	MaxLevel    int
}

// NewHashed returns a hashed generator with the default spawn parameters
func NewHashed(seed int64) *Hashed {
	return &Hashed{
		Seed:        seed,
		SpawnChance: DefaultSpawnChance,
		MaxLevel:    DefaultMaxLevel,
	}
}

// DefaultGenerator is the generator used when none is configured
var DefaultGenerator Generator = NewHashed(0)

// Name implements Generator
func (h *Hashed) Name() string {
	return "hashed"
}

// Generate implements Generator
func (h *Hashed) Generate(c world.Cell) token.Value {
	if world.Unit(h.Seed, c.I, c.J, tagSpawn) >= h.SpawnChance {
		return token.Empty
	}
	maxLevel := h.MaxLevel
	if maxLevel < 1 {
		maxLevel = DefaultMaxLevel
	}
	r := world.Unit(h.Seed, c.I, c.J, tagValue)
	level := 1 + int(math.Floor(r*float64(maxLevel)))
	return token.FromLevel(level)
}
