package simulation

import (
	"fmt"

	"github.com/olivierh59500/nbody-trails/physics"
)

// Bounds of the gravitational constant when adjusted live.
const (
	MinG = 1e-2
	MaxG = 1e9
)

// DefaultMaxDt caps a single step, so a stalled frame does not blow up the
// integration.
const DefaultMaxDt = 1.0 / 30

// Config holds the tunables of a World.
type Config struct {
	G              float64
	MaxDt          float64
	Params         physics.Params
	MaxTrailPoints int
	TrailSpacing   float64
	Seed           int64
	Preset         Preset
}

// DefaultConfig returns the stock settings.
func DefaultConfig() Config {
	return Config{
		G:              physics.DefaultG,
		MaxDt:          DefaultMaxDt,
		Params:         physics.DefaultParams(),
		MaxTrailPoints: physics.DefaultMaxTrailPoints,
		TrailSpacing:   physics.DefaultTrailSpacing,
		Preset:         DefaultPreset(),
	}
}

// Validate reports settings the simulation cannot run with.
func (c Config) Validate() error {
	if c.G <= 0 {
		return fmt.Errorf("gravitational constant must be positive, got %g", c.G)
	}
	if c.MaxDt <= 0 {
		return fmt.Errorf("max dt must be positive, got %g", c.MaxDt)
	}
	if c.Params.MinDistance <= 0 {
		return fmt.Errorf("min distance must be positive, got %g", c.Params.MinDistance)
	}
	if c.Params.PlanetMultiplier < 0 {
		return fmt.Errorf("planet multiplier must not be negative, got %g", c.Params.PlanetMultiplier)
	}
	if c.Params.OrbitSpeedScale <= 0 {
		return fmt.Errorf("orbit speed scale must be positive, got %g", c.Params.OrbitSpeedScale)
	}
	if c.MaxTrailPoints < 0 {
		return fmt.Errorf("trail cap must not be negative, got %d", c.MaxTrailPoints)
	}
	if err := c.Preset.Validate(); err != nil {
		return fmt.Errorf("preset: %w", err)
	}
	return nil
}
