package simulation

import (
	"errors"
	"fmt"
)

// PlanetSpec places one planet of a preset.
type PlanetSpec struct {
	Name       string   `mapstructure:"name" json:"name"`
	Mass       float64  `mapstructure:"mass" json:"mass"`
	Radius     float64  `mapstructure:"radius" json:"radius"`
	RateFactor float64  `mapstructure:"rate_factor" json:"rate_factor"`
	Angle      *float64 `mapstructure:"angle" json:"angle,omitempty"` // radians, random when unset
}

// Preset is a sun with planets on fixed circular orbits.
type Preset struct {
	SunMass float64      `mapstructure:"sun_mass" json:"sun_mass"`
	Planets []PlanetSpec `mapstructure:"planets" json:"planets"`
}

// DefaultPreset returns the built-in solar system.
func DefaultPreset() Preset {
	return Preset{
		SunMass: 100,
		Planets: []PlanetSpec{
			{Name: "mercury", Mass: 2, Radius: 60, RateFactor: 1},
			{Name: "venus", Mass: 4, Radius: 100, RateFactor: 1},
			{Name: "earth", Mass: 5, Radius: 150, RateFactor: 1},
			{Name: "mars", Mass: 3, Radius: 200, RateFactor: 1},
			{Name: "jupiter", Mass: 20, Radius: 280, RateFactor: 1},
			{Name: "saturn", Mass: 15, Radius: 360, RateFactor: 1},
		},
	}
}

// Validate checks that every orbit can be computed.
func (p Preset) Validate() error {
	if p.SunMass <= 0 {
		return errors.New("sun mass must be positive")
	}
	for i, pl := range p.Planets {
		if pl.Radius <= 0 {
			return fmt.Errorf("planet %d (%s): orbit radius must be positive", i, pl.Name)
		}
		if pl.RateFactor < 0 {
			return fmt.Errorf("planet %d (%s): rate factor must not be negative", i, pl.Name)
		}
	}
	return nil
}
