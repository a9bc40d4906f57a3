package physics

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Tuned visual constants. They are not physically derived.
const (
	DefaultG                     = 1000.0
	DefaultMinDistance           = 20.0
	DefaultPlanetForceMultiplier = 5.0
	DefaultOrbitSpeedScale       = 1000.0
	DefaultMaxTrailPoints        = 3000
	DefaultTrailSpacing          = 0.5
)

// Params are the tunable constants of the force engine and the integrator.
type Params struct {
	MinDistance      float64 // separation floor used by Attract
	PlanetMultiplier float64 // force scale when a planet takes part
	OrbitSpeedScale  float64 // mass scale inside the orbital speed
}

// DefaultParams returns the stock tuning.
func DefaultParams() Params {
	return Params{
		MinDistance:      DefaultMinDistance,
		PlanetMultiplier: DefaultPlanetForceMultiplier,
		OrbitSpeedScale:  DefaultOrbitSpeedScale,
	}
}

// excluded reports pairs that never attract: anything involving a sun, and
// planet-planet pairs.
func excluded(a, b Category) bool {
	if a == Sun || b == Sun {
		return true
	}
	return a == Planet && b == Planet
}

// Attract returns the force exerted on a by b. The vector points from a
// toward b; the reaction on b is its negation. Below MinDistance the
// inverse-square term is frozen at the floor while the true offset still
// scales the vector, so the force fades linearly to zero at contact.
func (p Params) Attract(a, b *Body, g float64) r2.Vec {
	if excluded(a.Category, b.Category) {
		return r2.Vec{}
	}
	d := r2.Sub(b.Pos, a.Pos)
	dist := math.Max(r2.Norm(d), p.MinDistance)

	mult := 1.0
	if a.Category == Planet || b.Category == Planet {
		mult = p.PlanetMultiplier
	}
	f := g * mult * a.Mass * b.Mass / (dist * dist)
	return r2.Scale(f/dist, d)
}

// Attract is Params.Attract with the default tuning.
func Attract(a, b *Body, g float64) r2.Vec {
	return DefaultParams().Attract(a, b, g)
}

// AccumulateForces applies the mutual attraction of every unordered pair to
// both bodies' accumulators.
func (p Params) AccumulateForces(bodies []*Body, g float64) {
	for i := 0; i < len(bodies); i++ {
		for j := i + 1; j < len(bodies); j++ {
			f := p.Attract(bodies[i], bodies[j], g)
			bodies[i].ApplyForce(f)
			bodies[j].ApplyForce(r2.Scale(-1, f))
		}
	}
}
