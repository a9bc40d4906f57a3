package physics

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r2"
)

// Integrate advances b by dt and records its new position on the trail.
//
// Free bodies use semi-implicit Euler on the accumulated acceleration, which
// is cleared afterwards. Orbit-locked bodies advance their angle and take
// position and velocity straight from it, so they never drift off the
// circle. center must be the body referenced by b.Orbit.Center; when it is
// nil an orbit-locked body keeps its current state.
func (p Params) Integrate(b *Body, dt float64, center *Body) {
	if b.Orbit == nil {
		b.Vel = r2.Add(b.Vel, r2.Scale(dt, b.Acc))
		b.Pos = r2.Add(b.Pos, r2.Scale(dt, b.Vel))
		b.Acc = r2.Vec{}
	} else if center != nil {
		o := b.Orbit
		o.Angle += p.OrbitalSpeed(o, center) / o.Radius * dt
		p.PlaceOnOrbit(b, center)
	}
	b.Trail.Record(b.Pos)
}

// OrbitalSpeed is the tangential speed along an orbit around center. The
// angle advances by this speed over the radius per unit time.
func (p Params) OrbitalSpeed(o *Orbit, center *Body) float64 {
	return math.Sqrt(center.Mass * p.OrbitSpeedScale * o.RateFactor / o.Radius)
}

// PlaceOnOrbit sets b's position and velocity from its orbit angle.
func (p Params) PlaceOnOrbit(b *Body, center *Body) {
	o := b.Orbit
	sin, cos := math.Sincos(o.Angle)
	b.Pos = r2.Add(center.Pos, r2.Vec{X: o.Radius * cos, Y: o.Radius * sin})
	b.Vel = r2.Scale(p.OrbitalSpeed(o, center), r2.Vec{X: -sin, Y: cos})
	b.Acc = r2.Vec{}
}

// OrbitSpec describes a body to be placed on a circular orbit.
type OrbitSpec struct {
	Category   Category
	Mass       float64
	Radius     float64
	RateFactor float64
	// Angle is the starting angle in radians. Nil picks one uniformly in
	// [0, 2π).
	Angle *float64
}

// NewOrbiter creates a body locked onto an orbit around center, which is
// found at handle c in the owning collection.
func (p Params) NewOrbiter(spec OrbitSpec, c Handle, center *Body, maxTrail int, rng *rand.Rand) *Body {
	b := NewBody(center.Pos, spec.Mass, spec.Category, maxTrail)
	var angle float64
	switch {
	case spec.Angle != nil:
		angle = *spec.Angle
	case rng != nil:
		angle = rng.Float64() * 2 * math.Pi
	default:
		angle = rand.Float64() * 2 * math.Pi
	}
	rate := spec.RateFactor
	if rate <= 0 {
		rate = 1
	}
	b.Orbit = &Orbit{Radius: spec.Radius, RateFactor: rate, Center: c, Angle: angle}
	p.PlaceOnOrbit(b, center)
	return b
}
