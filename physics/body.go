// Package physics holds the force engine and motion integrator of the
// simulation: pairwise attraction, force accumulation, semi-implicit Euler
// integration, kinematic circular orbits and trail recording.
package physics

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
)

// Category is the closed set of body kinds.
type Category uint8

const (
	Free Category = iota
	Sun
	Planet
)

func (c Category) String() string {
	switch c {
	case Free:
		return "free"
	case Sun:
		return "sun"
	case Planet:
		return "planet"
	}
	return fmt.Sprintf("category(%d)", uint8(c))
}

// Radius returns the drawing radius for bodies of this category.
func (c Category) Radius() float64 {
	switch c {
	case Sun:
		return 10
	case Planet:
		return 4
	default:
		return 1.5
	}
}

// Handle refers to a body by its index in the owning collection.
type Handle int

// NoHandle is the zero reference.
const NoHandle Handle = -1

// Orbit locks a body onto a circle around another body.
type Orbit struct {
	Radius     float64
	RateFactor float64
	Center     Handle
	Angle      float64
}

// Body is a point mass.
type Body struct {
	Pos, Vel, Acc r2.Vec
	Mass          float64
	Radius        float64
	Category      Category
	Orbit         *Orbit // nil unless kinematically orbit-locked
	Trail         Trail
}

// NewBody creates a body at rest. A non-positive mass becomes 1.
func NewBody(pos r2.Vec, mass float64, cat Category, maxTrail int) *Body {
	if mass <= 0 {
		mass = 1
	}
	return &Body{
		Pos:      pos,
		Mass:     mass,
		Radius:   cat.Radius(),
		Category: cat,
		Trail:    NewTrail(maxTrail, DefaultTrailSpacing),
	}
}

// NewParticle creates the body spawned by a user click.
func NewParticle(x, y float64, maxTrail int) *Body {
	return NewBody(r2.Vec{X: x, Y: y}, 1, Free, maxTrail)
}

// OrbitLocked reports whether the body moves kinematically.
func (b *Body) OrbitLocked() bool {
	return b.Orbit != nil
}

// ApplyForce accumulates f into the acceleration. Only free, non-orbiting
// bodies respond; for everything else it does nothing.
func (b *Body) ApplyForce(f r2.Vec) {
	if b.Category != Free || b.Orbit != nil {
		return
	}
	b.Acc = r2.Add(b.Acc, r2.Scale(1/b.Mass, f))
}

func (b *Body) String() string {
	return fmt.Sprintf("%s m=%.3g p=(%.2f, %.2f) v=(%.2f, %.2f)",
		b.Category, b.Mass, b.Pos.X, b.Pos.Y, b.Vel.X, b.Vel.Y)
}
