// Package simulation owns the body collection and drives it one tick at a
// time. A World is not safe for concurrent use; exactly one goroutine steps
// it and reads its snapshots.
package simulation

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/olivierh59500/nbody-trails/physics"
)

// World is the explicit simulation state handed to the host driver.
type World struct {
	Bodies []*physics.Body
	G      float64
	Params physics.Params
	MaxDt  float64
	Ticks  uint64

	cfg    Config
	logger log.Logger
	rng    *rand.Rand
}

// NewWorld creates an empty world. A zero seed seeds from the clock.
func NewWorld(cfg Config, logger log.Logger) *World {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &World{
		G:      cfg.G,
		Params: cfg.Params,
		MaxDt:  cfg.MaxDt,
		cfg:    cfg,
		logger: log.With(logger, "component", "world"),
		rng:    rand.New(rand.NewSource(seed)),
	}
}

func (w *World) Len() int { return len(w.Bodies) }

// Body resolves a handle, returning nil when it is out of range.
func (w *World) Body(h physics.Handle) *physics.Body {
	if h < 0 || int(h) >= len(w.Bodies) {
		return nil
	}
	return w.Bodies[h]
}

// AddBody appends b and returns its handle. An orbiting body must name a
// centre that is already in the world, so a body can never orbit itself or
// a body added after it.
func (w *World) AddBody(b *physics.Body) (physics.Handle, error) {
	if b == nil {
		return physics.NoHandle, fmt.Errorf("add body: nil body")
	}
	if b.Orbit != nil && w.Body(b.Orbit.Center) == nil {
		return physics.NoHandle, fmt.Errorf("add body: orbit centre %d is not an existing body (have %d)", b.Orbit.Center, len(w.Bodies))
	}
	return w.add(b), nil
}

func (w *World) add(b *physics.Body) physics.Handle {
	w.Bodies = append(w.Bodies, b)
	return physics.Handle(len(w.Bodies) - 1)
}

// AddParticle places a free body of unit mass at rest at (x, y).
func (w *World) AddParticle(x, y float64) physics.Handle {
	b := physics.NewParticle(x, y, w.cfg.MaxTrailPoints)
	b.Trail = w.newTrail()
	return w.add(b)
}

// Reset removes every body.
func (w *World) Reset() {
	n := len(w.Bodies)
	w.Bodies = nil
	level.Info(w.logger).Log("msg", "reset", "removed", n)
}

// LoadSolarSystem replaces the collection with the configured preset, the
// sun sitting at center.
func (w *World) LoadSolarSystem(center r2.Vec) {
	w.Bodies = nil
	p := w.cfg.Preset

	sun := physics.NewBody(center, p.SunMass, physics.Sun, w.cfg.MaxTrailPoints)
	sun.Trail = w.newTrail()
	h := w.add(sun)

	for _, pl := range p.Planets {
		b := w.Params.NewOrbiter(physics.OrbitSpec{
			Category:   physics.Planet,
			Mass:       pl.Mass,
			Radius:     pl.Radius,
			RateFactor: pl.RateFactor,
			Angle:      pl.Angle,
		}, h, sun, w.cfg.MaxTrailPoints, w.rng)
		b.Trail = w.newTrail()
		w.add(b)
	}
	level.Info(w.logger).Log("msg", "solar system loaded", "planets", len(p.Planets), "x", center.X, "y", center.Y)
}

// Step advances the world by dt seconds and returns the dt actually used:
// dt is clamped to [0, MaxDt]. Forces are accumulated over every unordered
// pair before any body moves.
func (w *World) Step(dt float64) float64 {
	dt = w.clampDt(dt)
	w.Ticks++
	if len(w.Bodies) == 0 {
		return dt
	}
	w.Params.AccumulateForces(w.Bodies, w.G)
	for _, b := range w.Bodies {
		var center *physics.Body
		if b.Orbit != nil {
			center = w.Body(b.Orbit.Center)
		}
		w.Params.Integrate(b, dt, center)
	}
	return dt
}

func (w *World) clampDt(dt float64) float64 {
	if dt < 0 || math.IsNaN(dt) {
		return 0
	}
	if dt > w.MaxDt {
		return w.MaxDt
	}
	return dt
}

// SetG sets the gravitational constant, clamped to [MinG, MaxG].
func (w *World) SetG(g float64) {
	if math.IsNaN(g) {
		return
	}
	g = math.Min(math.Max(g, MinG), MaxG)
	if g != w.G {
		w.G = g
		level.Debug(w.logger).Log("msg", "gravity changed", "g", g)
	}
}

// ScaleG moves G by the given number of decades on a log10 scale.
func (w *World) ScaleG(decades float64) {
	w.SetG(w.G * math.Pow(10, decades))
}

func (w *World) newTrail() physics.Trail {
	return physics.NewTrail(w.cfg.MaxTrailPoints, w.cfg.TrailSpacing)
}
