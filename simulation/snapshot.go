package simulation

import "gonum.org/v1/gonum/spatial/r2"

// Circle is an orbit path drawn by the renderer.
type Circle struct {
	Center r2.Vec  `json:"center"`
	Radius float64 `json:"radius"`
}

// BodyView is the read-only state of a body exposed to consumers.
type BodyView struct {
	Pos      r2.Vec   `json:"pos"`
	Vel      r2.Vec   `json:"vel"`
	Mass     float64  `json:"mass"`
	Radius   float64  `json:"radius"`
	Category string   `json:"category"`
	Orbit    *Circle  `json:"orbit,omitempty"`
	Trail    []r2.Vec `json:"trail,omitempty"`
}

// Snapshot is the body collection at the end of a tick.
type Snapshot struct {
	Tick   uint64     `json:"tick"`
	G      float64    `json:"g"`
	Bodies []BodyView `json:"bodies"`
}

// Snapshot copies the current state. Trails are included only when
// withTrails is set.
func (w *World) Snapshot(withTrails bool) Snapshot {
	s := Snapshot{
		Tick:   w.Ticks,
		G:      w.G,
		Bodies: make([]BodyView, 0, len(w.Bodies)),
	}
	for _, b := range w.Bodies {
		v := BodyView{
			Pos:      b.Pos,
			Vel:      b.Vel,
			Mass:     b.Mass,
			Radius:   b.Radius,
			Category: b.Category.String(),
		}
		if b.Orbit != nil {
			if c := w.Body(b.Orbit.Center); c != nil {
				v.Orbit = &Circle{Center: c.Pos, Radius: b.Orbit.Radius}
			}
		}
		if withTrails {
			v.Trail = append([]r2.Vec(nil), b.Trail.Points()...)
		}
		s.Bodies = append(s.Bodies, v)
	}
	return s
}
