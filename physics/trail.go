package physics

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Trail is a bounded FIFO of recorded positions. Once full, the oldest
// points are evicted first.
type Trail struct {
	buf     []r2.Vec
	start   int
	max     int
	spacing float64
}

// NewTrail returns a trail keeping at most limit points. Jumps longer than
// spacing are filled with interpolated points.
func NewTrail(limit int, spacing float64) Trail {
	if limit < 0 {
		limit = 0
	}
	if spacing <= 0 {
		spacing = DefaultTrailSpacing
	}
	return Trail{max: limit, spacing: spacing}
}

// Max is the capacity of the trail.
func (t *Trail) Max() int { return t.max }

func (t *Trail) Len() int { return len(t.buf) - t.start }

// Points returns the live points, oldest first. The slice aliases the
// trail's storage and is only valid until the next Record or Reset.
func (t *Trail) Points() []r2.Vec {
	return t.buf[t.start:]
}

// Last returns the most recent point.
func (t *Trail) Last() (r2.Vec, bool) {
	if t.Len() == 0 {
		return r2.Vec{}, false
	}
	return t.buf[len(t.buf)-1], true
}

func (t *Trail) Reset() {
	t.buf = t.buf[:0]
	t.start = 0
}

// Record appends p, filling long jumps with evenly spaced points so fast
// bodies still draw as smooth curves.
func (t *Trail) Record(p r2.Vec) {
	if t.max == 0 {
		return
	}
	last, ok := t.Last()
	if !ok {
		t.push(p)
		return
	}
	delta := r2.Sub(p, last)
	dist := r2.Norm(delta)
	if dist <= t.spacing {
		t.push(p)
		return
	}
	n := int(math.Ceil(dist / t.spacing))
	for i := 1; i <= n; i++ {
		if i == n {
			t.push(p)
			break
		}
		t.push(r2.Add(last, r2.Scale(float64(i)/float64(n), delta)))
	}
}

func (t *Trail) push(p r2.Vec) {
	t.buf = append(t.buf, p)
	if t.Len() > t.max {
		t.start = len(t.buf) - t.max
	}
	// Compact once the dead prefix is as large as the live window.
	if t.start >= t.max {
		n := copy(t.buf, t.buf[t.start:])
		t.buf = t.buf[:n]
		t.start = 0
	}
}
