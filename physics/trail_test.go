package physics

import (
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r2"
)

func TestTrailFirstPoint(t *testing.T) {
	tr := NewTrail(10, DefaultTrailSpacing)
	if _, ok := tr.Last(); ok {
		t.Fatal("empty trail reported a last point")
	}
	tr.Record(r2.Vec{X: 100, Y: 100})
	if tr.Len() != 1 {
		t.Fatalf("expected 1 point, got %d", tr.Len())
	}
}

func TestTrailShortStep(t *testing.T) {
	tr := NewTrail(10, DefaultTrailSpacing)
	tr.Record(r2.Vec{})
	tr.Record(r2.Vec{X: 0.3, Y: 0.4})
	if tr.Len() != 2 {
		t.Fatalf("expected 2 points, got %d", tr.Len())
	}
	if last, _ := tr.Last(); last != (r2.Vec{X: 0.3, Y: 0.4}) {
		t.Fatalf("last point %+v", last)
	}
}

func TestTrailInterpolation(t *testing.T) {
	tr := NewTrail(DefaultMaxTrailPoints, DefaultTrailSpacing)
	from := r2.Vec{X: 1, Y: 2}
	to := r2.Vec{X: 7, Y: 10} // distance 10
	tr.Record(from)
	tr.Record(to)

	pts := tr.Points()
	if len(pts) != 1+20 {
		t.Fatalf("expected 20 added points, got %d", len(pts)-1)
	}
	added := pts[1:]
	for i, p := range added {
		d := r2.Norm(r2.Sub(p, from))
		if !scalar.EqualWithinAbs(d, float64(i+1)*0.5, 1e-9) {
			t.Errorf("point %d at distance %g from start, expected %g", i, d, float64(i+1)*0.5)
		}
		// Collinear with the segment.
		cross := (p.X-from.X)*(to.Y-from.Y) - (p.Y-from.Y)*(to.X-from.X)
		if !scalar.EqualWithinAbs(cross, 0, 1e-9) {
			t.Errorf("point %d off the segment: %+v", i, p)
		}
		if i < len(added)-1 && (p.X <= from.X || p.X >= to.X || p.Y <= from.Y || p.Y >= to.Y) {
			t.Errorf("point %d not strictly between endpoints: %+v", i, p)
		}
	}
	if added[len(added)-1] != to {
		t.Errorf("last point %+v, expected %+v", added[len(added)-1], to)
	}
}

func TestTrailCap(t *testing.T) {
	const limit = 50
	tr := NewTrail(limit, DefaultTrailSpacing)
	for i := 0; i < 10*limit+7; i++ {
		tr.Record(r2.Vec{X: float64(i) * 0.1})
		if tr.Len() > limit {
			t.Fatalf("step %d: length %d exceeds cap", i, tr.Len())
		}
	}
	pts := tr.Points()
	if len(pts) != limit {
		t.Fatalf("expected %d points, got %d", limit, len(pts))
	}
	first := float64(10*limit+7-limit) * 0.1
	for i, p := range pts {
		if !scalar.EqualWithinAbs(p.X, first+float64(i)*0.1, 1e-9) {
			t.Fatalf("point %d = %g, expected %g", i, p.X, first+float64(i)*0.1)
		}
	}
}

func TestTrailCapSingleJump(t *testing.T) {
	tr := NewTrail(5, DefaultTrailSpacing)
	tr.Record(r2.Vec{})
	tr.Record(r2.Vec{X: 100})
	pts := tr.Points()
	if len(pts) != 5 {
		t.Fatalf("expected 5 points, got %d", len(pts))
	}
	for i, want := range []float64{98, 98.5, 99, 99.5, 100} {
		if !scalar.EqualWithinAbs(pts[i].X, want, 1e-9) {
			t.Errorf("point %d = %g, expected %g", i, pts[i].X, want)
		}
	}
}

func TestTrailReset(t *testing.T) {
	tr := NewTrail(3, DefaultTrailSpacing)
	tr.Record(r2.Vec{X: 1})
	tr.Record(r2.Vec{X: 1.2})
	tr.Reset()
	if tr.Len() != 0 || len(tr.Points()) != 0 {
		t.Fatalf("trail not empty after reset: %d", tr.Len())
	}
	tr.Record(r2.Vec{X: 50})
	if tr.Len() != 1 {
		t.Fatalf("reset trail should restart from a single point, got %d", tr.Len())
	}
}

func TestTrailZeroCapacity(t *testing.T) {
	tr := NewTrail(0, DefaultTrailSpacing)
	tr.Record(r2.Vec{X: 1})
	if tr.Len() != 0 {
		t.Fatalf("zero-capacity trail recorded %d points", tr.Len())
	}
}
