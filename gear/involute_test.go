package gear

import (
	"errors"
	"math"
	"testing"
)

func TestInvoluteRadius(t *testing.T) {
	const base = 2.5
	pts, err := Involute(base, 0, 1.5, 16)
	if err != nil {
		t.Fatal(err)
	}
	if len(pts) != 16 {
		t.Fatalf("got %d points, want 16", len(pts))
	}
	for i, p := range pts {
		tt := 1.5 * float64(i) / 15
		want := base * math.Sqrt(1+tt*tt)
		got := math.Hypot(p.X, p.Y)
		if math.Abs(got-want) > 1e-12 {
			t.Errorf("point %d: |p| = %g, want %g", i, got, want)
		}
	}
	// the roll angle 0 point lies on the base circle at angle 0
	if math.Abs(pts[0].X-base) > 1e-12 || math.Abs(pts[0].Y) > 1e-12 {
		t.Errorf("start point = %v, want (%g, 0)", pts[0], base)
	}
}

func TestInvoluteErrors(t *testing.T) {
	if _, err := Involute(0, 0, 1, 8); err == nil {
		t.Error("expected error for zero base radius")
	}
	if _, err := Involute(1, 0, 1, 1); err == nil {
		t.Error("expected error for single sample")
	}
}

func TestRollAngle(t *testing.T) {
	const base = 3.0
	for _, radius := range []float64{base, 3.5, 4, 6} {
		tt, err := RollAngle(base, radius)
		if err != nil {
			t.Fatal(err)
		}
		if got := base * math.Sqrt(1+tt*tt); math.Abs(got-radius) > 1e-12 {
			t.Errorf("RollAngle(%g, %g) = %g does not invert: radius(t) = %g", base, radius, tt, got)
		}
	}
	_, err := RollAngle(base, 2.9)
	var gerr *GeometryError
	if !errors.As(err, &gerr) {
		t.Errorf("inside base circle: got %v, want GeometryError", err)
	}
}

func TestFlankRange(t *testing.T) {
	s, err := New(12, 1, 20, 0)
	if err != nil {
		t.Fatal(err)
	}
	t0, t1, err := FlankRange(s)
	if err != nil {
		t.Fatal(err)
	}
	if t0 < 0 || t1 <= t0 {
		t.Errorf("bad flank range [%g, %g]", t0, t1)
	}
	base := s.BaseRadius()
	if got := base * math.Sqrt(1+t1*t1); math.Abs(got-s.OuterRadius()) > 1e-12 {
		t.Errorf("flank end reaches radius %g, want outer radius %g", got, s.OuterRadius())
	}
	// root below base: the flank starts at the base circle itself
	if t0 != 0 {
		t.Errorf("t0 = %g, want 0 with root below base", t0)
	}

	// large tooth count puts the root above the base circle
	s, err = New(60, 1, 20, 0)
	if err != nil {
		t.Fatal(err)
	}
	t0, _, err = FlankRange(s)
	if err != nil {
		t.Fatal(err)
	}
	if got := base2Radius(s, t0); math.Abs(got-s.RootRadius()) > 1e-12 {
		t.Errorf("flank start reaches radius %g, want root radius %g", got, s.RootRadius())
	}
}

func base2Radius(s Spec, t float64) float64 {
	return s.BaseRadius() * math.Sqrt(1+t*t)
}
