package gear

import (
	"errors"
	"math"
	"testing"
)

func TestSpecRadii(t *testing.T) {
	for _, test := range []struct {
		teeth     int
		module    float64
		pa        float64
		clearance float64
	}{
		{12, 1, 20, 0},
		{12, 2.5, 20, 0.1},
		{18, 1, 14.5, 0},
		{48, 0.5, 25, 0.05},
		{200, 1, 20, 0},
	} {
		s, err := New(test.teeth, test.module, test.pa, test.clearance)
		if err != nil {
			t.Fatalf("New(%d, %g, %g, %g): %v", test.teeth, test.module, test.pa, test.clearance, err)
		}
		pitch := s.PitchRadius()
		if want := test.module * float64(test.teeth) / 2; math.Abs(pitch-want) > 1e-12 {
			t.Errorf("PitchRadius = %g, want %g", pitch, want)
		}
		base := s.BaseRadius()
		if want := pitch * math.Cos(test.pa*math.Pi/180); math.Abs(base-want) > 1e-12 {
			t.Errorf("BaseRadius = %g, want %g", base, want)
		}
		// invariant ordering of the derived radii; the root circle may
		// sit above or below the base circle depending on tooth count
		if !(0 < s.RootRadius() && s.RootRadius() < pitch && base < pitch && pitch < s.OuterRadius()) {
			t.Errorf("radius ordering violated: root=%g base=%g pitch=%g outer=%g",
				s.RootRadius(), base, pitch, s.OuterRadius())
		}
		if want := pitch + test.module; math.Abs(s.OuterRadius()-want) > 1e-12 {
			t.Errorf("OuterRadius = %g, want %g", s.OuterRadius(), want)
		}
		if want := pitch - test.module - test.clearance; math.Abs(s.RootRadius()-want) > 1e-12 {
			t.Errorf("RootRadius = %g, want %g", s.RootRadius(), want)
		}
	}
}

func TestSpecDeterministic(t *testing.T) {
	a, err := New(17, 1.25, 20, 0.02)
	if err != nil {
		t.Fatal(err)
	}
	b, err := New(17, 1.25, 20, 0.02)
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Errorf("identical inputs gave different specs: %+v != %+v", a, b)
	}
	if a.OuterRadius() != b.OuterRadius() || a.RootRadius() != b.RootRadius() {
		t.Error("identical specs gave different derived radii")
	}
}

func TestSpecValidate(t *testing.T) {
	for _, test := range []struct {
		name      string
		teeth     int
		module    float64
		pa        float64
		clearance float64
		param     string
	}{
		{"too few teeth", 3, 1, 20, 0, "teeth"},
		{"zero module", 12, 0, 20, 0, "module"},
		{"negative module", 12, -1, 20, 0, "module"},
		{"zero pressure angle", 12, 1, 0, 0, "pressureAngleDeg"},
		{"pressure angle too steep", 12, 1, 50, 0, "pressureAngleDeg"},
		{"negative clearance", 12, 1, 20, -0.1, "clearance"},
	} {
		_, err := New(test.teeth, test.module, test.pa, test.clearance)
		var perr *ParameterError
		if !errors.As(err, &perr) {
			t.Errorf("%s: got %v, want ParameterError", test.name, err)
			continue
		}
		if perr.Name != test.param {
			t.Errorf("%s: error names %q, want %q", test.name, perr.Name, test.param)
		}
	}
}

func TestSpecRootRadiusPositive(t *testing.T) {
	// teeth=4, module=1: pitch=2, dedendum=1+1.5 leaves root=-0.5.
	_, err := New(4, 1, 20, 1.5)
	var gerr *GeometryError
	if !errors.As(err, &gerr) {
		t.Fatalf("got %v, want GeometryError", err)
	}
}
