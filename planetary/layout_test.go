package planetary

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/kame404/planetary-gear-generator/gear"
)

func baseParams() Params {
	return Params{
		SunTeeth:         12,
		PlanetTeeth:      18,
		PlanetCount:      3,
		Module:           1,
		PressureAngleDeg: 20,
		Thickness:        5,
		RingMargin:       4,
	}
}

func TestSolve(t *testing.T) {
	p := baseParams()
	l, err := Solve(p)
	if err != nil {
		t.Fatal(err)
	}
	if l.RingTeeth != 48 {
		t.Errorf("RingTeeth = %d, want 48", l.RingTeeth)
	}
	if math.Abs(l.OrbitRadius-15) > 1e-12 {
		t.Errorf("OrbitRadius = %g, want 15", l.OrbitRadius)
	}
	if want := math.Pi / 12; math.Abs(l.SunAngle-want) > 1e-12 {
		t.Errorf("SunAngle = %g, want %g", l.SunAngle, want)
	}
	if len(l.PlanetAngles) != 3 || len(l.PlanetPhases) != 3 {
		t.Fatalf("got %d angles and %d phases, want 3 each", len(l.PlanetAngles), len(l.PlanetPhases))
	}
	for i, a := range l.PlanetAngles {
		if want := 2 * math.Pi * float64(i) / 3; math.Abs(a-want) > 1e-12 {
			t.Errorf("PlanetAngles[%d] = %g, want %g", i, a, want)
		}
	}
	// ring blank: pitch radius plus two modules plus the margin
	if want := 24 + 1*(2+4.0); math.Abs(l.RingBlankRadius-want) > 1e-12 {
		t.Errorf("RingBlankRadius = %g, want %g", l.RingBlankRadius, want)
	}
}

func TestSolveFourPlanets(t *testing.T) {
	p := baseParams()
	p.PlanetCount = 4
	l, err := Solve(p)
	if err != nil {
		t.Fatal(err)
	}
	if len(l.PlanetAngles) != 4 {
		t.Fatalf("got %d planets, want 4", len(l.PlanetAngles))
	}
}

func TestSolvePhases(t *testing.T) {
	p := baseParams()
	p.PlanetCount = 4
	l, err := Solve(p)
	if err != nil {
		t.Fatal(err)
	}
	toothPitch := 2 * math.Pi / float64(p.PlanetTeeth)
	ratio := float64(p.SunTeeth) / float64(p.PlanetTeeth)
	if l.PlanetPhases[0] != 0 {
		t.Errorf("PlanetPhases[0] = %g, want 0", l.PlanetPhases[0])
	}
	for i, phase := range l.PlanetPhases {
		if phase < 0 || phase >= toothPitch {
			t.Errorf("PlanetPhases[%d] = %g outside [0, %g)", i, phase, toothPitch)
		}
		// the phase differs from angle*ratio by a whole number of teeth
		k := (l.PlanetAngles[i]*ratio - phase) / toothPitch
		if math.Abs(k-math.Round(k)) > 1e-9 {
			t.Errorf("PlanetPhases[%d] off mesh by %g tooth pitches", i, k-math.Round(k))
		}
	}
}

func TestSolveIncompatibleCount(t *testing.T) {
	p := baseParams()
	p.SunTeeth = 10
	p.PlanetTeeth = 11
	p.PlanetCount = 4 // sun+ring = 42, not divisible by 4
	_, err := Solve(p)
	var ierr *IncompatibleSetError
	if !errors.As(err, &ierr) {
		t.Fatalf("got %v, want IncompatibleSetError", err)
	}
	if ierr.SunTeeth != 10 || ierr.RingTeeth != 32 || ierr.PlanetCount != 4 {
		t.Errorf("error context = %+v", ierr)
	}
	want := []int{1, 2, 3, 6, 7, 14, 21, 42}
	if !reflect.DeepEqual(ierr.ValidCounts, want) {
		t.Errorf("ValidCounts = %v, want %v", ierr.ValidCounts, want)
	}
}

func TestSolveNoPlanets(t *testing.T) {
	p := baseParams()
	p.PlanetCount = 0
	_, err := Solve(p)
	var ierr *IncompatibleSetError
	if !errors.As(err, &ierr) {
		t.Fatalf("got %v, want IncompatibleSetError", err)
	}
}

func TestParamsValidate(t *testing.T) {
	for _, test := range []struct {
		name   string
		mutate func(*Params)
		param  string
	}{
		{"sun teeth", func(p *Params) { p.SunTeeth = 3 }, "teeth"},
		{"planet teeth", func(p *Params) { p.PlanetTeeth = 2 }, "planetTeeth"},
		{"module", func(p *Params) { p.Module = 0 }, "module"},
		{"pressure angle", func(p *Params) { p.PressureAngleDeg = 90 }, "pressureAngleDeg"},
		{"thickness", func(p *Params) { p.Thickness = 0 }, "thickness"},
		{"ring margin", func(p *Params) { p.RingMargin = -1 }, "ringMargin"},
	} {
		p := baseParams()
		test.mutate(&p)
		err := p.Validate()
		var perr *gear.ParameterError
		if !errors.As(err, &perr) {
			t.Errorf("%s: got %v, want ParameterError", test.name, err)
			continue
		}
		if perr.Name != test.param {
			t.Errorf("%s: error names %q, want %q", test.name, perr.Name, test.param)
		}
	}
}

func TestRingModule(t *testing.T) {
	p := baseParams()
	if got := p.RingModule(); got != 1 {
		t.Errorf("RingModule with zero clearance = %g, want 1", got)
	}
	p.Clearance = 0.12
	want := 1 + 4*0.12/48
	if got := p.RingModule(); math.Abs(got-want) > 1e-12 {
		t.Errorf("RingModule = %g, want %g", got, want)
	}
	// clearance also shifts the orbit outward
	l, err := Solve(p)
	if err != nil {
		t.Fatal(err)
	}
	if want := 15 + 0.12; math.Abs(l.OrbitRadius-want) > 1e-12 {
		t.Errorf("OrbitRadius = %g, want %g", l.OrbitRadius, want)
	}
}

func TestDivisors(t *testing.T) {
	got := divisors(60)
	want := []int{1, 2, 3, 4, 5, 6, 10, 12, 15, 20, 30, 60}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("divisors(60) = %v, want %v", got, want)
	}
}
