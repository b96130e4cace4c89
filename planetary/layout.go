// Package planetary lays out and assembles planetary (epicyclic) gear
// sets: a central sun gear, N orbiting planet gears and an internally
// toothed ring gear.
package planetary

import (
	"math"

	"github.com/kame404/planetary-gear-generator/gear"
)

// Params is the full input parameter set of one generation run. It is
// validated at the boundary; the core derivations never re-check scalars.
type Params struct {
	SunTeeth    int
	PlanetTeeth int
	PlanetCount int

	Module           float64
	PressureAngleDeg float64
	// Clearance is the radial gap between meshing gears. It deepens every
	// dedendum, shifts the planet orbit outward and enlarges the ring gear.
	Clearance  float64
	Thickness  float64
	RingMargin float64 // radial stock outside the ring teeth, in module multiples
}

// RingTeeth returns the derived ring gear tooth count. The relation
// ring = sun + 2*planet is fixed for a standard planetary set.
func (p Params) RingTeeth() int {
	return p.SunTeeth + 2*p.PlanetTeeth
}

// RingModule returns the effective module of the ring gear: the clearance
// is absorbed by slightly enlarging the ring so the planets keep meshing
// after their orbit is shifted outward.
func (p Params) RingModule() float64 {
	rt := p.RingTeeth()
	if rt == 0 {
		return p.Module
	}
	return p.Module + 4*p.Clearance/float64(rt)
}

// Validate checks every scalar input of the parameter set.
func (p Params) Validate() error {
	if _, err := gear.New(p.SunTeeth, p.Module, p.PressureAngleDeg, p.Clearance); err != nil {
		return err
	}
	if p.PlanetTeeth < 4 {
		return &gear.ParameterError{Name: "planetTeeth", Got: float64(p.PlanetTeeth), Constraint: ">= 4"}
	}
	if p.Thickness <= 0 {
		return &gear.ParameterError{Name: "thickness", Got: p.Thickness, Constraint: "> 0"}
	}
	if p.RingMargin < 0 {
		return &gear.ParameterError{Name: "ringMargin", Got: p.RingMargin, Constraint: ">= 0"}
	}
	if p.PlanetCount < 1 {
		return &IncompatibleSetError{
			SunTeeth:    p.SunTeeth,
			RingTeeth:   p.RingTeeth(),
			PlanetCount: p.PlanetCount,
		}
	}
	return nil
}

// Layout is the solved placement of a planetary gear set.
type Layout struct {
	SunTeeth    int
	PlanetTeeth int
	RingTeeth   int // = SunTeeth + 2*PlanetTeeth
	PlanetCount int

	Module      float64
	OrbitRadius float64 // distance from the sun axis to each planet axis

	// SunAngle aligns the sun's teeth with the planet tooth gaps at angle
	// zero: half a sun tooth pitch.
	SunAngle float64
	// PlanetAngles are the orbital positions, evenly spaced.
	PlanetAngles []float64
	// PlanetPhases are the rotations of each planet about its own axis
	// needed to mesh with the sun at its orbital position.
	PlanetPhases []float64

	// RingBlankRadius is the outer boundary of the ring gear disc.
	RingBlankRadius float64
}

// Solve validates the meshing constraints of the parameter set and
// computes planet placement.
//
// Equal spacing of N planets requires (sun+ring) teeth to be evenly
// divisible by N; otherwise the planets cannot all engage both the sun and
// the ring at the same tooth phase.
func Solve(p Params) (Layout, error) {
	if err := p.Validate(); err != nil {
		return Layout{}, err
	}
	ringTeeth := p.RingTeeth()
	if (p.SunTeeth+ringTeeth)%p.PlanetCount != 0 {
		return Layout{}, &IncompatibleSetError{
			SunTeeth:    p.SunTeeth,
			RingTeeth:   ringTeeth,
			PlanetCount: p.PlanetCount,
			ValidCounts: divisors(p.SunTeeth + ringTeeth),
		}
	}

	l := Layout{
		SunTeeth:    p.SunTeeth,
		PlanetTeeth: p.PlanetTeeth,
		RingTeeth:   ringTeeth,
		PlanetCount: p.PlanetCount,
		Module:      p.Module,
		OrbitRadius: p.Module*float64(p.SunTeeth+p.PlanetTeeth)/2 + p.Clearance,
		SunAngle:    math.Pi / float64(p.SunTeeth),
	}

	ringPitch := p.RingModule() * float64(ringTeeth) / 2
	l.RingBlankRadius = ringPitch + p.RingModule()*(2+p.RingMargin)

	toothPitch := 2 * math.Pi / float64(p.PlanetTeeth)
	ratio := float64(p.SunTeeth) / float64(p.PlanetTeeth)
	l.PlanetAngles = make([]float64, p.PlanetCount)
	l.PlanetPhases = make([]float64, p.PlanetCount)
	for i := range l.PlanetAngles {
		angle := 2 * math.Pi * float64(i) / float64(p.PlanetCount)
		l.PlanetAngles[i] = angle
		l.PlanetPhases[i] = math.Mod(angle*ratio, toothPitch)
	}
	return l, nil
}

// divisors returns the positive divisors of n in ascending order.
func divisors(n int) []int {
	var d []int
	for i := 1; i <= n; i++ {
		if n%i == 0 {
			d = append(d, i)
		}
	}
	return d
}
