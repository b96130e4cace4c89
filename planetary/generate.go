package planetary

import "github.com/kame404/planetary-gear-generator/gear"

// Generator runs the whole pipeline: specs, profiles, layout, assembly.
// The zero value uses the default profile builder; set Builder to control
// flank sampling or the root transition strategy.
type Generator struct {
	Builder *gear.ProfileBuilder
}

// Generate produces a complete planetary gear assembly from the
// parameters, or the first error encountered. Generation is synchronous
// and all-or-nothing: a failure anywhere leaves no partial result.
func (g Generator) Generate(p Params) (Assembly, error) {
	layout, err := Solve(p)
	if err != nil {
		return Assembly{}, err
	}

	sunSpec, err := gear.New(p.SunTeeth, p.Module, p.PressureAngleDeg, p.Clearance)
	if err != nil {
		return Assembly{}, err
	}
	planetSpec, err := gear.New(p.PlanetTeeth, p.Module, p.PressureAngleDeg, p.Clearance)
	if err != nil {
		return Assembly{}, err
	}
	ringSpec, err := gear.New(layout.RingTeeth, p.RingModule(), p.PressureAngleDeg, p.Clearance)
	if err != nil {
		return Assembly{}, err
	}

	b := g.Builder
	if b == nil {
		b = gear.NewProfileBuilder()
	}
	sun, err := b.Rim(sunSpec, false)
	if err != nil {
		return Assembly{}, err
	}
	planet, err := b.Rim(planetSpec, false)
	if err != nil {
		return Assembly{}, err
	}
	ring, err := b.Rim(ringSpec, true)
	if err != nil {
		return Assembly{}, err
	}

	return Assemble(sun, planet, ring, layout, p.Thickness)
}

// Generate runs a zero value Generator.
func Generate(p Params) (Assembly, error) {
	return Generator{}.Generate(p)
}
