package planetary

import (
	"fmt"
	"math"

	planetgear "github.com/kame404/planetary-gear-generator"
	"github.com/kame404/planetary-gear-generator/gear"
	"gonum.org/v1/gonum/spatial/r3"
)

// Pose places a solid in assembly space: a rotation about the solid's own
// z axis followed by a translation.
type Pose struct {
	Position r3.Vec
	Rotation float64 // radians, about z
}

// Solid is one posed gear body: a rim profile extruded to a thickness.
// A non-zero BlankRadius marks an internally toothed gear whose body is
// the disc of that radius minus the rim cavity.
type Solid struct {
	Name        string
	Profile     gear.Profile
	BlankRadius float64
	Thickness   float64
	Pose        Pose
}

// SDF2 returns the cross section of the solid in its own frame.
func (s Solid) SDF2() (planetgear.SDF2, error) {
	rim, err := s.Profile.SDF2()
	if err != nil {
		return nil, err
	}
	if s.BlankRadius <= 0 {
		return rim, nil
	}
	blank, err := planetgear.Circle(s.BlankRadius)
	if err != nil {
		return nil, err
	}
	return planetgear.Difference2D(blank, rim), nil
}

// SDF3 returns the posed solid body.
func (s Solid) SDF3() (planetgear.SDF3, error) {
	cross, err := s.SDF2()
	if err != nil {
		return nil, err
	}
	body := planetgear.Extrude3D(cross, s.Thickness)
	pose := planetgear.Translate3d(s.Pose.Position).Mul(planetgear.RotateZ(s.Pose.Rotation))
	return planetgear.Transform3D(body, pose), nil
}

// Assembly owns the posed solids of one generated planetary gear set.
// It is constructed once per generation and immutable thereafter.
type Assembly struct {
	Layout  Layout
	Sun     Solid
	Planets []Solid
	Ring    Solid
}

// Solids returns all solids of the assembly in sun, planets, ring order.
func (a Assembly) Solids() []Solid {
	out := make([]Solid, 0, len(a.Planets)+2)
	out = append(out, a.Sun)
	out = append(out, a.Planets...)
	out = append(out, a.Ring)
	return out
}

// SDF3 returns the union of all posed solids.
func (a Assembly) SDF3() (planetgear.SDF3, error) {
	solids := a.Solids()
	bodies := make([]planetgear.SDF3, len(solids))
	for i, s := range solids {
		body, err := s.SDF3()
		if err != nil {
			return nil, err
		}
		bodies[i] = body
	}
	return planetgear.Union3D(bodies...), nil
}

// Assemble extrudes the three profiles to the requested thickness and
// poses them per the layout: sun at the origin, planets on the orbit
// circle with their meshing phase, ring centred and unrotated.
//
// Assemble does not touch any scene or file; callers hand the returned
// assembly to the render package or a host adapter.
func Assemble(sun, planet, ring gear.Profile, layout Layout, thickness float64) (Assembly, error) {
	if thickness <= 0 {
		return Assembly{}, &gear.ParameterError{Name: "thickness", Got: thickness, Constraint: "> 0"}
	}
	if !ring.Internal {
		return Assembly{}, &gear.GeometryError{Reason: "ring profile must be internal", Got: 0}
	}

	// Two adjacent planets must not overlap on the orbit circle.
	planetOuter := layout.Module * (float64(layout.PlanetTeeth)/2 + 1)
	if layout.PlanetCount > 1 {
		separation := 2 * layout.OrbitRadius * math.Sin(math.Pi/float64(layout.PlanetCount))
		if separation < 2*planetOuter {
			return Assembly{}, &gear.GeometryError{
				Reason: fmt.Sprintf("%d planets overlap: adjacent centers %.4g apart, planet diameter %.4g",
					layout.PlanetCount, separation, 2*planetOuter),
				Got: separation,
			}
		}
	}

	a := Assembly{Layout: layout}
	a.Sun = Solid{
		Name:      "sun",
		Profile:   sun,
		Thickness: thickness,
		Pose:      Pose{Rotation: layout.SunAngle},
	}
	a.Planets = make([]Solid, layout.PlanetCount)
	for i := range a.Planets {
		theta := layout.PlanetAngles[i]
		a.Planets[i] = Solid{
			Name:      fmt.Sprintf("planet_%d", i),
			Profile:   planet,
			Thickness: thickness,
			Pose: Pose{
				Position: r3.Vec{
					X: layout.OrbitRadius * math.Cos(theta),
					Y: layout.OrbitRadius * math.Sin(theta),
				},
				Rotation: layout.PlanetPhases[i],
			},
		}
	}
	a.Ring = Solid{
		Name:        "ring",
		Profile:     ring,
		BlankRadius: layout.RingBlankRadius,
		Thickness:   thickness,
	}
	return a, nil
}
