// Package gear generates parametric involute spur gear tooth profiles.
//
// The gear profile algorithm follows the public domain parametric involute
// spur gear construction by Leemon Baird (2011): a tooth flank is an
// involute of the base circle, mirrored about the tooth centerline, capped
// at the outer (addendum) circle and rooted at the root (dedendum) circle.
package gear

import "math"

// Spec holds the defining parameters of a single gear. All radii are
// derived on demand and never cached, so a Spec cannot fall out of sync
// with itself.
type Spec struct {
	Teeth            int     // tooth count
	Module           float64 // pitch diameter / tooth count
	PressureAngleDeg float64 // pressure angle in degrees
	Clearance        float64 // extra radial depth added to the dedendum
}

// New returns a validated gear Spec.
func New(teeth int, module, pressureAngleDeg, clearance float64) (Spec, error) {
	s := Spec{
		Teeth:            teeth,
		Module:           module,
		PressureAngleDeg: pressureAngleDeg,
		Clearance:        clearance,
	}
	if err := s.Validate(); err != nil {
		return Spec{}, err
	}
	return s, nil
}

// Validate checks the parameter ranges and the derived radii invariants.
func (s Spec) Validate() error {
	// Below 4 teeth the involute construction degenerates.
	if s.Teeth < 4 {
		return &ParameterError{Name: "teeth", Got: float64(s.Teeth), Constraint: ">= 4"}
	}
	if s.Module <= 0 {
		return &ParameterError{Name: "module", Got: s.Module, Constraint: "> 0"}
	}
	if s.PressureAngleDeg <= 0 || s.PressureAngleDeg > 45 {
		return &ParameterError{Name: "pressureAngleDeg", Got: s.PressureAngleDeg, Constraint: "in (0,45]"}
	}
	if s.Clearance < 0 {
		return &ParameterError{Name: "clearance", Got: s.Clearance, Constraint: ">= 0"}
	}
	if root := s.RootRadius(); root <= 0 {
		return &GeometryError{Reason: "root radius must be positive", Got: root}
	}
	return nil
}

// PressureAngle returns the pressure angle in radians.
func (s Spec) PressureAngle() float64 {
	return s.PressureAngleDeg * math.Pi / 180
}

// PitchRadius returns the radius of the pitch circle.
func (s Spec) PitchRadius() float64 {
	return s.Module * float64(s.Teeth) / 2
}

// BaseRadius returns the radius of the involute base circle.
func (s Spec) BaseRadius() float64 {
	return s.PitchRadius() * math.Cos(s.PressureAngle())
}

// Addendum returns the radial tooth height above the pitch circle.
func (s Spec) Addendum() float64 {
	return s.Module
}

// Dedendum returns the radial tooth depth below the pitch circle.
func (s Spec) Dedendum() float64 {
	return s.Module + s.Clearance
}

// OuterRadius returns the radius of the tooth tip circle.
func (s Spec) OuterRadius() float64 {
	return s.PitchRadius() + s.Addendum()
}

// RootRadius returns the radius of the tooth root circle.
func (s Spec) RootRadius() float64 {
	return s.PitchRadius() - s.Dedendum()
}
