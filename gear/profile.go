package gear

import (
	"math"

	planetgear "github.com/kame404/planetary-gear-generator"
	"github.com/kame404/planetary-gear-generator/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

const (
	pi  = 3.141592653589793
	tau = 2 * pi
)

// Profile is the closed rim polygon of a full gear: one tooth outline
// replicated Teeth times about the origin. External profiles wind
// counter-clockwise; internal (ring cavity) profiles wind clockwise.
type Profile struct {
	Teeth    int
	PerTooth int // vertices per tooth, fixed for a given spec and builder
	Internal bool
	Vertex   []r2.Vec
}

// SDF2 returns the signed distance field of the rim polygon.
func (p Profile) SDF2() (planetgear.SDF2, error) {
	return planetgear.Polygon(p.Vertex)
}

// Area returns the signed area of the rim polygon (shoelace formula).
// Positive for counter-clockwise winding.
func (p Profile) Area() float64 {
	var area float64
	n := len(p.Vertex)
	for i := 0; i < n; i++ {
		a := p.Vertex[i]
		b := p.Vertex[(i+1)%n]
		area += a.X*b.Y - b.X*a.Y
	}
	return area / 2
}

// RootTransition produces the vertices connecting the root of one tooth to
// the root of the next. Implementations return the interior vertices
// strictly between the polar angles from and to, both on the root circle
// of the spec. A trochoidal fillet can be substituted without changing the
// rest of the profile construction.
type RootTransition interface {
	Transition(s Spec, from, to float64) []r2.Vec
}

// ArcRoot walks the root circle between teeth with Facets straight
// segments. One facet degenerates to a chord across the root gap.
type ArcRoot struct {
	Facets int
}

// Transition returns Facets-1 interior vertices on the root circle.
func (a ArcRoot) Transition(s Spec, from, to float64) []r2.Vec {
	if a.Facets < 2 || to-from <= 1e-12 {
		return nil
	}
	root := s.RootRadius()
	pts := make([]r2.Vec, a.Facets-1)
	dt := (to - from) / float64(a.Facets)
	for i := range pts {
		pts[i] = d2.PolarToXY(root, from+float64(i+1)*dt)
	}
	return pts
}

// ProfileBuilder builds full rim profiles from gear specs.
// The zero value is not usable; call NewProfileBuilder.
type ProfileBuilder struct {
	FlankFacets int            // segments per involute flank
	TipFacets   int            // segments across the tooth tip arc, <=1 for a flat tip
	Root        RootTransition // inter-tooth root treatment
}

// NewProfileBuilder returns a builder with the default sampling: five
// flank segments (Leemon Baird's script uses the same count), a three
// segment tip arc and a four segment root arc.
func NewProfileBuilder() *ProfileBuilder {
	return &ProfileBuilder{
		FlankFacets: 5,
		TipFacets:   3,
		Root:        ArcRoot{Facets: 4},
	}
}

// Rim builds the closed rim polygon for the spec. For internal=true the
// same tooth geometry is produced with reversed winding, describing the
// cavity cut from a ring gear blank.
func (b *ProfileBuilder) Rim(s Spec, internal bool) (Profile, error) {
	if err := s.Validate(); err != nil {
		return Profile{}, err
	}
	if b.FlankFacets < 1 {
		return Profile{}, &ParameterError{Name: "flankFacets", Got: float64(b.FlankFacets), Constraint: ">= 1"}
	}
	if b.Root == nil {
		return Profile{}, &ParameterError{Name: "root", Got: 0, Constraint: "non-nil RootTransition"}
	}

	pitch := s.PitchRadius()
	base := s.BaseRadius()
	outer := s.OuterRadius()

	if outer < base {
		return Profile{}, &GeometryError{Reason: "outer radius below base circle", Got: outer}
	}

	// Polar angle of the flank where it leaves the base circle, measured
	// from the tooth centerline. The half tooth thickness angle at the
	// pitch circle is pi/(2*Teeth).
	offset := -involuteAngle(base, pitch) - pi/(2*float64(s.Teeth))

	baseHalf := -offset // angular half thickness of the tooth at the base circle
	if baseHalf <= 0 {
		return Profile{}, &GeometryError{Reason: "tooth thickness at base circle is not positive", Got: baseHalf}
	}
	tipHalf := -(involuteAngle(base, outer) + offset)
	if tipHalf <= 0 {
		// The two flanks meet below the tip circle and the outline would
		// self-intersect: the pressure angle is too large for this tooth count.
		return Profile{}, &GeometryError{Reason: "tooth tip thickness is not positive", Got: tipHalf}
	}

	// Angular half thickness at the start of the usable flank. With the
	// root circle above the base circle the tooth is thinner there, so the
	// overlap check must use the start radius, not the base circle.
	startHalf := baseHalf - involuteAngle(base, math.Max(base, s.RootRadius()))
	toothPitch := tau / float64(s.Teeth)
	if 2*startHalf >= toothPitch {
		return Profile{}, &GeometryError{Reason: "adjacent teeth overlap at the root", Got: 2 * startHalf}
	}

	unit := b.toothUnit(s, offset, baseHalf)

	vertex := make([]r2.Vec, 0, s.Teeth*len(unit))
	for i := 0; i < s.Teeth; i++ {
		rot := planetgear.Rotate(float64(i) * toothPitch)
		for _, p := range unit {
			vertex = append(vertex, rot.MulPosition(p))
		}
	}
	if internal {
		for i, j := 0, len(vertex)-1; i < j; i, j = i+1, j-1 {
			vertex[i], vertex[j] = vertex[j], vertex[i]
		}
	}
	return Profile{
		Teeth:    s.Teeth,
		PerTooth: len(unit),
		Internal: internal,
		Vertex:   vertex,
	}, nil
}

// toothUnit builds the vertices of one tooth centered on the positive x
// axis, in counter-clockwise order, including the root transition toward
// the next tooth.
func (b *ProfileBuilder) toothUnit(s Spec, offset, baseHalf float64) []r2.Vec {
	base := s.BaseRadius()
	outer := s.OuterRadius()
	root := s.RootRadius()
	rootLow := root < base
	toothPitch := tau / float64(s.Teeth)

	var unit []r2.Vec

	// Root point leading into the rising flank. With the root circle above
	// the base circle adjacent teeth meet at the half pitch boundary and
	// the next tooth supplies the closing point.
	if rootLow {
		unit = append(unit, d2.PolarToXY(root, -baseHalf))
	} else {
		unit = append(unit, d2.PolarToXY(root, -toothPitch/2))
	}

	// Rising flank, root to tip.
	start := base
	if !rootLow {
		start = root
	}
	for i := 0; i <= b.FlankFacets; i++ {
		f := float64(i) / float64(b.FlankFacets)
		r := (1-f)*start + f*outer
		unit = append(unit, involutePoint(base, 1, offset, r))
	}

	// Tip arc at the outer radius.
	tipHalf := -(involuteAngle(base, outer) + offset)
	if b.TipFacets > 1 {
		dt := 2 * tipHalf / float64(b.TipFacets)
		for i := 1; i < b.TipFacets; i++ {
			unit = append(unit, d2.PolarToXY(outer, -tipHalf+float64(i)*dt))
		}
	}

	// Mirrored flank, tip to root.
	for i := b.FlankFacets; i >= 0; i-- {
		f := float64(i) / float64(b.FlankFacets)
		r := (1-f)*start + f*outer
		unit = append(unit, involutePoint(base, -1, offset, r))
	}

	if rootLow {
		unit = append(unit, d2.PolarToXY(root, baseHalf))
		unit = append(unit, b.Root.Transition(s, baseHalf, toothPitch-baseHalf)...)
	}
	return unit
}
