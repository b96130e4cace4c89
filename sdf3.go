package planetgear

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// SDF3 is the interface to a 3d signed distance function object.
type SDF3 interface {
	// Evaluate takes a point in 3D space as input and returns
	// the minimum distance of the SDF3 to the point. The distance
	// is negative if the point is contained within the SDF3.
	Evaluate(p r3.Vec) float64
	// Bounds returns the bounding box that completely contains
	// the SDF3.
	Bounds() r3.Box
}

// extrude3 extrudes an SDF2 to an SDF3.
type extrude3 struct {
	sdf    SDF2
	height float64
	bb     r3.Box
}

// Extrude3D does a linear extrude of an SDF2 along the z axis.
// The resulting solid spans z in [-height/2, height/2].
func Extrude3D(sdf SDF2, height float64) SDF3 {
	if sdf == nil {
		panic("nil SDF2 argument")
	}
	s := extrude3{}
	s.sdf = sdf
	s.height = height / 2
	// work out the bounding box
	bb := sdf.Bounds()
	s.bb = r3.Box{
		Min: r3.Vec{X: bb.Min.X, Y: bb.Min.Y, Z: -s.height},
		Max: r3.Vec{X: bb.Max.X, Y: bb.Max.Y, Z: s.height},
	}
	return &s
}

// Evaluate returns the minimum distance to an extrusion.
func (s *extrude3) Evaluate(p r3.Vec) float64 {
	// sdf for the projected 2d surface
	a := s.sdf.Evaluate(r2.Vec{X: p.X, Y: p.Y})
	// sdf for the extrusion region: z = [-height, height]
	b := math.Abs(p.Z) - s.height
	// return the intersection
	return math.Max(a, b)
}

// Bounds returns the bounding box for an extrusion.
func (s *extrude3) Bounds() r3.Box {
	return s.bb
}

// transform3 is an SDF3 modified by a rigid transform.
type transform3 struct {
	sdf     SDF3
	matrix  m44
	inverse m44
	bb      r3.Box
}

// Transform3D applies a rigid transform (rotate/translate) to an SDF3.
func Transform3D(sdf SDF3, matrix m44) SDF3 {
	s := transform3{}
	s.sdf = sdf
	s.matrix = matrix
	s.inverse = matrix.Inverse()
	s.bb = transformBox3(sdf.Bounds(), matrix)
	return &s
}

// Evaluate returns the minimum distance to a transformed SDF3.
// Distance is preserved since the transform is rigid.
func (s *transform3) Evaluate(p r3.Vec) float64 {
	return s.sdf.Evaluate(s.inverse.MulPosition(p))
}

// Bounds returns the bounding box of a transformed SDF3.
func (s *transform3) Bounds() r3.Box {
	return s.bb
}

// transformBox3 returns the axis aligned box containing the 8 transformed
// corners of bb.
func transformBox3(bb r3.Box, m m44) r3.Box {
	corners := [8]r3.Vec{
		{X: bb.Min.X, Y: bb.Min.Y, Z: bb.Min.Z},
		{X: bb.Max.X, Y: bb.Min.Y, Z: bb.Min.Z},
		{X: bb.Min.X, Y: bb.Max.Y, Z: bb.Min.Z},
		{X: bb.Max.X, Y: bb.Max.Y, Z: bb.Min.Z},
		{X: bb.Min.X, Y: bb.Min.Y, Z: bb.Max.Z},
		{X: bb.Max.X, Y: bb.Min.Y, Z: bb.Max.Z},
		{X: bb.Min.X, Y: bb.Max.Y, Z: bb.Max.Z},
		{X: bb.Max.X, Y: bb.Max.Y, Z: bb.Max.Z},
	}
	out := r3.Box{Min: m.MulPosition(corners[0]), Max: m.MulPosition(corners[0])}
	for _, c := range corners[1:] {
		v := m.MulPosition(c)
		out.Min = r3.Vec{X: math.Min(out.Min.X, v.X), Y: math.Min(out.Min.Y, v.Y), Z: math.Min(out.Min.Z, v.Z)}
		out.Max = r3.Vec{X: math.Max(out.Max.X, v.X), Y: math.Max(out.Max.Y, v.Y), Z: math.Max(out.Max.Z, v.Z)}
	}
	return out
}

// union3 is the union of multiple SDF3 objects.
type union3 struct {
	sdf []SDF3
	bb  r3.Box
}

// Union3D returns the union of multiple SDF3 objects.
func Union3D(sdf ...SDF3) SDF3 {
	if len(sdf) == 0 {
		panic("empty union")
	}
	s := union3{sdf: sdf}
	bb := sdf[0].Bounds()
	for _, x := range sdf[1:] {
		xb := x.Bounds()
		bb.Min = r3.Vec{X: math.Min(bb.Min.X, xb.Min.X), Y: math.Min(bb.Min.Y, xb.Min.Y), Z: math.Min(bb.Min.Z, xb.Min.Z)}
		bb.Max = r3.Vec{X: math.Max(bb.Max.X, xb.Max.X), Y: math.Max(bb.Max.Y, xb.Max.Y), Z: math.Max(bb.Max.Z, xb.Max.Z)}
	}
	s.bb = bb
	return &s
}

// Evaluate returns the minimum distance to the union of SDF3s.
func (s *union3) Evaluate(p r3.Vec) float64 {
	d := s.sdf[0].Evaluate(p)
	for _, x := range s.sdf[1:] {
		d = math.Min(d, x.Evaluate(p))
	}
	return d
}

// Bounds returns the bounding box of the union of SDF3s.
func (s *union3) Bounds() r3.Box {
	return s.bb
}
