// Package sdfx exposes generated gear solids to the
// github.com/deadsy/sdfx CAD library: solids become sdfx SDF3 values and
// can be tessellated with sdfx's marching cubes renderers, as an
// alternative to the exact prism meshes of the render package.
package sdfx

import (
	sdfxrender "github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
	planetgear "github.com/kame404/planetary-gear-generator"
	"github.com/kame404/planetary-gear-generator/planetary"
	"github.com/kame404/planetary-gear-generator/render"
	"gonum.org/v1/gonum/spatial/r3"
)

// Compile-time interface check.
var _ sdf.SDF3 = (*wrapper)(nil)

// wrapper adapts a planetgear SDF3 to the sdfx SDF3 interface.
type wrapper struct {
	s planetgear.SDF3
}

func (w *wrapper) Evaluate(p v3.Vec) float64 {
	return w.s.Evaluate(r3.Vec{X: p.X, Y: p.Y, Z: p.Z})
}

func (w *wrapper) BoundingBox() sdf.Box3 {
	bb := w.s.Bounds()
	return sdf.Box3{
		Min: v3.Vec{X: bb.Min.X, Y: bb.Min.Y, Z: bb.Min.Z},
		Max: v3.Vec{X: bb.Max.X, Y: bb.Max.Y, Z: bb.Max.Z},
	}
}

// From wraps any planetgear SDF3 as an sdfx SDF3.
func From(s planetgear.SDF3) sdf.SDF3 {
	return &wrapper{s: s}
}

// Solid returns the posed solid as an sdfx SDF3.
func Solid(s planetary.Solid) (sdf.SDF3, error) {
	body, err := s.SDF3()
	if err != nil {
		return nil, err
	}
	return From(body), nil
}

// Assembly returns the whole assembly union as an sdfx SDF3.
func Assembly(a planetary.Assembly) (sdf.SDF3, error) {
	body, err := a.SDF3()
	if err != nil {
		return nil, err
	}
	return From(body), nil
}

// ToTriangles tessellates an sdfx SDF3 with uniform marching cubes at the
// given cell resolution.
func ToTriangles(s sdf.SDF3, cells int) []render.Triangle3 {
	r := sdfxrender.NewMarchingCubesUniform(cells)
	tris := sdfxrender.ToTriangles(s, r)
	out := make([]render.Triangle3, len(tris))
	for i, t := range tris {
		for j := 0; j < 3; j++ {
			out[i][j] = r3.Vec{X: t[j].X, Y: t[j].Y, Z: t[j].Z}
		}
	}
	return out
}
