package render

import (
	"errors"
	"math"

	"github.com/kame404/planetary-gear-generator/internal/d2"
	"github.com/kame404/planetary-gear-generator/planetary"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Gear bodies are prisms over star shaped cross sections (every boundary
// radius is a single valued function of the polar angle), so they mesh
// exactly: side walls along the boundary loops plus cap triangulations.
// External gears get a center fan, ring gears an angular merge of the
// outer disc boundary with the tooth cavity boundary.

// minRingBoundaryVerts is the floor on ring disc boundary sampling.
const minRingBoundaryVerts = 64

// SolidMesh returns the closed triangle mesh of one posed solid.
func SolidMesh(s planetary.Solid) ([]Triangle3, error) {
	if len(s.Profile.Vertex) < 3 {
		return nil, errors.New("profile has fewer than 3 vertices")
	}
	if s.Thickness <= 0 {
		return nil, errors.New("solid thickness must be positive")
	}
	h := s.Thickness / 2

	// Counter-clockwise rim loop. Internal profiles are stored clockwise.
	rim := s.Profile.Vertex
	if s.Profile.Internal {
		rim = reversed(rim)
	}

	var tris []Triangle3
	if s.BlankRadius <= 0 {
		tris = make([]Triangle3, 0, 4*len(rim))
		tris = wallTriangles(tris, rim, h)
		tris = fanCaps(tris, rim, h)
	} else {
		for _, v := range rim {
			if r2.Norm(v) >= s.BlankRadius {
				return nil, errors.New("ring blank radius does not clear the tooth cavity")
			}
		}
		outer := circleLoop(s.BlankRadius, maxInt(2*s.Profile.Teeth, minRingBoundaryVerts))
		tris = make([]Triangle3, 0, 4*(len(rim)+len(outer)))
		tris = wallTriangles(tris, outer, h)
		// Cavity wall: clockwise traversal flips the wall normals toward
		// the gear axis.
		tris = wallTriangles(tris, reversed(rim), h)
		tris = annulusCaps(tris, outer, rim, h)
	}

	transformMesh(tris, s.Pose)
	return tris, nil
}

// AssemblyMesh returns the concatenated meshes of every solid in the
// assembly, each in its assembly pose.
func AssemblyMesh(a planetary.Assembly) ([]Triangle3, error) {
	var model []Triangle3
	for _, s := range a.Solids() {
		m, err := SolidMesh(s)
		if err != nil {
			return nil, err
		}
		model = append(model, m...)
	}
	return model, nil
}

func lift(v r2.Vec, z float64) r3.Vec {
	return r3.Vec{X: v.X, Y: v.Y, Z: z}
}

func reversed(v []r2.Vec) []r2.Vec {
	out := make([]r2.Vec, len(v))
	for i, p := range v {
		out[len(v)-1-i] = p
	}
	return out
}

func circleLoop(radius float64, n int) []r2.Vec {
	loop := make([]r2.Vec, n)
	for i := range loop {
		loop[i] = d2.PolarToXY(radius, 2*math.Pi*float64(i)/float64(n))
	}
	return loop
}

// wallTriangles extrudes the loop edges into quads split in two. Normals
// point to the right of the direction of travel, so a counter-clockwise
// loop produces outward walls.
func wallTriangles(dst []Triangle3, loop []r2.Vec, h float64) []Triangle3 {
	n := len(loop)
	for i := 0; i < n; i++ {
		a := loop[i]
		b := loop[(i+1)%n]
		dst = append(dst,
			Triangle3{lift(a, -h), lift(b, -h), lift(b, h)},
			Triangle3{lift(a, -h), lift(b, h), lift(a, h)},
		)
	}
	return dst
}

// fanCaps closes the prism top and bottom with fans about the gear axis.
// Valid because external gear rims are star shaped about the origin.
func fanCaps(dst []Triangle3, loop []r2.Vec, h float64) []Triangle3 {
	n := len(loop)
	top := r3.Vec{Z: h}
	bottom := r3.Vec{Z: -h}
	for i := 0; i < n; i++ {
		a := loop[i]
		b := loop[(i+1)%n]
		dst = append(dst,
			Triangle3{top, lift(a, h), lift(b, h)},
			Triangle3{bottom, lift(b, -h), lift(a, -h)},
		)
	}
	return dst
}

// annulusCaps closes the ring prism by zipping the outer disc boundary
// with the cavity boundary in polar angle order. Both loops must be
// counter-clockwise and star shaped about the origin.
func annulusCaps(dst []Triangle3, outer, inner []r2.Vec, h float64) []Triangle3 {
	oAng, oLoop := unwrapLoop(outer)
	iAng, iLoop := unwrapLoop(inner)
	m := len(oLoop)
	n := len(iLoop)

	var i, j int
	for i < n || j < m {
		advanceInner := j >= m
		if !advanceInner && i < n {
			advanceInner = iAng[i+1] <= oAng[j+1]
		}
		if advanceInner {
			a := iLoop[i%n]
			b := iLoop[(i+1)%n]
			c := oLoop[j%m]
			dst = append(dst,
				Triangle3{lift(b, h), lift(a, h), lift(c, h)},
				Triangle3{lift(a, -h), lift(b, -h), lift(c, -h)},
			)
			i++
		} else {
			a := oLoop[j%m]
			b := oLoop[(j+1)%m]
			c := iLoop[i%n]
			dst = append(dst,
				Triangle3{lift(a, h), lift(b, h), lift(c, h)},
				Triangle3{lift(b, -h), lift(a, -h), lift(c, -h)},
			)
			j++
		}
	}
	return dst
}

// unwrapLoop rotates the loop to start at its smallest polar angle and
// returns monotonically increasing angles with one wrapped sentinel.
func unwrapLoop(loop []r2.Vec) ([]float64, []r2.Vec) {
	n := len(loop)
	raw := make([]float64, n)
	kmin := 0
	for i, v := range loop {
		a := math.Atan2(v.Y, v.X)
		if a < 0 {
			a += 2 * math.Pi
		}
		raw[i] = a
		if a < raw[kmin] {
			kmin = i
		}
	}
	rot := make([]r2.Vec, n)
	ang := make([]float64, n+1)
	for i := 0; i < n; i++ {
		rot[i] = loop[(kmin+i)%n]
		ang[i] = raw[(kmin+i)%n]
		if i > 0 && ang[i] < ang[i-1] {
			ang[i] += 2 * math.Pi
		}
	}
	ang[n] = ang[0] + 2*math.Pi
	return ang, rot
}

func transformMesh(model []Triangle3, pose planetary.Pose) {
	sin, cos := math.Sincos(pose.Rotation)
	for i := range model {
		for j := range model[i] {
			v := model[i][j]
			model[i][j] = r3.Vec{
				X: cos*v.X - sin*v.Y + pose.Position.X,
				Y: sin*v.X + cos*v.Y + pose.Position.Y,
				Z: v.Z + pose.Position.Z,
			}
		}
	}
}

func maxInt(a, b int) int {
	if a >= b {
		return a
	}
	return b
}
