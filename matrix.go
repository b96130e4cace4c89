package planetgear

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// m33 is a 3x3 matrix for 2D transforms, stored in row major order.
type m33 [9]float64

// Rotate returns an orthographic 2x2 rotation matrix (with homogenous 3x3 form).
// Rotation is counter-clockwise for positive angles (radians).
func Rotate(a float64) m33 {
	c := math.Cos(a)
	s := math.Sin(a)
	return m33{
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	}
}

// Mul multiplies 3x3 matrices.
func (a m33) Mul(b m33) m33 {
	var m m33
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var acc float64
			for k := 0; k < 3; k++ {
				acc += a[i*3+k] * b[k*3+j]
			}
			m[i*3+j] = acc
		}
	}
	return m
}

// MulPosition multiplies a r2.Vec position with a rotate/translate matrix.
func (a m33) MulPosition(b r2.Vec) r2.Vec {
	return r2.Vec{
		X: a[0]*b.X + a[1]*b.Y + a[2],
		Y: a[3]*b.X + a[4]*b.Y + a[5],
	}
}

// m44 is a 4x4 matrix for 3D transforms, stored in row major order.
type m44 [16]float64

// Identity3d returns the identity transform.
func Identity3d() m44 {
	return m44{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Translate3d returns a 4x4 translation matrix.
func Translate3d(v r3.Vec) m44 {
	return m44{
		1, 0, 0, v.X,
		0, 1, 0, v.Y,
		0, 0, 1, v.Z,
		0, 0, 0, 1,
	}
}

// RotateZ returns a 4x4 matrix with rotation about the Z axis.
// Rotation is counter-clockwise for positive angles (radians).
func RotateZ(a float64) m44 {
	c := math.Cos(a)
	s := math.Sin(a)
	return m44{
		c, -s, 0, 0,
		s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Mul multiplies 4x4 matrices.
func (a m44) Mul(b m44) m44 {
	var m m44
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var acc float64
			for k := 0; k < 4; k++ {
				acc += a[i*4+k] * b[k*4+j]
			}
			m[i*4+j] = acc
		}
	}
	return m
}

// MulPosition multiplies a r3.Vec position with a rotate/translate matrix.
func (a m44) MulPosition(b r3.Vec) r3.Vec {
	return r3.Vec{
		X: a[0]*b.X + a[1]*b.Y + a[2]*b.Z + a[3],
		Y: a[4]*b.X + a[5]*b.Y + a[6]*b.Z + a[7],
		Z: a[8]*b.X + a[9]*b.Y + a[10]*b.Z + a[11],
	}
}

// Inverse inverts a rigid body transform (rotation composed with
// translation). The rotation block transposes, the translation negates
// through the transposed rotation.
func (a m44) Inverse() m44 {
	m := m44{
		a[0], a[4], a[8], 0,
		a[1], a[5], a[9], 0,
		a[2], a[6], a[10], 0,
		0, 0, 0, 1,
	}
	t := r3.Vec{X: a[3], Y: a[7], Z: a[11]}
	ti := m.MulPosition(t)
	m[3] = -ti.X
	m[7] = -ti.Y
	m[11] = -ti.Z
	return m
}
