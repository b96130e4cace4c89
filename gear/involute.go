package gear

import (
	"math"

	"github.com/kame404/planetary-gear-generator/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// Involute of a circle: the curve traced by a point on a taut string
// unwound from the base circle. For roll angle t the curve point is
//
//	p(t) = b * (cos t + t sin t, sin t - t cos t)
//
// and its distance from the origin is b*sqrt(1+t*t).

// Involute samples n points of the involute of the circle with radius
// base, at roll angles linearly spaced in [t0, t1].
func Involute(base, t0, t1 float64, n int) ([]r2.Vec, error) {
	if base <= 0 {
		return nil, &ParameterError{Name: "baseRadius", Got: base, Constraint: "> 0"}
	}
	if n < 2 {
		return nil, &ParameterError{Name: "sampleCount", Got: float64(n), Constraint: ">= 2"}
	}
	pts := make([]r2.Vec, n)
	dt := (t1 - t0) / float64(n-1)
	for i := range pts {
		t := t0 + float64(i)*dt
		sin, cos := math.Sincos(t)
		pts[i] = r2.Vec{
			X: base * (cos + t*sin),
			Y: base * (sin - t*cos),
		}
	}
	return pts, nil
}

// RollAngle inverts radius(t) = base*sqrt(1+t*t) and returns the roll
// angle at which the involute of the base circle reaches the given radius.
// The involute is undefined inside the base circle.
func RollAngle(base, radius float64) (float64, error) {
	if base <= 0 {
		return 0, &ParameterError{Name: "baseRadius", Got: base, Constraint: "> 0"}
	}
	if radius < base {
		return 0, &GeometryError{Reason: "involute undefined inside base circle", Got: radius}
	}
	q := radius / base
	return math.Sqrt(q*q - 1), nil
}

// FlankRange returns the roll angle span of a tooth flank: from the start
// of the usable involute (the base circle or the root circle, whichever
// is higher) out to the tip circle.
func FlankRange(s Spec) (t0, t1 float64, err error) {
	base := s.BaseRadius()
	outer := s.OuterRadius()
	if outer < base {
		return 0, 0, &GeometryError{Reason: "outer radius below base circle", Got: outer}
	}
	start := math.Max(base, s.RootRadius())
	t0, err = RollAngle(base, start)
	if err != nil {
		return 0, 0, err
	}
	t1, err = RollAngle(base, outer)
	if err != nil {
		return 0, 0, err
	}
	return t0, t1, nil
}

// involuteAngle returns the polar angle swept between the involute's
// starting point on the base circle and the involute point at the given
// radius. Zero at and below the base circle.
func involuteAngle(base, radius float64) float64 {
	if radius <= base {
		return 0
	}
	q := radius / base
	return math.Sqrt(q*q-1) - math.Acos(base/radius)
}

// involutePoint returns the flank point at the given radius. offset is the
// polar angle of the flank at the base circle and side selects the flank
// (+1 or -1), mirroring about the tooth centerline.
func involutePoint(base, side, offset, radius float64) r2.Vec {
	if radius < base {
		radius = base
	}
	return d2.PolarToXY(radius, side*(involuteAngle(base, radius)+offset))
}
