package planetgear

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

const testTol = 1e-12

func TestPolygonEvaluate(t *testing.T) {
	// unit square centered at the origin
	square, err := Polygon([]r2.Vec{
		{X: -1, Y: -1},
		{X: 1, Y: -1},
		{X: 1, Y: 1},
		{X: -1, Y: 1},
	})
	if err != nil {
		t.Fatal(err)
	}
	for _, test := range []struct {
		p    r2.Vec
		want float64
	}{
		{r2.Vec{X: 0, Y: 0}, -1},
		{r2.Vec{X: 0.5, Y: 0}, -0.5},
		{r2.Vec{X: 2, Y: 0}, 1},
		{r2.Vec{X: 0, Y: -3}, 2},
		{r2.Vec{X: 2, Y: 2}, math.Sqrt2},
	} {
		got := square.Evaluate(test.p)
		if math.Abs(got-test.want) > testTol {
			t.Errorf("Evaluate(%v) = %g, want %g", test.p, got, test.want)
		}
	}
	bb := square.Bounds()
	if bb.Min.X != -1 || bb.Min.Y != -1 || bb.Max.X != 1 || bb.Max.Y != 1 {
		t.Errorf("bad bounding box: %+v", bb)
	}
}

func TestPolygonErrors(t *testing.T) {
	if _, err := Polygon([]r2.Vec{{X: 0, Y: 0}, {X: 1, Y: 0}}); err == nil {
		t.Error("expected error for 2 vertex polygon")
	}
	if _, err := Polygon([]r2.Vec{{X: 0, Y: 0}, {X: 0, Y: 0}, {X: 1, Y: 0}}); err == nil {
		t.Error("expected error for degenerate segment")
	}
}

func TestCircleDifference(t *testing.T) {
	disc, err := Circle(2)
	if err != nil {
		t.Fatal(err)
	}
	hole, err := Circle(1)
	if err != nil {
		t.Fatal(err)
	}
	annulus := Difference2D(disc, hole)
	for _, test := range []struct {
		p    r2.Vec
		want float64
	}{
		{r2.Vec{X: 1.5, Y: 0}, -0.5}, // inside the annulus
		{r2.Vec{X: 0, Y: 0}, 1},      // inside the hole
		{r2.Vec{X: 3, Y: 0}, 1},      // outside the disc
	} {
		got := annulus.Evaluate(test.p)
		if math.Abs(got-test.want) > testTol {
			t.Errorf("Evaluate(%v) = %g, want %g", test.p, got, test.want)
		}
	}
	if _, err := Circle(-1); err == nil {
		t.Error("expected error for negative radius")
	}
}

func TestExtrude3D(t *testing.T) {
	disc, err := Circle(2)
	if err != nil {
		t.Fatal(err)
	}
	body := Extrude3D(disc, 4)
	bb := body.Bounds()
	want := r3.Box{Min: r3.Vec{X: -2, Y: -2, Z: -2}, Max: r3.Vec{X: 2, Y: 2, Z: 2}}
	if bb != want {
		t.Errorf("bounds = %+v, want %+v", bb, want)
	}
	for _, test := range []struct {
		p    r3.Vec
		want float64
	}{
		{r3.Vec{}, -2},
		{r3.Vec{X: 2, Y: 0, Z: 0}, 0},
		{r3.Vec{X: 0, Y: 0, Z: 3}, 1},
		{r3.Vec{X: 4, Y: 0, Z: 0}, 2},
	} {
		got := body.Evaluate(test.p)
		if math.Abs(got-test.want) > testTol {
			t.Errorf("Evaluate(%v) = %g, want %g", test.p, got, test.want)
		}
	}
}

func TestTransform3D(t *testing.T) {
	disc, err := Circle(1)
	if err != nil {
		t.Fatal(err)
	}
	body := Extrude3D(disc, 2)
	moved := Transform3D(body, Translate3d(r3.Vec{X: 5}).Mul(RotateZ(math.Pi/2)))
	if d := moved.Evaluate(r3.Vec{X: 5}); math.Abs(d+1) > testTol {
		t.Errorf("center of moved body: d = %g, want -1", d)
	}
	if d := moved.Evaluate(r3.Vec{}); math.Abs(d-4) > testTol {
		t.Errorf("origin after move: d = %g, want 4", d)
	}
	bb := moved.Bounds()
	if math.Abs(bb.Min.X-4) > testTol || math.Abs(bb.Max.X-6) > testTol {
		t.Errorf("bad transformed bounds: %+v", bb)
	}
}

func TestMatrixInverse(t *testing.T) {
	m := Translate3d(r3.Vec{X: 1, Y: -2, Z: 3}).Mul(RotateZ(0.7))
	inv := m.Inverse()
	pts := []r3.Vec{{}, {X: 1}, {Y: -4, Z: 2}, {X: 3, Y: 2, Z: 1}}
	for _, p := range pts {
		q := inv.MulPosition(m.MulPosition(p))
		if math.Abs(q.X-p.X) > 1e-9 || math.Abs(q.Y-p.Y) > 1e-9 || math.Abs(q.Z-p.Z) > 1e-9 {
			t.Errorf("inverse round trip of %v gives %v", p, q)
		}
	}
}

func TestUnion3D(t *testing.T) {
	a, _ := Circle(1)
	left := Transform3D(Extrude3D(a, 2), Translate3d(r3.Vec{X: -3}))
	right := Transform3D(Extrude3D(a, 2), Translate3d(r3.Vec{X: 3}))
	u := Union3D(left, right)
	if d := u.Evaluate(r3.Vec{X: -3}); d >= 0 {
		t.Errorf("left body center not inside union: d = %g", d)
	}
	if d := u.Evaluate(r3.Vec{X: 3}); d >= 0 {
		t.Errorf("right body center not inside union: d = %g", d)
	}
	if d := u.Evaluate(r3.Vec{}); d <= 0 {
		t.Errorf("gap between bodies inside union: d = %g", d)
	}
	bb := u.Bounds()
	if bb.Min.X != -4 || bb.Max.X != 4 {
		t.Errorf("bad union bounds: %+v", bb)
	}
}
