package wires4d

import (
	"math"
	"testing"
)

func TestRotFromAngles_IsOrthonormal(t *testing.T) {
	R := rotFromAngles(Rot4{
		XY: math.Pi / 6,
		XZ: math.Pi / 7,
		XW: math.Pi / 5,
		YZ: math.Pi / 8,
		YW: math.Pi / 9,
		ZW: math.Pi / 10,
	})

	RT := R.Transpose()
	// Check R^T R ~ I
	P := RT.Mul(R)
	I := I4()
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			diff := math.Abs(float64(P.M[r][c] - I.M[r][c]))
			if diff > 1e-12 {
				t.Fatalf("R^T R != I at (%d,%d): %.3g", r, c, diff)
			}
		}
	}
}

func TestAxisRotations(t *testing.T) {
	// Single-plane rotations keep length and rotate only the intended coordinates.
	v := Vector4{1, 0, 0, 0}
	R := rotXY(math.Pi / 2)
	o := R.MulVec(v)
	// 90° in XY: (1,0,0,0) -> (0,1,0,0)
	if math.Abs(float64(o.X-0)) > 1e-12 || math.Abs(float64(o.Y-1)) > 1e-12 {
		t.Fatalf("rotXY failed: %+v", o)
	}
	if math.Abs(float64(o.Len()-1)) > 1e-12 {
		t.Fatalf("rotXY broke length: %.12g", o.Len())
	}
}

func TestPlaneRotationLeavesComplement(t *testing.T) {
	// A single-plane rotation must not touch the two coordinates outside
	// its plane.
	v := Vector4{1, 2, 3, 4}
	o := PlaneRotation(PlaneYW, 1.234).MulVec(v)
	if o.X != v.X || o.Z != v.Z {
		t.Fatalf("PlaneYW rotation moved X or Z: %+v", o)
	}
	if math.Abs(float64(o.Len()-v.Len())) > 1e-12 {
		t.Fatalf("PlaneYW rotation broke length: %.12g", o.Len())
	}
}

func TestRotFromAnglesPlaneOrder(t *testing.T) {
	// The composition applies XY first, ZW last. With xy=90° and zw=90°
	// the X axis only sees the XY factor.
	R := rotFromAngles(Rot4{XY: math.Pi / 2, ZW: math.Pi / 2})
	o := R.MulVec(Vector4{X: 1})
	want := Vector4{Y: 1}
	if o.Sub(want).Len() > 1e-12 {
		t.Fatalf("plane order mismatch: got %+v want %+v", o, want)
	}
	// The Z axis sees only the ZW factor, applied after XY does nothing
	// to it.
	o = R.MulVec(Vector4{Z: 1})
	want = Vector4{W: 1}
	if o.Sub(want).Len() > 1e-12 {
		t.Fatalf("plane order mismatch on Z: got %+v want %+v", o, want)
	}
}

func TestRepeatedRotationStaysOrthonormal(t *testing.T) {
	// Many composed small increments must not drift: after 10000 frames
	// of spin the accumulated matrix is still a rotation.
	step := Rot4{XY: 0.01, XZ: 0.007, XW: 0.003, YZ: 0.005, YW: 0.002, ZW: 0.011}
	R := I4()
	for i := 0; i < 10000; i++ {
		R = rotFromAngles(step).Mul(R)
	}
	P := R.Transpose().Mul(R)
	I := I4()
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			if diff := math.Abs(float64(P.M[r][c] - I.M[r][c])); diff > 1e-9 {
				t.Fatalf("accumulated rotation drifted at (%d,%d): %.3g", r, c, diff)
			}
		}
	}
}

func TestWithPlane(t *testing.T) {
	base := Rot4{XY: 1, XZ: 2, XW: 3, YZ: 4, YW: 5, ZW: 6}
	planes := []Plane{PlaneXY, PlaneXZ, PlaneXW, PlaneYZ, PlaneYW, PlaneZW}
	for i, p := range planes {
		r := base.WithPlane(p, 9)
		got := [6]Real{r.XY, r.XZ, r.XW, r.YZ, r.YW, r.ZW}
		for j, a := range got {
			want := Real(j + 1)
			if j == i {
				want = 9
			}
			if a != want {
				t.Fatalf("WithPlane(%s) field %d = %g, want %g", p, j, a, want)
			}
		}
	}
	// Value receiver: the original is untouched.
	if base != (Rot4{XY: 1, XZ: 2, XW: 3, YZ: 4, YW: 5, ZW: 6}) {
		t.Fatalf("WithPlane mutated its receiver: %+v", base)
	}
}

func TestPlaneString(t *testing.T) {
	names := map[Plane]string{
		PlaneXY: "XY", PlaneXZ: "XZ", PlaneXW: "XW",
		PlaneYZ: "YZ", PlaneYW: "YW", PlaneZW: "ZW",
	}
	for p, want := range names {
		if got := p.String(); got != want {
			t.Fatalf("Plane(%d).String() = %q, want %q", int(p), got, want)
		}
	}
}
