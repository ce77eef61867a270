package wires4d

import (
	"math"
	"testing"
)

func TestMat4Identity(t *testing.T) {
	v := Vector4{1, -2, 3, -4}
	if o := I4().MulVec(v); o != v {
		t.Fatalf("I4 moved a vector: %+v", o)
	}
}

func TestMat4MulOrder(t *testing.T) {
	// Mul composes so the right-hand factor applies first:
	// (A.Mul(B)).MulVec(v) == A.MulVec(B.MulVec(v)).
	A := rotXY(math.Pi / 3)
	B := rotZW(math.Pi / 5)
	v := Vector4{1, 2, 3, 4}

	lhs := A.Mul(B).MulVec(v)
	rhs := A.MulVec(B.MulVec(v))
	if lhs.Sub(rhs).Len() > 1e-12 {
		t.Fatalf("Mul order mismatch: %+v vs %+v", lhs, rhs)
	}
}

func TestMat4Transpose(t *testing.T) {
	R := rotFromAngles(Rot4{XY: 0.3, XW: -0.7, YZ: 1.1, ZW: 0.2})
	P := R.Transpose().Mul(R)
	I := I4()
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			if diff := math.Abs(float64(P.M[r][c] - I.M[r][c])); diff > 1e-12 {
				t.Fatalf("R^T R != I at (%d,%d): %.3g", r, c, diff)
			}
		}
	}
}
