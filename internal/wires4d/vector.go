package wires4d

import "math"

// Vector4 represents a point or direction in 4D space.
type Vector4 struct {
	X, Y, Z, W Real
}

// Vector functions
func (a Vector4) Add(b Vector4) Vector4 { return Vector4{a.X + b.X, a.Y + b.Y, a.Z + b.Z, a.W + b.W} }
func (a Vector4) Sub(b Vector4) Vector4 { return Vector4{a.X - b.X, a.Y - b.Y, a.Z - b.Z, a.W - b.W} }
func (v Vector4) Mul(s Real) Vector4    { return Vector4{v.X * s, v.Y * s, v.Z * s, v.W * s} }

// Dot returns the dot product between two 4D vectors.
func (a Vector4) Dot(b Vector4) Real {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z + a.W*b.W
}

// Len returns the Euclidean length of the vector.
func (v Vector4) Len() Real { return math.Sqrt(v.Dot(v)) }

// Norm returns a unit-length version of the vector, or v unchanged when the
// length is zero. Internal helper; external callers wanting an explicit
// failure use Normalize.
func (v Vector4) Norm() Vector4 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return Vector4{v.X / l, v.Y / l, v.Z / l, v.W / l}
}

// Normalize returns v/|v|. A near-zero-length input fails with
// ErrDegenerateVector instead of producing Inf/NaN components.
func (v Vector4) Normalize() (Vector4, error) {
	l := v.Len()
	if l < epsDegenerate {
		return Vector4{}, ErrDegenerateVector
	}
	return Vector4{v.X / l, v.Y / l, v.Z / l, v.W / l}, nil
}

// Cross4 returns the vector orthogonal to a, b and c, computed by the 4D
// cofactor expansion analogous to the 3D cross product. Linearly dependent
// inputs yield the zero vector: "no well-defined normal" is a meaningful
// result, not an error.
func Cross4(a, b, c Vector4) Vector4 {
	// 2x2 minors of the (b, c) rows
	xy := b.X*c.Y - b.Y*c.X
	xz := b.X*c.Z - b.Z*c.X
	xw := b.X*c.W - b.W*c.X
	yz := b.Y*c.Z - b.Z*c.Y
	yw := b.Y*c.W - b.W*c.Y
	zw := b.Z*c.W - b.W*c.Z
	return Vector4{
		X: a.Y*zw - a.Z*yw + a.W*yz,
		Y: -(a.X*zw - a.Z*xw + a.W*xz),
		Z: a.X*yw - a.Y*xw + a.W*xy,
		W: -(a.X*yz - a.Y*xz + a.Z*xy),
	}
}

func (A Mat4) MulVec(v Vector4) Vector4 {
	return Vector4{
		A.M[0][0]*v.X + A.M[0][1]*v.Y + A.M[0][2]*v.Z + A.M[0][3]*v.W,
		A.M[1][0]*v.X + A.M[1][1]*v.Y + A.M[1][2]*v.Z + A.M[1][3]*v.W,
		A.M[2][0]*v.X + A.M[2][1]*v.Y + A.M[2][2]*v.Z + A.M[2][3]*v.W,
		A.M[3][0]*v.X + A.M[3][1]*v.Y + A.M[3][2]*v.Z + A.M[3][3]*v.W,
	}
}

// Vector3 is a 4D vertex after the perspective divide on W.
type Vector3 struct {
	X, Y, Z Real
}

func (a Vector3) Add(b Vector3) Vector3 { return Vector3{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }
func (a Vector3) Sub(b Vector3) Vector3 { return Vector3{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }
func (v Vector3) Mul(s Real) Vector3    { return Vector3{v.X * s, v.Y * s, v.Z * s} }
func (v Vector3) Len() Real             { return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z) }
