package wires4d

import "math"

// Angles in radians for rotations in coordinate planes.
type Rot4 struct {
	XY, XZ, XW, YZ, YW, ZW Real
}

// Plane identifies one of the six rotation planes of 4-space.
type Plane int

const (
	PlaneXY Plane = iota
	PlaneXZ
	PlaneXW
	PlaneYZ
	PlaneYW
	PlaneZW
)

func (p Plane) String() string {
	switch p {
	case PlaneXY:
		return "XY"
	case PlaneXZ:
		return "XZ"
	case PlaneXW:
		return "XW"
	case PlaneYZ:
		return "YZ"
	case PlaneYW:
		return "YW"
	case PlaneZW:
		return "ZW"
	}
	return "??"
}

// WithPlane returns a copy of r with the angle for one plane replaced.
func (r Rot4) WithPlane(p Plane, angle Real) Rot4 {
	switch p {
	case PlaneXY:
		r.XY = angle
	case PlaneXZ:
		r.XZ = angle
	case PlaneXW:
		r.XW = angle
	case PlaneYZ:
		r.YZ = angle
	case PlaneYW:
		r.YW = angle
	case PlaneZW:
		r.ZW = angle
	}
	return r
}

// PlaneRotation builds the elementary rotation matrix for one plane:
// identity outside the two involved axes, cosine/sine on the 2×2 block.
func PlaneRotation(p Plane, angle Real) Mat4 {
	switch p {
	case PlaneXY:
		return rotXY(angle)
	case PlaneXZ:
		return rotXZ(angle)
	case PlaneXW:
		return rotXW(angle)
	case PlaneYZ:
		return rotYZ(angle)
	case PlaneYW:
		return rotYW(angle)
	case PlaneZW:
		return rotZW(angle)
	}
	return I4()
}

func rotXY(a Real) Mat4 {
	c, s := math.Cos(a), math.Sin(a)
	M := I4()
	M.M[0][0], M.M[0][1] = c, -s
	M.M[1][0], M.M[1][1] = s, c
	return M
}
func rotXZ(a Real) Mat4 {
	c, s := math.Cos(a), math.Sin(a)
	M := I4()
	M.M[0][0], M.M[0][2] = c, -s
	M.M[2][0], M.M[2][2] = s, c
	return M
}
func rotXW(a Real) Mat4 {
	c, s := math.Cos(a), math.Sin(a)
	M := I4()
	M.M[0][0], M.M[0][3] = c, -s
	M.M[3][0], M.M[3][3] = s, c
	return M
}
func rotYZ(a Real) Mat4 {
	c, s := math.Cos(a), math.Sin(a)
	M := I4()
	M.M[1][1], M.M[1][2] = c, -s
	M.M[2][1], M.M[2][2] = s, c
	return M
}
func rotYW(a Real) Mat4 {
	c, s := math.Cos(a), math.Sin(a)
	M := I4()
	M.M[1][1], M.M[1][3] = c, -s
	M.M[3][1], M.M[3][3] = s, c
	return M
}
func rotZW(a Real) Mat4 {
	c, s := math.Cos(a), math.Sin(a)
	M := I4()
	M.M[2][2], M.M[2][3] = c, -s
	M.M[3][2], M.M[3][3] = s, c
	return M
}

// rotFromAngles composes the six plane rotations of r into one matrix.
// The plane order is fixed so results do not depend on call-site iteration:
// XY applies first, then XZ, XW, YZ, YW, ZW.
func rotFromAngles(r Rot4) Mat4 {
	R := I4()
	R = rotXY(r.XY).Mul(R)
	R = rotXZ(r.XZ).Mul(R)
	R = rotXW(r.XW).Mul(R)
	R = rotYZ(r.YZ).Mul(R)
	R = rotYW(r.YW).Mul(R)
	R = rotZW(r.ZW).Mul(R)
	return R
}
