package wires4d

import "fmt"

// Transform carries the mutable placement state of one shape: a position,
// an accumulated rotation matrix and a uniform scale. Rotation is stored as
// a matrix rather than angles; six non-commuting planes make angle state
// ambiguous under composition. A Transform is exclusively owned by its
// Shape and performs no locking.
type Transform struct {
	position Vector4
	rotation Mat4
	scale    Real
}

func newTransform() Transform {
	return Transform{rotation: I4(), scale: 1}
}

func (t *Transform) Position() Vector4 { return t.position }
func (t *Transform) Rotation() Mat4    { return t.rotation }
func (t *Transform) Scale() Real       { return t.scale }

// Axis selects one coordinate of a Vector4.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
	AxisW
)

// AxisValue pairs an axis with a coordinate for sparse position updates.
type AxisValue struct {
	Axis  Axis
	Value Real
}

// SetPosition replaces the position outright.
func (t *Transform) SetPosition(p Vector4) { t.position = p }

// SetPositionAxes overwrites only the named axes; omitted axes keep their
// current value. Updates to distinct axes commute, so argument order does
// not matter.
func (t *Transform) SetPositionAxes(vals ...AxisValue) {
	for _, av := range vals {
		switch av.Axis {
		case AxisX:
			t.position.X = av.Value
		case AxisY:
			t.position.Y = av.Value
		case AxisZ:
			t.position.Z = av.Value
		case AxisW:
			t.position.W = av.Value
		}
	}
}

// Translate adds dv to the position; rotation and scale are untouched.
func (t *Transform) Translate(dv Vector4) { t.position = t.position.Add(dv) }

// Rotate composes the plane rotations of r into the accumulated rotation.
// Within one call the planes apply in the fixed order XY, XZ, XW, YZ, YW,
// ZW; the previously accumulated rotation applies before the new one.
// Repeated small calls approximate a continuous spin.
func (t *Transform) Rotate(r Rot4) {
	t.rotation = rotFromAngles(r).Mul(t.rotation)
}

// SetRotation discards the accumulated rotation and rebuilds it from r
// alone, using the same plane order as Rotate.
func (t *Transform) SetRotation(r Rot4) {
	t.rotation = rotFromAngles(r)
}

// SetScale sets the uniform scale multiplier. Negative values fail with
// ErrInvalidScale and leave the prior scale in place.
func (t *Transform) SetScale(s Real) error {
	if s < 0 {
		return fmt.Errorf("%w: scale must be >= 0, got %g", ErrInvalidScale, s)
	}
	t.scale = s
	return nil
}

// Apply maps a local vertex to world space: rotation·(scale·v) + position.
func (t *Transform) Apply(v Vector4) Vector4 {
	return t.rotation.MulVec(v.Mul(t.scale)).Add(t.position)
}
