package wires4d

import (
	"fmt"
	"math"
)

// ProjectVertex performs the 4D to 3D perspective projection: a camera at
// W = distance looking toward W = -inf scales the XYZ coordinates by
// distance/(distance-w). Points on the W = 0 slice keep their XYZ exactly.
// A point whose W coordinate reaches the camera hyperplane has no image
// and fails with ErrProjectionSingularity.
func ProjectVertex(v Vector4, distance Real) (Vector3, error) {
	if !(distance > 0) || math.IsNaN(distance) || math.IsInf(distance, 0) {
		return Vector3{}, fmt.Errorf("%w: distance must be a positive finite number, got %g", ErrInvalidProjection, distance)
	}
	denom := distance - v.W
	if math.Abs(denom) < epsSingular {
		return Vector3{}, fmt.Errorf("%w: vertex w=%g at camera distance %g", ErrProjectionSingularity, v.W, distance)
	}
	s := distance / denom
	return Vector3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}, nil
}

// ProjectTo3D projects a whole vertex slice, failing on the first vertex
// that sits on the camera hyperplane. The index order of the output
// matches the input, so edge and face indices stay valid.
func ProjectTo3D(verts []Vector4, distance Real) ([]Vector3, error) {
	out := make([]Vector3, len(verts))
	for i, v := range verts {
		p, err := ProjectVertex(v, distance)
		if err != nil {
			return nil, fmt.Errorf("vertex %d: %w", i, err)
		}
		out[i] = p
	}
	return out, nil
}
