package wires4d

import "errors"

// Sentinel errors for kernel operations. All failures are synchronous and
// local; a mutator that fails validation leaves its receiver unchanged.
var (
	// ErrInvalidTopologyParameters rejects bad generator input at
	// construction time, never at render time.
	ErrInvalidTopologyParameters = errors.New("wires4d: invalid topology parameters")

	// ErrDegenerateVector means Normalize was asked to normalize a
	// near-zero-length vector.
	ErrDegenerateVector = errors.New("wires4d: degenerate vector")

	// ErrInvalidScale rejects a negative uniform scale.
	ErrInvalidScale = errors.New("wires4d: invalid scale")

	// ErrInvalidProjection rejects a non-positive viewing distance.
	ErrInvalidProjection = errors.New("wires4d: invalid projection parameters")

	// ErrProjectionSingularity marks a vertex coinciding with the camera
	// hyperplane; the caller decides whether to skip or clip it.
	ErrProjectionSingularity = errors.New("wires4d: projection singularity")

	// ErrEmptyShape marks a bounding-box query on a topology with no
	// vertices.
	ErrEmptyShape = errors.New("wires4d: empty shape")
)
