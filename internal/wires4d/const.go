package wires4d

const (
	// DefaultDistance is the 4D camera distance a scene file gets when it
	// does not set one.
	DefaultDistance Real = 5
)

// Numeric tolerances shared across the kernel.
const (
	// epsDegenerate: below this length Normalize refuses to divide.
	epsDegenerate = 1e-12
	// epsSingular: |distance - w| band treated as the projection singularity.
	epsSingular = 1e-9
	// epsEdge: relative slack when matching the canonical edge length.
	epsEdge = 1e-6
	// epsSupport: relative slack when collecting vertices lying on a
	// support hyperplane.
	epsSupport = 1e-6
)
