// Package wires4d is a 4D geometry and projection kernel: topology
// generators for regular 4-polytopes, prisms, duoprisms and parametric
// manifolds, a per-shape transform pipeline over the six rotation planes,
// and the 4D->3D perspective projection used for wireframe display.
//
// The kernel is synchronous and lock-free. Topologies are immutable after
// generation and may be shared freely; each Transform belongs to exactly
// one Shape and must not be mutated concurrently.
package wires4d

// Real is the scalar type used across the kernel.
type Real = float64
