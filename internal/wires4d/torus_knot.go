package wires4d

import (
	"fmt"
	"math"
)

// torusKnotTopology traces the (p,q) torus knot on the Clifford torus of
// the given radius: the XY pair winds p times while the ZW pair winds q
// times. The result is a closed polyline, V = E = segments, no faces.
func torusKnotTopology(p, q, segments int, radius Real) (*Topology, error) {
	if p < 1 || q < 1 {
		return nil, fmt.Errorf("%w: knot winding numbers must be >= 1, got p=%d q=%d", ErrInvalidTopologyParameters, p, q)
	}
	if segments < 3 {
		return nil, fmt.Errorf("%w: knot segments must be >= 3, got %d", ErrInvalidTopologyParameters, segments)
	}
	if err := checkRadius(radius); err != nil {
		return nil, err
	}

	r := radius / math.Sqrt2
	verts := make([]Vector4, 0, segments)
	edges := make([][2]int, 0, segments)
	for i := 0; i < segments; i++ {
		t := 2 * math.Pi * Real(i) / Real(segments)
		verts = append(verts, Vector4{
			X: r * math.Cos(Real(p)*t),
			Y: r * math.Sin(Real(p)*t),
			Z: r * math.Cos(Real(q)*t),
			W: r * math.Sin(Real(q)*t),
		})
		edges = append(edges, orderedEdge(i, (i+1)%segments))
	}

	t := &Topology{Vertices: verts, Edges: edges}
	if err := t.validate(); err != nil {
		return nil, err
	}
	DebugLog("Built (%d,%d) torus knot topology: V=%d E=%d", p, q, t.VertexCount(), t.EdgeCount())
	return t, nil
}
