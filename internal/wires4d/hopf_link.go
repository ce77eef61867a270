package wires4d

import (
	"fmt"
	"math"
)

// hopfLinkTopology builds two linked great circles of the 3-sphere, one in
// the XY plane and one in the ZW plane. In 4D the circles are disjoint;
// the projection interlocks them. Each circle is a closed polyline with
// the given segment count.
func hopfLinkTopology(segments int, radius Real) (*Topology, error) {
	if segments < 3 {
		return nil, fmt.Errorf("%w: link segments must be >= 3, got %d", ErrInvalidTopologyParameters, segments)
	}
	if err := checkRadius(radius); err != nil {
		return nil, err
	}

	verts := make([]Vector4, 0, 2*segments)
	edges := make([][2]int, 0, 2*segments)
	for i := 0; i < segments; i++ {
		t := 2 * math.Pi * Real(i) / Real(segments)
		verts = append(verts, Vector4{X: radius * math.Cos(t), Y: radius * math.Sin(t)})
		edges = append(edges, orderedEdge(i, (i+1)%segments))
	}
	for i := 0; i < segments; i++ {
		t := 2 * math.Pi * Real(i) / Real(segments)
		verts = append(verts, Vector4{Z: radius * math.Cos(t), W: radius * math.Sin(t)})
		edges = append(edges, orderedEdge(segments+i, segments+(i+1)%segments))
	}

	t := &Topology{Vertices: verts, Edges: edges}
	if err := t.validate(); err != nil {
		return nil, err
	}
	DebugLog("Built Hopf link topology: V=%d E=%d", t.VertexCount(), t.EdgeCount())
	return t, nil
}
