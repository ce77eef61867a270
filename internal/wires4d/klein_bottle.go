package wires4d

import (
	"fmt"
	"math"
)

// kleinBottleTopology samples the figure-8 immersion of the Klein bottle,
// lifted to 4D: the usual self-intersecting 3D image gains a W component
// of cos(v)/2, which separates the crossing circle into an embedding.
// Both grid directions wrap, so the quad mesh carries the bottle's Euler
// characteristic V - E + F = 0.
func kleinBottleTopology(su, sv int, radius Real) (*Topology, error) {
	if su < 3 || sv < 3 {
		return nil, fmt.Errorf("%w: bottle segment counts must be >= 3, got u=%d v=%d", ErrInvalidTopologyParameters, su, sv)
	}
	if err := checkRadius(radius); err != nil {
		return nil, err
	}

	verts := make([]Vector4, 0, su*sv)
	for i := 0; i < su; i++ {
		u := 2 * math.Pi * Real(i) / Real(su)
		cu2, su2 := math.Cos(u/2), math.Sin(u/2)
		for j := 0; j < sv; j++ {
			v := 2 * math.Pi * Real(j) / Real(sv)
			rho := radius + cu2*math.Sin(v) - su2*math.Sin(2*v)
			verts = append(verts, Vector4{
				X: rho * math.Cos(u),
				Y: rho * math.Sin(u),
				Z: su2*math.Sin(v) + cu2*math.Sin(2*v),
				W: math.Cos(v) * 0.5,
			})
		}
	}
	at := func(i, j int) int { return (i%su)*sv + j%sv }

	var edges [][2]int
	var faces [][]int
	for i := 0; i < su; i++ {
		for j := 0; j < sv; j++ {
			edges = append(edges, orderedEdge(at(i, j), at(i+1, j)))
			edges = append(edges, orderedEdge(at(i, j), at(i, j+1)))
			faces = append(faces, []int{at(i, j), at(i+1, j), at(i+1, j+1), at(i, j+1)})
		}
	}

	t := &Topology{Vertices: verts, Edges: edges, Faces: faces}
	if err := t.validate(); err != nil {
		return nil, err
	}
	DebugLog("Built Klein bottle topology: V=%d E=%d F=%d", t.VertexCount(), t.EdgeCount(), t.FaceCount())
	return t, nil
}
