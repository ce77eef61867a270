package wires4d

import (
	"fmt"
	"math"
)

// cliffordTorusTopology samples the flat torus
// (radius/√2)(cos u, sin u, cos v, sin v) on a su×sv grid. Every point sits
// at distance radius from the origin, so the surface lives on the
// 3-sphere. Both directions wrap, every grid square becomes a quad face,
// and the mesh has no cells, so V - E + F - C = uv - 2uv + uv - 0 = 0.
func cliffordTorusTopology(su, sv int, radius Real) (*Topology, error) {
	if su < 3 || sv < 3 {
		return nil, fmt.Errorf("%w: torus segment counts must be >= 3, got u=%d v=%d", ErrInvalidTopologyParameters, su, sv)
	}
	if err := checkRadius(radius); err != nil {
		return nil, err
	}

	r := radius / math.Sqrt2
	verts := make([]Vector4, 0, su*sv)
	for i := 0; i < su; i++ {
		u := 2 * math.Pi * Real(i) / Real(su)
		for j := 0; j < sv; j++ {
			v := 2 * math.Pi * Real(j) / Real(sv)
			verts = append(verts, Vector4{
				X: r * math.Cos(u),
				Y: r * math.Sin(u),
				Z: r * math.Cos(v),
				W: r * math.Sin(v),
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
	DebugLog("Built Clifford torus topology: V=%d E=%d F=%d", t.VertexCount(), t.EdgeCount(), t.FaceCount())
	return t, nil
}

func checkRadius(radius Real) error {
	if !(radius > 0) {
		return fmt.Errorf("%w: radius must be > 0, got %g", ErrInvalidTopologyParameters, radius)
	}
	return nil
}
