package wires4d

import (
	"fmt"
	"math"
)

// mobiusTopology builds a Möbius band around a center circle of the given
// radius. The cross strip spans width across the band; its direction tilts
// by the half twist u/2 out of the circle plane, and the W coordinate
// carries a matching component so the half twist closes without
// self-intersection in 4D. The u direction wraps with the strip flipped
// (the defining identification); the v direction is open. Faces count
// su·(sv-1), so V - E + F = 0 holds on the closed band.
func mobiusTopology(su, sv int, radius, width Real) (*Topology, error) {
	if su < 3 || sv < 3 {
		return nil, fmt.Errorf("%w: strip segment counts must be >= 3, got u=%d v=%d", ErrInvalidTopologyParameters, su, sv)
	}
	if err := checkRadius(radius); err != nil {
		return nil, err
	}
	if !(width > 0) {
		return nil, fmt.Errorf("%w: width must be > 0, got %g", ErrInvalidTopologyParameters, width)
	}

	verts := make([]Vector4, 0, su*sv)
	for i := 0; i < su; i++ {
		u := 2 * math.Pi * Real(i) / Real(su)
		twist := u / 2
		for j := 0; j < sv; j++ {
			v := width * (Real(j)/Real(sv-1) - 0.5)
			rho := radius + v*math.Cos(twist)
			verts = append(verts, Vector4{
				X: rho * math.Cos(u),
				Y: rho * math.Sin(u),
				Z: v * math.Sin(twist),
				W: v * math.Sin(twist+math.Pi/4) * 0.8,
			})
		}
	}
	// The u seam glues column su-1 to column 0 with v reversed.
	at := func(i, j int) int {
		if i == su {
			return sv - 1 - j
		}
		return i*sv + j
	}

	var edges [][2]int
	var faces [][]int
	for i := 0; i < su; i++ {
		for j := 0; j < sv; j++ {
			edges = append(edges, orderedEdge(at(i, j), at(i+1, j)))
			if j+1 < sv {
				edges = append(edges, orderedEdge(at(i, j), at(i, j+1)))
				faces = append(faces, []int{at(i, j), at(i+1, j), at(i+1, j+1), at(i, j+1)})
			}
		}
	}

	t := &Topology{Vertices: verts, Edges: edges, Faces: faces}
	if err := t.validate(); err != nil {
		return nil, err
	}
	DebugLog("Built Möbius strip topology: V=%d E=%d F=%d", t.VertexCount(), t.EdgeCount(), t.FaceCount())
	return t, nil
}
