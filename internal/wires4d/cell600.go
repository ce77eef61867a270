package wires4d

import "fmt"

// cell600Topology builds the 600-cell with edge length size. The 120
// vertices come from the unit-radius closed form, scaled so that the
// shortest pairwise distance (the canonical edge, 1/φ at unit radius)
// equals size. The 600 tetrahedral cells are the 4-cliques of the edge
// graph; the 1200 triangles are the pairwise cell intersections.
func cell600Topology(size Real) (*Topology, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}
	verts := cell600UnitVerts()
	if len(verts) != 120 {
		return nil, fmt.Errorf("%w: 600-cell vertex orbit produced %d points, want 120", ErrInvalidTopologyParameters, len(verts))
	}
	s := size / minPairDistance(verts)
	for i := range verts {
		verts[i] = verts[i].Mul(s)
	}

	edges := edgesByMinDistance(verts)
	cells := tetraCells(verts)
	faces := facesFromCells(verts, cells)

	t := &Topology{Vertices: verts, Edges: edges, Faces: faces, Cells: cells}
	if err := t.validate(); err != nil {
		return nil, err
	}
	DebugLog("Built 600-cell topology: V=%d E=%d F=%d C=%d", t.VertexCount(), t.EdgeCount(), t.FaceCount(), t.CellCount())
	return t, nil
}
