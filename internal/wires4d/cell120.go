package wires4d

import "fmt"

// cell120Topology builds the 120-cell with edge length size. Its 600
// vertices are the normalized 600-cell cell centroids scaled so the
// shortest pairwise distance equals size. Because the vertex set is the
// dual of the 600-cell by construction, the 120 dodecahedral cells (20
// vertices each) are exactly the support sets of the 600-cell vertex
// directions; adjacent cells intersect in the 720 pentagonal faces, which
// orderFaceLoop turns into proper cycles.
func cell120Topology(size Real) (*Topology, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}
	verts := cell120UnitVerts()
	if len(verts) != 600 {
		return nil, fmt.Errorf("%w: 120-cell dual construction produced %d points, want 600", ErrInvalidTopologyParameters, len(verts))
	}
	s := size / minPairDistance(verts)
	for i := range verts {
		verts[i] = verts[i].Mul(s)
	}

	edges := edgesByMinDistance(verts)
	cells := cellsFromSupport(verts, cell600UnitVerts())
	faces := facesFromCells(verts, cells)

	t := &Topology{Vertices: verts, Edges: edges, Faces: faces, Cells: cells}
	if err := t.validate(); err != nil {
		return nil, err
	}
	DebugLog("Built 120-cell topology: V=%d E=%d F=%d C=%d", t.VertexCount(), t.EdgeCount(), t.FaceCount(), t.CellCount())
	return t, nil
}
