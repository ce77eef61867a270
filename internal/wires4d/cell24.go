package wires4d

// cell24Topology builds the self-dual 24-cell with edge length size.
// Vertices are the 8 axis points (±1,0,0,0)... plus the 16 half-points
// (±1/2,±1/2,±1/2,±1/2), all scaled by size; the shortest pairwise
// distance is then exactly size, which fixes the 96 edges. The 24
// octahedral cells sit on support hyperplanes of the dual directions
// (the permutations of (±1,±1,0,0)), and the 96 triangles are the
// pairwise cell intersections.
func cell24Topology(size Real) (*Topology, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}
	verts := make([]Vector4, 0, 24)
	for axis := 0; axis < 4; axis++ {
		for _, s := range []Real{1, -1} {
			var v Vector4
			switch axis {
			case 0:
				v.X = s
			case 1:
				v.Y = s
			case 2:
				v.Z = s
			case 3:
				v.W = s
			}
			verts = append(verts, v.Mul(size))
		}
	}
	for i := 0; i < 16; i++ {
		half := func(bit uint) Real {
			if i>>bit&1 == 1 {
				return 0.5
			}
			return -0.5
		}
		verts = append(verts, Vector4{half(3), half(2), half(1), half(0)}.Mul(size))
	}

	edges := edgesByMinDistance(verts)
	cells := cellsFromSupport(verts, cell24DualDirs())
	faces := facesFromCells(verts, cells)

	t := &Topology{Vertices: verts, Edges: edges, Faces: faces, Cells: cells}
	if err := t.validate(); err != nil {
		return nil, err
	}
	DebugLog("Built 24-cell topology: V=%d E=%d F=%d C=%d", t.VertexCount(), t.EdgeCount(), t.FaceCount(), t.CellCount())
	return t, nil
}

// cell24DualDirs returns the 24 facet directions of the axis-plus-halves
// 24-cell: all permutations of (±1,±1,0,0).
func cell24DualDirs() []Vector4 {
	var dirs []Vector4
	for a := 0; a < 4; a++ {
		for b := a + 1; b < 4; b++ {
			for _, sa := range []Real{1, -1} {
				for _, sb := range []Real{1, -1} {
					var v [4]Real
					v[a] = sa
					v[b] = sb
					dirs = append(dirs, Vector4{v[0], v[1], v[2], v[3]})
				}
			}
		}
	}
	return dirs
}
