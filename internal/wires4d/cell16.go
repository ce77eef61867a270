package wires4d

// cell16Topology builds the 16-cell (cross-polytope): one unit point on
// each semi-axis, scaled to circumradius size. Vertex index = 2*axis for
// the positive direction, 2*axis+1 for the negative. Every non-antipodal
// pair is an edge; choosing signs for three axes gives the 32 triangles,
// for all four axes the 16 tetrahedral cells.
func cell16Topology(size Real) (*Topology, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}
	verts := make([]Vector4, 8)
	for axis := 0; axis < 4; axis++ {
		var v Vector4
		switch axis {
		case 0:
			v.X = size
		case 1:
			v.Y = size
		case 2:
			v.Z = size
		case 3:
			v.W = size
		}
		verts[2*axis] = v
		verts[2*axis+1] = v.Mul(-1)
	}
	idx := func(axis, sign int) int { return 2*axis + sign }

	var edges [][2]int
	for i := 0; i < 8; i++ {
		for j := i + 1; j < 8; j++ {
			if i/2 != j/2 { // skip antipodal pairs
				edges = append(edges, [2]int{i, j})
			}
		}
	}

	var faces [][]int
	for a := 0; a < 4; a++ {
		for b := a + 1; b < 4; b++ {
			for c := b + 1; c < 4; c++ {
				for s := 0; s < 8; s++ {
					faces = append(faces, []int{
						idx(a, s&1),
						idx(b, s>>1&1),
						idx(c, s>>2&1),
					})
				}
			}
		}
	}

	var cells [][]int
	for s := 0; s < 16; s++ {
		cells = append(cells, []int{
			idx(0, s&1),
			idx(1, s>>1&1),
			idx(2, s>>2&1),
			idx(3, s>>3&1),
		})
	}

	t := &Topology{Vertices: verts, Edges: edges, Faces: faces, Cells: cells}
	if err := t.validate(); err != nil {
		return nil, err
	}
	DebugLog("Built 16-cell topology: V=%d E=%d F=%d C=%d", t.VertexCount(), t.EdgeCount(), t.FaceCount(), t.CellCount())
	return t, nil
}
