package wires4d

// cell8Topology builds the tesseract with edge length size. Vertices are
// all sign combinations of (±size/2)^4, indexed by 4-bit pattern with X on
// the high bit; a set bit means the positive half-length. Edges join
// vertices at Hamming distance one, squares come from fixing two axes and
// cubic cells from fixing one.
func cell8Topology(size Real) (*Topology, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}
	h := size / 2
	side := func(i int, bit uint) Real {
		if i>>bit&1 == 1 {
			return h
		}
		return -h
	}

	verts := make([]Vector4, 16)
	for i := 0; i < 16; i++ {
		verts[i] = Vector4{side(i, 3), side(i, 2), side(i, 1), side(i, 0)}
	}

	var edges [][2]int
	for i := 0; i < 16; i++ {
		for bit := uint(0); bit < 4; bit++ {
			if j := i ^ 1<<bit; j > i {
				edges = append(edges, [2]int{i, j})
			}
		}
	}

	// one square per axis pair and per fixing of the remaining two axes
	axisBits := [4]uint{3, 2, 1, 0} // X, Y, Z, W
	var faces [][]int
	for a := 0; a < 4; a++ {
		for b := a + 1; b < 4; b++ {
			ba, bb := axisBits[a], axisBits[b]
			fixed := 0xF &^ (1<<ba | 1<<bb)
			for base := 0; base < 16; base++ {
				if base&^fixed != 0 {
					continue
				}
				faces = append(faces, []int{
					base,
					base | 1<<bb,
					base | 1<<ba | 1<<bb,
					base | 1<<ba,
				})
			}
		}
	}

	// one cube per axis and per side
	var cells [][]int
	for a := 0; a < 4; a++ {
		bit := axisBits[a]
		for val := 0; val < 2; val++ {
			var cell []int
			for i := 0; i < 16; i++ {
				if i>>bit&1 == val {
					cell = append(cell, i)
				}
			}
			cells = append(cells, cell)
		}
	}

	t := &Topology{Vertices: verts, Edges: edges, Faces: faces, Cells: cells}
	if err := t.validate(); err != nil {
		return nil, err
	}
	DebugLog("Built 8-cell topology: V=%d E=%d F=%d C=%d", t.VertexCount(), t.EdgeCount(), t.FaceCount(), t.CellCount())
	return t, nil
}
