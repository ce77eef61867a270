package wires4d

import "math"

// Polytope										Vertices		Edges		Faces (2D)			Cells (3D)
// 5-cell 	(simplex)					5						10			10 triangles		5 tetrahedra
// 8-cell 	(tesseract)				16					32			24 squares			8 cubes
// 16-cell 	(cross-polytope)	8						24			32 triangles		16 tetrahedra
// 24-cell										24					96			96 triangles		24 octahedra
// 120-cell										600					1200		720 pentagons		120 dodecahedra
// 600-cell										120					720			1200 triangles	600 tetrahedra

// cell5Topology builds the regular 5-cell (4-simplex). Every pair of its
// five vertices is an edge, every triple a face and every quadruple a
// tetrahedral cell. size is the circumradius.
func cell5Topology(size Real) (*Topology, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}
	rt5 := math.Sqrt(5)
	verts := []Vector4{
		{1, 1, 1, -1 / rt5},
		{1, -1, -1, -1 / rt5},
		{-1, 1, -1, -1 / rt5},
		{-1, -1, 1, -1 / rt5},
		{0, 0, 0, rt5 - 1/rt5},
	}

	// center on the origin, then scale the circumradius to size
	var c Vector4
	for _, v := range verts {
		c = c.Add(v)
	}
	c = c.Mul(1.0 / 5)
	maxR := 0.0
	for i := range verts {
		verts[i] = verts[i].Sub(c)
		if l := verts[i].Len(); l > maxR {
			maxR = l
		}
	}
	s := size / maxR
	for i := range verts {
		verts[i] = verts[i].Mul(s)
	}

	var edges [][2]int
	var faces [][]int
	var cells [][]int
	for i := 0; i < 5; i++ {
		for j := i + 1; j < 5; j++ {
			edges = append(edges, [2]int{i, j})
			for k := j + 1; k < 5; k++ {
				faces = append(faces, []int{i, j, k})
				for l := k + 1; l < 5; l++ {
					cells = append(cells, []int{i, j, k, l})
				}
			}
		}
	}

	t := &Topology{Vertices: verts, Edges: edges, Faces: faces, Cells: cells}
	if err := t.validate(); err != nil {
		return nil, err
	}
	DebugLog("Built 5-cell topology: V=%d E=%d F=%d C=%d", t.VertexCount(), t.EdgeCount(), t.FaceCount(), t.CellCount())
	return t, nil
}
