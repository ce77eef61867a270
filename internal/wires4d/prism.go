package wires4d

import (
	"fmt"
	"sort"
)

// prismTopology extrudes a platonic base along the W axis: one copy of the
// base at w=-height/2, one at w=+height/2, an extrusion edge between each
// corresponding vertex pair, a quad face bridging each base edge and a
// prism cell bridging each base face. The two base copies close the shape
// as cells of their own, giving the f-vector
// (2V₃, 2E₃+V₃, 2F₃+E₃, F₃+2).
func prismTopology(base polyhedron, size, height Real) (*Topology, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}
	if !(height > 0) {
		return nil, fmt.Errorf("%w: height must be > 0, got %g", ErrInvalidTopologyParameters, height)
	}

	s := size / base.edgeLen
	hh := height / 2
	n := len(base.verts)

	verts := make([]Vector4, 0, 2*n)
	for _, w := range []Real{-hh, hh} {
		for _, v := range base.verts {
			verts = append(verts, Vector4{v.X * s, v.Y * s, v.Z * s, w})
		}
	}

	edges := make([][2]int, 0, 2*len(base.edges)+n)
	for _, layer := range []int{0, n} {
		for _, e := range base.edges {
			edges = append(edges, [2]int{e[0] + layer, e[1] + layer})
		}
	}
	for i := 0; i < n; i++ {
		edges = append(edges, [2]int{i, i + n})
	}

	faces := make([][]int, 0, 2*len(base.faces)+len(base.edges))
	for _, layer := range []int{0, n} {
		for _, f := range base.faces {
			face := make([]int, len(f))
			for i, idx := range f {
				face[i] = idx + layer
			}
			faces = append(faces, face)
		}
	}
	for _, e := range base.edges {
		faces = append(faces, []int{e[0], e[1], e[1] + n, e[0] + n})
	}

	cells := make([][]int, 0, len(base.faces)+2)
	bottom := make([]int, n)
	top := make([]int, n)
	for i := 0; i < n; i++ {
		bottom[i] = i
		top[i] = i + n
	}
	cells = append(cells, bottom, top)
	for _, f := range base.faces {
		cell := make([]int, 0, 2*len(f))
		for _, idx := range f {
			cell = append(cell, idx, idx+n)
		}
		sort.Ints(cell)
		cells = append(cells, cell)
	}

	t := &Topology{Vertices: verts, Edges: edges, Faces: faces, Cells: cells}
	if err := t.validate(); err != nil {
		return nil, err
	}
	DebugLog("Built prism topology: V=%d E=%d F=%d C=%d", t.VertexCount(), t.EdgeCount(), t.FaceCount(), t.CellCount())
	return t, nil
}
