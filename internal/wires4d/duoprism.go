package wires4d

import (
	"fmt"
	"math"
	"sort"
)

// duoprismTopology builds the m,n-duoprism: the Cartesian product of two
// regular polygon rings laid out on a 4D torus as
// (cos θ_i, sin θ_i, cos φ_j, sin φ_j)·size. Vertex index = i*n + j.
// Edges step one position in exactly one ring. Faces are the m·n torus
// squares plus the m flat n-gons (fixed i) and n flat m-gons (fixed j);
// cells are the m n-gonal and n m-gonal prisms between consecutive rings,
// giving the f-vector (mn, 2mn, mn+m+n, m+n).
func duoprismTopology(m, n int, size Real) (*Topology, error) {
	if m < 3 || n < 3 {
		return nil, fmt.Errorf("%w: duoprism degrees must be >= 3, got m=%d n=%d", ErrInvalidTopologyParameters, m, n)
	}
	if err := checkSize(size); err != nil {
		return nil, err
	}

	verts := make([]Vector4, 0, m*n)
	for i := 0; i < m; i++ {
		theta := 2 * math.Pi * Real(i) / Real(m)
		x, y := math.Cos(theta)*size, math.Sin(theta)*size
		for j := 0; j < n; j++ {
			phi := 2 * math.Pi * Real(j) / Real(n)
			verts = append(verts, Vector4{x, y, math.Cos(phi) * size, math.Sin(phi) * size})
		}
	}
	at := func(i, j int) int { return (i%m)*n + j%n }

	var edges [][2]int
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			edges = append(edges, orderedEdge(at(i, j), at(i+1, j)))
			edges = append(edges, orderedEdge(at(i, j), at(i, j+1)))
		}
	}

	var faces [][]int
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			faces = append(faces, []int{at(i, j), at(i+1, j), at(i+1, j+1), at(i, j+1)})
		}
	}
	for i := 0; i < m; i++ {
		ngon := make([]int, n)
		for j := 0; j < n; j++ {
			ngon[j] = at(i, j)
		}
		faces = append(faces, ngon)
	}
	for j := 0; j < n; j++ {
		mgon := make([]int, m)
		for i := 0; i < m; i++ {
			mgon[i] = at(i, j)
		}
		faces = append(faces, mgon)
	}

	var cells [][]int
	for i := 0; i < m; i++ {
		cell := make([]int, 0, 2*n)
		for j := 0; j < n; j++ {
			cell = append(cell, at(i, j), at(i+1, j))
		}
		sort.Ints(cell)
		cells = append(cells, cell)
	}
	for j := 0; j < n; j++ {
		cell := make([]int, 0, 2*m)
		for i := 0; i < m; i++ {
			cell = append(cell, at(i, j), at(i, j+1))
		}
		sort.Ints(cell)
		cells = append(cells, cell)
	}

	t := &Topology{Vertices: verts, Edges: edges, Faces: faces, Cells: cells}
	if err := t.validate(); err != nil {
		return nil, err
	}
	DebugLog("Built %d,%d-duoprism topology: V=%d E=%d F=%d C=%d", m, n, t.VertexCount(), t.EdgeCount(), t.FaceCount(), t.CellCount())
	return t, nil
}

// orderedEdge stores the smaller index first.
func orderedEdge(a, b int) [2]int {
	if a > b {
		a, b = b, a
	}
	return [2]int{a, b}
}
