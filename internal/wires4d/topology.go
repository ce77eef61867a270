package wires4d

import (
	"fmt"
	"math"
)

// Topology holds the immutable vertex/edge/face/cell data of one shape
// family at fixed parameters. Vertices are in the local (untransformed)
// frame. Edges are unordered index pairs stored with the smaller index
// first; faces are cyclically ordered index loops of at least three
// vertices; cells are sorted vertex index tuples. A Topology is never
// mutated after generation and is safe to share across shapes and threads.
type Topology struct {
	Vertices []Vector4
	Edges    [][2]int
	Faces    [][]int
	Cells    [][]int
}

func (t *Topology) VertexCount() int { return len(t.Vertices) }
func (t *Topology) EdgeCount() int   { return len(t.Edges) }
func (t *Topology) FaceCount() int   { return len(t.Faces) }
func (t *Topology) CellCount() int   { return len(t.Cells) }

// EulerCharacteristic returns V - E + F - C, an exact integer identity
// that must be zero for every generated polytope.
func (t *Topology) EulerCharacteristic() int {
	return len(t.Vertices) - len(t.Edges) + len(t.Faces) - len(t.Cells)
}

// validate is the mandatory generation-time self-check: every referenced
// index must be in range and the 4D Euler identity must hold exactly.
func (t *Topology) validate() error {
	n := len(t.Vertices)
	for _, e := range t.Edges {
		if e[0] < 0 || e[0] >= n || e[1] < 0 || e[1] >= n {
			return fmt.Errorf("%w: edge %v out of vertex range [0,%d)", ErrInvalidTopologyParameters, e, n)
		}
	}
	for i, f := range t.Faces {
		if len(f) < 3 {
			return fmt.Errorf("%w: face %d has %d vertices", ErrInvalidTopologyParameters, i, len(f))
		}
		for _, idx := range f {
			if idx < 0 || idx >= n {
				return fmt.Errorf("%w: face %d references vertex %d of %d", ErrInvalidTopologyParameters, i, idx, n)
			}
		}
	}
	for i, c := range t.Cells {
		for _, idx := range c {
			if idx < 0 || idx >= n {
				return fmt.Errorf("%w: cell %d references vertex %d of %d", ErrInvalidTopologyParameters, i, idx, n)
			}
		}
	}
	if chi := t.EulerCharacteristic(); chi != 0 {
		return fmt.Errorf("%w: Euler characteristic V-E+F-C = %d, want 0 (V=%d E=%d F=%d C=%d)",
			ErrInvalidTopologyParameters, chi, len(t.Vertices), len(t.Edges), len(t.Faces), len(t.Cells))
	}
	return nil
}

// minPairDistance returns the smallest nonzero distance between any two
// vertices.
func minPairDistance(verts []Vector4) Real {
	min := math.Inf(1)
	for i := 0; i < len(verts); i++ {
		for j := i + 1; j < len(verts); j++ {
			if d := verts[i].Sub(verts[j]).Len(); d > epsDegenerate && d < min {
				min = d
			}
		}
	}
	return min
}

// edgesByMinDistance joins every vertex pair whose distance equals the
// minimum nonzero pairwise distance, within relative tolerance. This is
// the generic edge rule for vertex-transitive regular polytopes: the
// canonical edge length is the shortest distance that occurs at all.
func edgesByMinDistance(verts []Vector4) [][2]int {
	min := minPairDistance(verts)
	limit := min * (1 + epsEdge)
	var edges [][2]int
	for i := 0; i < len(verts); i++ {
		for j := i + 1; j < len(verts); j++ {
			if verts[i].Sub(verts[j]).Len() <= limit {
				edges = append(edges, [2]int{i, j})
			}
		}
	}
	return edges
}
