package wires4d

import "math"

// Unit-radius vertex sets for the two large regular polytopes. The
// 600-cell comes from closed-form coordinates over the golden ratio; the
// 120-cell is built as its dual, one vertex per tetrahedral cell centroid.
// All construction is deterministic: fixed orbit order plus a quantizing
// dedup, so every run yields the identical vertex order and every
// downstream topology is reproducible bit for bit.

// all 12 even permutations of positions (0,1,2,3)
var evenPerms4 = [12][4]int{
	{0, 1, 2, 3}, {0, 2, 3, 1}, {0, 3, 1, 2},
	{1, 0, 3, 2}, {1, 2, 0, 3}, {1, 3, 2, 0},
	{2, 0, 1, 3}, {2, 1, 3, 0}, {2, 3, 0, 1},
	{3, 0, 2, 1}, {3, 1, 0, 2}, {3, 2, 1, 0},
}

// signVariants flips the signs of the nonzero entries of vals in every
// combination.
func signVariants(vals [4]Real) [][4]Real {
	mask := [4]bool{vals[0] != 0, vals[1] != 0, vals[2] != 0, vals[3] != 0}
	out := make([][4]Real, 0, 16)
	for s := 0; s < 16; s++ {
		v := vals
		skip := false
		for i := 0; i < 4; i++ {
			if s>>i&1 == 0 {
				continue
			}
			if !mask[i] {
				// flipping a zero duplicates an earlier variant
				skip = true
				break
			}
			v[i] = -v[i]
		}
		if !skip {
			out = append(out, v)
		}
	}
	return out
}

type vertexSet struct {
	seen map[[4]int64]struct{}
	out  []Vector4
}

func newVertexSet(capHint int) *vertexSet {
	return &vertexSet{seen: make(map[[4]int64]struct{}, capHint)}
}

// push appends v normalized to unit radius, skipping numeric duplicates
// (1e-12 quantization key).
func (s *vertexSet) push(v [4]Real) {
	const q = 1e12
	k := [4]int64{
		int64(math.Round(v[0] * q)),
		int64(math.Round(v[1] * q)),
		int64(math.Round(v[2] * q)),
		int64(math.Round(v[3] * q)),
	}
	if _, ok := s.seen[k]; ok {
		return
	}
	s.seen[k] = struct{}{}
	s.out = append(s.out, Vector4{v[0], v[1], v[2], v[3]}.Norm())
}

func (s *vertexSet) pushAll(vals [][4]Real) {
	for _, v := range vals {
		s.push(v)
	}
}

func (s *vertexSet) pushAxes() {
	for a := 0; a < 4; a++ {
		for _, sign := range []Real{1, -1} {
			var v [4]Real
			v[a] = sign
			s.push(v)
		}
	}
}

func (s *vertexSet) pushHalves() {
	for i := 0; i < 16; i++ {
		var v [4]Real
		for b := 0; b < 4; b++ {
			if i>>b&1 == 1 {
				v[b] = 0.5
			} else {
				v[b] = -0.5
			}
		}
		s.push(v)
	}
}

// cell600UnitVerts returns the 120 unit-radius vertices of the 600-cell:
// 8 axis points, 16 half-points and the 96 even permutations of
// (0, 1/2, φ/2, 1/(2φ)) over all sign combinations.
func cell600UnitVerts() []Vector4 {
	phi := (1 + math.Sqrt(5)) / 2

	s := newVertexSet(128)
	s.pushAxes()
	s.pushHalves()

	base := [4]Real{0, 0.5, phi / 2, 1 / (2 * phi)}
	for _, p := range evenPerms4 {
		s.pushAll(signVariants([4]Real{base[p[0]], base[p[1]], base[p[2]], base[p[3]]}))
	}
	return s.out
}

// cell120UnitVerts returns the 600 unit-radius vertices of the 120-cell in
// the orientation dual to cell600UnitVerts: the normalized centroid of
// every tetrahedral cell of the 600-cell. Building the dual by
// construction keeps the two vertex sets usable as each other's facet
// directions.
func cell120UnitVerts() []Vector4 {
	verts := cell600UnitVerts()
	cells := tetraCells(verts)
	out := make([]Vector4, 0, len(cells))
	for _, c := range cells {
		var ctr Vector4
		for _, i := range c {
			ctr = ctr.Add(verts[i])
		}
		out = append(out, ctr.Norm())
	}
	return out
}

// tetraCells returns the tetrahedral cells of the 600-cell as the
// 4-cliques of its minimum-distance edge graph, each sorted ascending,
// enumerated in lexicographic order.
func tetraCells(verts []Vector4) [][]int {
	n := len(verts)
	adj := make([][]bool, n)
	for i := range adj {
		adj[i] = make([]bool, n)
	}
	for _, e := range edgesByMinDistance(verts) {
		adj[e[0]][e[1]] = true
		adj[e[1]][e[0]] = true
	}

	var cells [][]int
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if !adj[i][j] {
				continue
			}
			for k := j + 1; k < n; k++ {
				if !adj[i][k] || !adj[j][k] {
					continue
				}
				for l := k + 1; l < n; l++ {
					if adj[i][l] && adj[j][l] && adj[k][l] {
						cells = append(cells, []int{i, j, k, l})
					}
				}
			}
		}
	}
	return cells
}
