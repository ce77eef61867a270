package wires4d

import (
	"math"
	"sort"
)

// Facet extraction for convex vertex-transitive polytopes. The facets
// (cells) of a convex polytope correspond to the vertices of its dual:
// for each dual vertex direction n, the facet is the set of vertices
// maximizing v·n, all of which lie on one support hyperplane.

// supportSet returns the indices of the vertices maximizing v·dir, within
// relative tolerance, sorted ascending.
func supportSet(verts []Vector4, dir Vector4) []int {
	best := math.Inf(-1)
	for _, v := range verts {
		if d := v.Dot(dir); d > best {
			best = d
		}
	}
	limit := best - epsSupport*math.Max(1, math.Abs(best))
	var out []int
	for i, v := range verts {
		if v.Dot(dir) >= limit {
			out = append(out, i)
		}
	}
	return out
}

// cellsFromSupport collects one cell per dual direction.
func cellsFromSupport(verts []Vector4, dirs []Vector4) [][]int {
	cells := make([][]int, 0, len(dirs))
	for _, n := range dirs {
		cells = append(cells, supportSet(verts, n))
	}
	return cells
}

// facesFromCells derives the 2-faces: every 2-face of a convex 4-polytope
// is shared by exactly two cells, so intersecting each cell pair and
// keeping the sets of three or more common vertices enumerates all faces
// exactly once. Faces come back cyclically ordered.
func facesFromCells(verts []Vector4, cells [][]int) [][]int {
	var faces [][]int
	for i := 0; i < len(cells); i++ {
		for j := i + 1; j < len(cells); j++ {
			shared := intersectSorted(cells[i], cells[j])
			if len(shared) >= 3 {
				faces = append(faces, orderFaceLoop(verts, shared))
			}
		}
	}
	return faces
}

// intersectSorted intersects two ascending index slices.
func intersectSorted(a, b []int) []int {
	var out []int
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	return out
}

// orderFaceLoop sorts the vertices of a planar face into a cycle by angle
// around the face centroid, measured in an in-plane orthonormal basis.
// Triangles are cycles under any order and pass through unchanged.
func orderFaceLoop(verts []Vector4, face []int) []int {
	if len(face) <= 3 {
		return face
	}
	var c Vector4
	for _, i := range face {
		c = c.Add(verts[i])
	}
	c = c.Mul(1 / Real(len(face)))

	e1 := verts[face[0]].Sub(c).Norm()
	var e2 Vector4
	for _, i := range face[1:] {
		d := verts[i].Sub(c)
		cand := d.Sub(e1.Mul(d.Dot(e1)))
		if cand.Len() > epsDegenerate {
			e2 = cand.Norm()
			break
		}
	}

	out := append([]int(nil), face...)
	sort.Slice(out, func(a, b int) bool {
		da := verts[out[a]].Sub(c)
		db := verts[out[b]].Sub(c)
		return math.Atan2(da.Dot(e2), da.Dot(e1)) < math.Atan2(db.Dot(e2), db.Dot(e1))
	})
	return out
}

// orderFaceOutward orders a face loop of a 3D solid (vertices on w=0) so
// that it winds counterclockwise seen from outside. The face normal comes
// from Cross4 against the W axis, which reduces to the 3D cross product.
func orderFaceOutward(verts []Vector4, face []int) []int {
	loop := orderFaceLoop(verts, face)
	var c Vector4
	for _, i := range loop {
		c = c.Add(verts[i])
	}
	c = c.Mul(1 / Real(len(loop)))

	a := verts[loop[1]].Sub(verts[loop[0]])
	b := verts[loop[2]].Sub(verts[loop[1]])
	n := Cross4(a, b, Vector4{W: 1})
	// solids are centered at the origin, so the centroid points outward
	if n.Dot(c) < 0 {
		for i, j := 0, len(loop)-1; i < j; i, j = i+1, j-1 {
			loop[i], loop[j] = loop[j], loop[i]
		}
	}
	return loop
}
