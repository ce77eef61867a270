package wires4d

import (
	"fmt"
	"math"
	"sort"
)

// The prism families extrude a 3D platonic solid along W. Solids live on
// the w=0 hyperplane, centered at the origin, with the canonical edge
// length of their closed-form coordinates recorded for scaling.
type polyhedron struct {
	verts   []Vector4 // w = 0
	edges   [][2]int
	faces   [][]int // outward-wound loops
	edgeLen Real
}

// newPolyhedron derives the edge and face topology from the vertex set
// alone: edges by the minimum-distance rule, faces by support-plane
// detection over vertex triples.
func newPolyhedron(verts []Vector4, edgeLen Real) polyhedron {
	return polyhedron{
		verts:   verts,
		edges:   edgesByMinDistance(verts),
		faces:   convexFaces3(verts),
		edgeLen: edgeLen,
	}
}

// convexFaces3 enumerates the faces of a convex polyhedron centered at the
// origin. Every vertex triple proposes a plane (normal via Cross4 against
// the W axis, i.e. the 3D cross product); a plane is a face plane when all
// vertices lie on its inner side, and the face is every vertex on the
// plane. Different triples of one face propose the same vertex set, so
// faces dedup on their sorted indices.
func convexFaces3(verts []Vector4) [][]int {
	seen := make(map[string]struct{})
	var faces [][]int

	for i := 0; i < len(verts); i++ {
		for j := i + 1; j < len(verts); j++ {
			for k := j + 1; k < len(verts); k++ {
				n := Cross4(verts[j].Sub(verts[i]), verts[k].Sub(verts[i]), Vector4{W: 1})
				if n.Len() < epsDegenerate {
					continue
				}
				n = n.Norm()
				d := n.Dot(verts[i])
				if d < 0 {
					n = n.Mul(-1)
					d = -d
				}
				if d < epsSupport {
					continue // plane through the center
				}
				outside := false
				var face []int
				for vi, v := range verts {
					dot := n.Dot(v)
					if dot > d+epsSupport {
						outside = true
						break
					}
					if dot >= d-epsSupport {
						face = append(face, vi)
					}
				}
				if outside {
					continue
				}
				sort.Ints(face)
				key := fmt.Sprint(face)
				if _, ok := seen[key]; ok {
					continue
				}
				seen[key] = struct{}{}
				faces = append(faces, orderFaceOutward(verts, face))
			}
		}
	}
	return faces
}

func tetrahedron() polyhedron {
	verts := []Vector4{
		{X: 1, Y: 1, Z: 1},
		{X: 1, Y: -1, Z: -1},
		{X: -1, Y: 1, Z: -1},
		{X: -1, Y: -1, Z: 1},
	}
	return newPolyhedron(verts, 2*math.Sqrt2)
}

func hexahedron() polyhedron {
	verts := make([]Vector4, 0, 8)
	for i := 0; i < 8; i++ {
		sign := func(bit uint) Real {
			if i>>bit&1 == 1 {
				return 1
			}
			return -1
		}
		verts = append(verts, Vector4{X: sign(2), Y: sign(1), Z: sign(0)})
	}
	return newPolyhedron(verts, 2)
}

func octahedron() polyhedron {
	verts := []Vector4{
		{X: 1}, {X: -1},
		{Y: 1}, {Y: -1},
		{Z: 1}, {Z: -1},
	}
	return newPolyhedron(verts, math.Sqrt2)
}

func icosahedron() polyhedron {
	phi := (1 + math.Sqrt(5)) / 2
	var verts []Vector4
	for _, s1 := range []Real{1, -1} {
		for _, s2 := range []Real{phi, -phi} {
			verts = append(verts,
				Vector4{Y: s1, Z: s2},
				Vector4{X: s1, Y: s2},
				Vector4{X: s2, Z: s1},
			)
		}
	}
	return newPolyhedron(verts, 2)
}

func dodecahedron() polyhedron {
	phi := (1 + math.Sqrt(5)) / 2
	inv := 1 / phi
	var verts []Vector4
	for i := 0; i < 8; i++ {
		sign := func(bit uint) Real {
			if i>>bit&1 == 1 {
				return 1
			}
			return -1
		}
		verts = append(verts, Vector4{X: sign(2), Y: sign(1), Z: sign(0)})
	}
	for _, s1 := range []Real{inv, -inv} {
		for _, s2 := range []Real{phi, -phi} {
			verts = append(verts,
				Vector4{Y: s1, Z: s2},
				Vector4{X: s1, Y: s2},
				Vector4{X: s2, Z: s1},
			)
		}
	}
	return newPolyhedron(verts, 2*inv)
}
