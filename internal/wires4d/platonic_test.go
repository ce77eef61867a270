package wires4d

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPlatonicSolids(t *testing.T) {
	cases := map[string]struct {
		poly    polyhedron
		v, e, f int
		faceLen int
	}{
		"tetrahedron":  {tetrahedron(), 4, 6, 4, 3},
		"hexahedron":   {hexahedron(), 8, 12, 6, 4},
		"octahedron":   {octahedron(), 6, 12, 8, 3},
		"icosahedron":  {icosahedron(), 12, 30, 20, 3},
		"dodecahedron": {dodecahedron(), 20, 30, 12, 5},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			p := tc.poly
			require.Len(t, p.verts, tc.v)
			require.Len(t, p.edges, tc.e)
			require.Len(t, p.faces, tc.f)
			// 3D Euler formula.
			require.Equal(t, 2, tc.v-tc.e+tc.f)

			for _, f := range p.faces {
				require.Len(t, f, tc.faceLen)
			}
			for _, v := range p.verts {
				require.Zero(t, v.W, "platonic bases live on w=0")
			}
			// Every edge has the canonical length.
			for _, e := range p.edges {
				d := p.verts[e[0]].Sub(p.verts[e[1]]).Len()
				require.InDelta(t, float64(p.edgeLen), float64(d), 1e-9)
			}
		})
	}
}

func TestPlatonicFacesWindOutward(t *testing.T) {
	for name, p := range map[string]polyhedron{
		"hexahedron":   hexahedron(),
		"icosahedron":  icosahedron(),
		"dodecahedron": dodecahedron(),
	} {
		t.Run(name, func(t *testing.T) {
			for fi, f := range p.faces {
				var centroid Vector4
				for _, idx := range f {
					centroid = centroid.Add(p.verts[idx])
				}
				centroid = centroid.Mul(1 / Real(len(f)))
				a := p.verts[f[1]].Sub(p.verts[f[0]])
				b := p.verts[f[2]].Sub(p.verts[f[1]])
				n := Cross4(a, b, Vector4{W: 1})
				require.Greater(t, float64(n.Dot(centroid)), 0.0,
					"face %d of %s winds inward", fi, name)
			}
		})
	}
}

func TestPrismFVectorsMatchBase(t *testing.T) {
	// Prism counts follow from the base solid's (V3, E3, F3) alone:
	// (2V3, 2E3+V3, 2F3+E3, F3+2). Deriving the expectation from the
	// base keeps the two from drifting apart.
	bases := map[Family]polyhedron{
		TetraPrism:  tetrahedron(),
		CubePrism:   hexahedron(),
		OctaPrism:   octahedron(),
		IcosaPrism:  icosahedron(),
		DodecaPrism: dodecahedron(),
	}
	for fam, base := range bases {
		t.Run(fam.String(), func(t *testing.T) {
			topo, err := NewTopology(ShapeSpec{Family: fam, Size: 1, Height: 1})
			require.NoError(t, err)
			v3, e3, f3 := len(base.verts), len(base.edges), len(base.faces)
			require.Equal(t, 2*v3, topo.VertexCount())
			require.Equal(t, 2*e3+v3, topo.EdgeCount())
			require.Equal(t, 2*f3+e3, topo.FaceCount())
			require.Equal(t, f3+2, topo.CellCount())
		})
	}
}

func TestPrismEdgeLengths(t *testing.T) {
	// A unit-size, unit-height cube prism is the unit tesseract: every
	// edge has length 1.
	topo, err := NewTopology(ShapeSpec{Family: CubePrism, Size: 1, Height: 1})
	require.NoError(t, err)
	for _, e := range topo.Edges {
		d := topo.Vertices[e[0]].Sub(topo.Vertices[e[1]]).Len()
		require.InDelta(t, 1, float64(d), 1e-9)
	}
	// The base edges of every prism are rescaled to the requested size.
	topo, err = NewTopology(ShapeSpec{Family: DodecaPrism, Size: 0.5, Height: 2})
	require.NoError(t, err)
	min := minPairDistance(topo.Vertices)
	require.InDelta(t, 0.5, float64(min), 1e-9)
}
