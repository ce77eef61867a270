package wires4d

import (
	"math"
	"testing"
)

func TestCell8Edges(t *testing.T) {
	topo, err := cell8Topology(1)
	if err != nil {
		t.Fatalf("cell8: %v", err)
	}
	// Tesseract edges connect vertices differing in exactly one coordinate
	// and all have length equal to the size.
	for _, e := range topo.Edges {
		a, b := topo.Vertices[e[0]], topo.Vertices[e[1]]
		diff := 0
		for _, d := range []Real{a.X - b.X, a.Y - b.Y, a.Z - b.Z, a.W - b.W} {
			if d != 0 {
				diff++
			}
		}
		if diff != 1 {
			t.Fatalf("edge %v spans %d coordinates", e, diff)
		}
		if l := a.Sub(b).Len(); math.Abs(float64(l-1)) > 1e-12 {
			t.Fatalf("edge %v has length %.12g, want 1", e, l)
		}
	}
}

func TestCell8Centered(t *testing.T) {
	topo, err := cell8Topology(2)
	if err != nil {
		t.Fatalf("cell8: %v", err)
	}
	var sum Vector4
	for _, v := range topo.Vertices {
		sum = sum.Add(v)
	}
	if sum.Len() > 1e-12 {
		t.Fatalf("tesseract not centered: %+v", sum)
	}
	// Size 2 puts every coordinate at ±1.
	for _, v := range topo.Vertices {
		for _, c := range []Real{v.X, v.Y, v.Z, v.W} {
			if math.Abs(float64(math.Abs(c)-1)) > 1e-12 {
				t.Fatalf("vertex coordinate %g, want ±1", c)
			}
		}
	}
}

func TestCell8CellsAreCubes(t *testing.T) {
	topo, err := cell8Topology(1)
	if err != nil {
		t.Fatalf("cell8: %v", err)
	}
	for i, c := range topo.Cells {
		if len(c) != 8 {
			t.Fatalf("cell %d has %d vertices, want 8", i, len(c))
		}
	}
}
