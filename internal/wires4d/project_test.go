package wires4d

import (
	"errors"
	"math"
	"testing"
)

func TestProjectVertexOrigin(t *testing.T) {
	p, err := ProjectVertex(Vector4{}, 5)
	if err != nil {
		t.Fatalf("projection failed: %v", err)
	}
	if p != (Vector3{}) {
		t.Fatalf("origin must project to origin, got %+v", p)
	}
}

func TestProjectVertexScaling(t *testing.T) {
	// distance 5, w=4: scale = 5/(5-4) = 5.
	p, err := ProjectVertex(Vector4{X: 1, W: 4}, 5)
	if err != nil {
		t.Fatalf("projection failed: %v", err)
	}
	if math.Abs(float64(p.X-5)) > 1e-12 || p.Y != 0 || p.Z != 0 {
		t.Fatalf("scale mismatch: %+v", p)
	}

	// Points behind the hyperplane shrink: w=-5 gives scale 1/2.
	p, err = ProjectVertex(Vector4{X: 2, Y: -4, W: -5}, 5)
	if err != nil {
		t.Fatalf("projection failed: %v", err)
	}
	if math.Abs(float64(p.X-1)) > 1e-12 || math.Abs(float64(p.Y+2)) > 1e-12 {
		t.Fatalf("scale mismatch: %+v", p)
	}
}

func TestProjectVertexSliceIdentity(t *testing.T) {
	// The w=0 slice keeps its XYZ coordinates exactly.
	v := Vector4{X: 0.1, Y: -2.7, Z: 31}
	p, err := ProjectVertex(v, 7)
	if err != nil {
		t.Fatalf("projection failed: %v", err)
	}
	if p.X != v.X || p.Y != v.Y || p.Z != v.Z {
		t.Fatalf("w=0 slice moved: %+v", p)
	}
}

func TestProjectVertexInvalidDistance(t *testing.T) {
	for _, d := range []Real{0, -1, math.NaN(), math.Inf(1)} {
		if _, err := ProjectVertex(Vector4{X: 1}, d); !errors.Is(err, ErrInvalidProjection) {
			t.Fatalf("distance %g: got %v, want ErrInvalidProjection", d, err)
		}
	}
}

func TestProjectVertexSingularity(t *testing.T) {
	if _, err := ProjectVertex(Vector4{W: 5}, 5); !errors.Is(err, ErrProjectionSingularity) {
		t.Fatalf("w at camera: want ErrProjectionSingularity")
	}
	if _, err := ProjectVertex(Vector4{W: 5 - 1e-10}, 5); !errors.Is(err, ErrProjectionSingularity) {
		t.Fatalf("w within epsilon of camera: want ErrProjectionSingularity")
	}
	if _, err := ProjectVertex(Vector4{W: 4.9}, 5); err != nil {
		t.Fatalf("w clearly inside: unexpected error %v", err)
	}
}

func TestProjectTo3DOrder(t *testing.T) {
	verts := []Vector4{{X: 1}, {Y: 2, W: 1}, {Z: 3, W: -1}}
	out, err := ProjectTo3D(verts, 4)
	if err != nil {
		t.Fatalf("batch projection failed: %v", err)
	}
	if len(out) != len(verts) {
		t.Fatalf("length mismatch: %d", len(out))
	}
	// Index order matches input, so edge indices stay valid.
	if out[0].X != 1 {
		t.Fatalf("index 0 moved: %+v", out[0])
	}
	if math.Abs(float64(out[1].Y-8.0/3.0)) > 1e-12 {
		t.Fatalf("index 1 mismatch: %+v", out[1])
	}
}

func TestProjectTo3DFailsOnSingular(t *testing.T) {
	verts := []Vector4{{X: 1}, {W: 3}}
	if _, err := ProjectTo3D(verts, 3); !errors.Is(err, ErrProjectionSingularity) {
		t.Fatalf("want ErrProjectionSingularity, got %v", err)
	}
}
