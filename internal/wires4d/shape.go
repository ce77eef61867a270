package wires4d

import "math"

// Shape pairs one immutable Topology with a mutable placement. Several
// shapes may share a single topology; each carries its own transform.
type Shape struct {
	topo *Topology
	Transform
}

// NewShape generates the topology for spec and wraps it with an identity
// transform.
func NewShape(spec ShapeSpec) (*Shape, error) {
	topo, err := NewTopology(spec)
	if err != nil {
		return nil, err
	}
	return NewShapeFromTopology(topo), nil
}

// NewShapeFromTopology wraps an existing topology, sharing it rather than
// copying. Useful for scenes that place the same polytope several times.
func NewShapeFromTopology(topo *Topology) *Shape {
	return &Shape{topo: topo, Transform: newTransform()}
}

func (s *Shape) Topology() *Topology { return s.topo }

func (s *Shape) VertexCount() int { return s.topo.VertexCount() }
func (s *Shape) EdgeCount() int   { return s.topo.EdgeCount() }
func (s *Shape) FaceCount() int   { return s.topo.FaceCount() }
func (s *Shape) CellCount() int   { return s.topo.CellCount() }

// TransformedVertices applies the shape's current transform to every local
// vertex. The result is a fresh slice on every call; the topology's own
// vertices are never touched.
func (s *Shape) TransformedVertices() []Vector4 {
	out := make([]Vector4, len(s.topo.Vertices))
	for i, v := range s.topo.Vertices {
		out[i] = s.Apply(v)
	}
	return out
}

// BoundingBox returns the per-axis minima and maxima of the transformed
// vertices. A shape with no vertices has no box.
func (s *Shape) BoundingBox() (Vector4, Vector4, error) {
	if len(s.topo.Vertices) == 0 {
		return Vector4{}, Vector4{}, ErrEmptyShape
	}
	lo := Vector4{math.Inf(1), math.Inf(1), math.Inf(1), math.Inf(1)}
	hi := Vector4{math.Inf(-1), math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	for _, v := range s.topo.Vertices {
		p := s.Apply(v)
		lo.X = math.Min(lo.X, p.X)
		lo.Y = math.Min(lo.Y, p.Y)
		lo.Z = math.Min(lo.Z, p.Z)
		lo.W = math.Min(lo.W, p.W)
		hi.X = math.Max(hi.X, p.X)
		hi.Y = math.Max(hi.Y, p.Y)
		hi.Z = math.Max(hi.Z, p.Z)
		hi.W = math.Max(hi.W, p.W)
	}
	return lo, hi, nil
}
