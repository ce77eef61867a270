package wires4d

import "fmt"

// Family enumerates the supported shape families. The set is closed:
// NewTopology dispatches over it exhaustively, so adding a family means
// adding a case there.
type Family int

const (
	Cell5 Family = iota // 5-cell (4-simplex)
	Cell8               // 8-cell (tesseract)
	Cell16              // 16-cell (cross-polytope)
	Cell24
	Cell120
	Cell600
	TetraPrism
	CubePrism
	OctaPrism
	IcosaPrism
	DodecaPrism
	Duoprism
	CliffordTorus
	MobiusStrip
	TorusKnot
	HopfLink
	KleinBottle
)

var familyNames = map[Family]string{
	Cell5:         "cell5",
	Cell8:         "cell8",
	Cell16:        "cell16",
	Cell24:        "cell24",
	Cell120:       "cell120",
	Cell600:       "cell600",
	TetraPrism:    "tetraPrism",
	CubePrism:     "cubePrism",
	OctaPrism:     "octaPrism",
	IcosaPrism:    "icosaPrism",
	DodecaPrism:   "dodecaPrism",
	Duoprism:      "duoprism",
	CliffordTorus: "cliffordTorus",
	MobiusStrip:   "mobiusStrip",
	TorusKnot:     "torusKnot",
	HopfLink:      "hopfLink",
	KleinBottle:   "kleinBottle",
}

func (f Family) String() string {
	if s, ok := familyNames[f]; ok {
		return s
	}
	return fmt.Sprintf("Family(%d)", int(f))
}

// ParseFamily maps a scene-file family name to its Family value.
func ParseFamily(name string) (Family, error) {
	for f, s := range familyNames {
		if s == name {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown family %q", ErrInvalidTopologyParameters, name)
}

// ShapeSpec carries the construction parameters for one topology. Which
// fields a family reads:
//
//	regular polytopes  Size
//	prisms             Size, Height
//	duoprism           M, N, Size
//	cliffordTorus      SegmentsU, SegmentsV, Radius
//	mobiusStrip        SegmentsU, SegmentsV, Radius, Width
//	kleinBottle        SegmentsU, SegmentsV, Radius
//	torusKnot          P, Q, Segments, Radius
//	hopfLink           Segments, Radius
//
// Parameters are fixed for a topology's lifetime; different parameters
// mean a new topology. The same spec always regenerates bit-for-bit
// identical output.
type ShapeSpec struct {
	Family    Family
	Size      Real
	Height    Real
	M, N      int
	P, Q      int
	Segments  int
	SegmentsU int
	SegmentsV int
	Radius    Real
	Width     Real
}

// NewTopology builds the immutable topology for spec. Out-of-range
// parameters fail with ErrInvalidTopologyParameters; nothing is clamped.
func NewTopology(spec ShapeSpec) (*Topology, error) {
	switch spec.Family {
	case Cell5:
		return cell5Topology(spec.Size)
	case Cell8:
		return cell8Topology(spec.Size)
	case Cell16:
		return cell16Topology(spec.Size)
	case Cell24:
		return cell24Topology(spec.Size)
	case Cell120:
		return cell120Topology(spec.Size)
	case Cell600:
		return cell600Topology(spec.Size)
	case TetraPrism:
		return prismTopology(tetrahedron(), spec.Size, spec.Height)
	case CubePrism:
		return prismTopology(hexahedron(), spec.Size, spec.Height)
	case OctaPrism:
		return prismTopology(octahedron(), spec.Size, spec.Height)
	case IcosaPrism:
		return prismTopology(icosahedron(), spec.Size, spec.Height)
	case DodecaPrism:
		return prismTopology(dodecahedron(), spec.Size, spec.Height)
	case Duoprism:
		return duoprismTopology(spec.M, spec.N, spec.Size)
	case CliffordTorus:
		return cliffordTorusTopology(spec.SegmentsU, spec.SegmentsV, spec.Radius)
	case MobiusStrip:
		return mobiusTopology(spec.SegmentsU, spec.SegmentsV, spec.Radius, spec.Width)
	case TorusKnot:
		return torusKnotTopology(spec.P, spec.Q, spec.Segments, spec.Radius)
	case HopfLink:
		return hopfLinkTopology(spec.Segments, spec.Radius)
	case KleinBottle:
		return kleinBottleTopology(spec.SegmentsU, spec.SegmentsV, spec.Radius)
	}
	return nil, fmt.Errorf("%w: unknown family %d", ErrInvalidTopologyParameters, int(spec.Family))
}

func checkSize(size Real) error {
	if !(size > 0) {
		return fmt.Errorf("%w: size must be > 0, got %g", ErrInvalidTopologyParameters, size)
	}
	return nil
}
