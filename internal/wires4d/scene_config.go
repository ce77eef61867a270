package wires4d

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"os"
)

// Rotation in degrees for JSON (friendlier than radians).
type Rot4Deg struct {
	XY Real `json:"xy"`
	XZ Real `json:"xz"`
	XW Real `json:"xw"`
	YZ Real `json:"yz"`
	YW Real `json:"yw"`
	ZW Real `json:"zw"`
}

func (r Rot4Deg) Radians() Rot4 {
	const k = math.Pi / 180
	return Rot4{
		XY: r.XY * k, XZ: r.XZ * k, XW: r.XW * k,
		YZ: r.YZ * k, YW: r.YW * k, ZW: r.ZW * k,
	}
}

// ShapeCfg describes one scene shape. Family selects the generator;
// the construction parameters it does not read are ignored after the
// defaulting pass. Zero-valued parameters take per-family defaults, so a
// bare {"family": "cell120"} is a valid entry.
type ShapeCfg struct {
	Family    string  `json:"family"`
	Size      Real    `json:"size,omitempty"`
	Height    Real    `json:"height,omitempty"`
	M         int     `json:"m,omitempty"`
	N         int     `json:"n,omitempty"`
	P         int     `json:"p,omitempty"`
	Q         int     `json:"q,omitempty"`
	Segments  int     `json:"segments,omitempty"`
	SegmentsU int     `json:"segmentsU,omitempty"`
	SegmentsV int     `json:"segmentsV,omitempty"`
	Radius    Real    `json:"radius,omitempty"`
	Width     Real    `json:"width,omitempty"`
	Center    Vector4 `json:"center,omitempty"`
	RotDeg    Rot4Deg `json:"rotDeg,omitempty"`
	SpinDeg   Rot4Deg `json:"spinDeg,omitempty"`
	Scale     Real    `json:"scale,omitempty"`
}

// SceneShape is a placed shape plus its per-frame spin increment.
type SceneShape struct {
	*Shape
	Family Family
	Spin   Rot4
}

// Build validates, fills family defaults and constructs the runtime shape.
func (c ShapeCfg) Build() (*SceneShape, error) {
	family, err := ParseFamily(c.Family)
	if err != nil {
		return nil, err
	}
	spec := ShapeSpec{
		Family:    family,
		Size:      c.Size,
		Height:    c.Height,
		M:         c.M,
		N:         c.N,
		P:         c.P,
		Q:         c.Q,
		Segments:  c.Segments,
		SegmentsU: c.SegmentsU,
		SegmentsV: c.SegmentsV,
		Radius:    c.Radius,
		Width:     c.Width,
	}
	applySpecDefaults(&spec)

	shape, err := NewShape(spec)
	if err != nil {
		return nil, err
	}
	shape.SetPosition(c.Center)
	shape.Rotate(c.RotDeg.Radians())
	scale := c.Scale
	if scale == 0 {
		scale = 1
	}
	if err := shape.SetScale(scale); err != nil {
		return nil, err
	}
	return &SceneShape{Shape: shape, Family: family, Spin: c.SpinDeg.Radians()}, nil
}

// applySpecDefaults replaces zero-valued parameters with the family
// defaults. Explicit invalid values (negative size, degree 2 rings) pass
// through so the generator can reject them.
func applySpecDefaults(spec *ShapeSpec) {
	if spec.Size == 0 {
		spec.Size = 1
	}
	if spec.Height == 0 {
		spec.Height = 1
	}
	if spec.Radius == 0 {
		spec.Radius = 1
	}
	switch spec.Family {
	case Duoprism:
		if spec.M == 0 {
			spec.M = 3
		}
		if spec.N == 0 {
			spec.N = 4
		}
	case CliffordTorus:
		if spec.SegmentsU == 0 {
			spec.SegmentsU = 32
		}
		if spec.SegmentsV == 0 {
			spec.SegmentsV = 16
		}
	case MobiusStrip:
		if spec.SegmentsU == 0 {
			spec.SegmentsU = 64
		}
		if spec.SegmentsV == 0 {
			spec.SegmentsV = 12
		}
		if spec.Width == 0 {
			spec.Width = 0.4
		}
	case KleinBottle:
		if spec.SegmentsU == 0 {
			spec.SegmentsU = 40
		}
		if spec.SegmentsV == 0 {
			spec.SegmentsV = 20
		}
	case TorusKnot:
		if spec.P == 0 {
			spec.P = 3
		}
		if spec.Q == 0 {
			spec.Q = 5
		}
		if spec.Segments == 0 {
			spec.Segments = 240
		}
	case HopfLink:
		if spec.Segments == 0 {
			spec.Segments = 160
		}
	}
}

// SceneConfig is the top-level scene file: the 4D camera distance and the
// shape list.
type SceneConfig struct {
	Distance Real       `json:"distance,omitempty"`
	Shapes   []ShapeCfg `json:"shapes"`
}

// ParseSceneConfig decodes a scene from JSON bytes. Unknown keys are
// rejected so a typoed parameter fails loudly instead of silently taking
// its default.
func ParseSceneConfig(data []byte) (*SceneConfig, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	var cfg SceneConfig
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("scene config: %w", err)
	}
	// Defaults / validation
	if cfg.Distance == 0 {
		cfg.Distance = DefaultDistance
	}
	if !(cfg.Distance > 0) {
		return nil, fmt.Errorf("%w: distance must be > 0, got %g", ErrInvalidProjection, cfg.Distance)
	}
	if len(cfg.Shapes) == 0 {
		return nil, fmt.Errorf("scene config has no shapes")
	}
	return &cfg, nil
}

// LoadSceneConfig reads and decodes a scene file.
func LoadSceneConfig(path string) (*SceneConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg, err := ParseSceneConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	DebugLog("Loaded scene %s: distance=%g, %d shape(s)", path, cfg.Distance, len(cfg.Shapes))
	return cfg, nil
}

// BuildShapes constructs every configured shape in file order.
func (cfg *SceneConfig) BuildShapes() ([]*SceneShape, error) {
	shapes := make([]*SceneShape, 0, len(cfg.Shapes))
	for i, sc := range cfg.Shapes {
		s, err := sc.Build()
		if err != nil {
			return nil, fmt.Errorf("shape %d: %w", i, err)
		}
		shapes = append(shapes, s)
	}
	return shapes, nil
}
