package render

import (
	"math"

	"github.com/lukaszgryglicki/wires4d/internal/wires4d"
)

// Camera is the 3D orbit camera applied after the 4D projection: yaw
// around the vertical axis, pitch around the horizontal one, then a
// pinhole projection at Dist along the view axis.
type Camera struct {
	Yaw      float64
	Pitch    float64
	Dist     float64
	FocalLen float64
}

// NewCamera returns the default orbit position used by the viewer.
func NewCamera() Camera {
	return Camera{Yaw: 0.6, Pitch: 0.35, Dist: 6, FocalLen: 600}
}

// Orbit adds to the yaw and pitch, clamping pitch short of the poles so
// the view never flips.
func (c *Camera) Orbit(dYaw, dPitch float64) {
	c.Yaw += dYaw
	c.Pitch += dPitch
	const lim = math.Pi/2 - 0.01
	if c.Pitch > lim {
		c.Pitch = lim
	}
	if c.Pitch < -lim {
		c.Pitch = -lim
	}
}

// Zoom scales the orbit distance, keeping it positive.
func (c *Camera) Zoom(factor float64) {
	c.Dist *= factor
	if c.Dist < 0.5 {
		c.Dist = 0.5
	}
	if c.Dist > 100 {
		c.Dist = 100
	}
}

// FitDistance returns an orbit distance that keeps every given point in
// frame: a padded bounding radius about the points' centroid. With no
// points it falls back to the default orbit distance, and it never
// returns less than that default or more than the zoom ceiling.
func FitDistance(groups ...[]wires4d.Vector3) float64 {
	var sum wires4d.Vector3
	n := 0
	for _, pts := range groups {
		for _, p := range pts {
			sum = sum.Add(p)
			n++
		}
	}
	def := NewCamera().Dist
	if n == 0 {
		return def
	}
	centroid := sum.Mul(1 / wires4d.Real(n))
	var radius float64
	for _, pts := range groups {
		for _, p := range pts {
			radius = math.Max(radius, float64(p.Sub(centroid).Len()))
		}
	}
	d := 2.5 * radius
	if d < def {
		d = def
	}
	if d > 100 {
		d = 100
	}
	return d
}

// view rotates a world point into camera space.
func (c Camera) view(p wires4d.Vector3) wires4d.Vector3 {
	sy, cy := math.Sincos(c.Yaw)
	x := cy*float64(p.X) + sy*float64(p.Z)
	z := -sy*float64(p.X) + cy*float64(p.Z)
	sp, cp := math.Sincos(c.Pitch)
	y := cp*float64(p.Y) - sp*z
	z = sp*float64(p.Y) + cp*z
	return wires4d.Vector3{X: wires4d.Real(x), Y: wires4d.Real(y), Z: wires4d.Real(z + c.Dist)}
}

// Project maps a 3D point to screen coordinates. ok is false when the
// point sits behind the camera.
func (c Camera) Project(p wires4d.Vector3, width, height int) (sx, sy float32, depth float64, ok bool) {
	v := c.view(p)
	z := float64(v.Z)
	if z < 1e-6 {
		return 0, 0, 0, false
	}
	sx = float32(float64(v.X)*c.FocalLen/z) + float32(width)/2
	sy = -float32(float64(v.Y)*c.FocalLen/z) + float32(height)/2
	return sx, sy, z, true
}
