// Package render draws projected 4D wireframes with ebiten.
package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/lukaszgryglicki/wires4d/internal/wires4d"
)

// palette cycles per shape so a multi-shape scene stays readable.
var palette = []color.RGBA{
	colornames.Deepskyblue,
	colornames.Orange,
	colornames.Mediumspringgreen,
	colornames.Violet,
	colornames.Gold,
	colornames.Tomato,
	colornames.Aquamarine,
	colornames.Hotpink,
}

// ShapeColor returns the palette entry for the i-th scene shape.
func ShapeColor(i int) color.RGBA {
	return palette[i%len(palette)]
}

// DrawWireframe strokes every edge of a projected shape. Edge brightness
// falls off with camera depth so the near side of the wireframe reads in
// front of the far side.
func DrawWireframe(screen *ebiten.Image, verts []wires4d.Vector3, edges [][2]int, cam Camera, base color.RGBA) {
	w := screen.Bounds().Dx()
	h := screen.Bounds().Dy()

	type screenPoint struct {
		x, y  float32
		depth float64
		ok    bool
	}
	pts := make([]screenPoint, len(verts))
	minD, maxD := math.Inf(1), math.Inf(-1)
	for i, v := range verts {
		x, y, d, ok := cam.Project(v, w, h)
		pts[i] = screenPoint{x, y, d, ok}
		if ok {
			minD = math.Min(minD, d)
			maxD = math.Max(maxD, d)
		}
	}
	span := maxD - minD
	if span < 1e-9 {
		span = 1
	}

	for _, e := range edges {
		a, b := pts[e[0]], pts[e[1]]
		if !a.ok || !b.ok {
			continue
		}
		// 1 at the nearest vertex, 0.25 at the farthest.
		t := 1 - 0.75*((a.depth+b.depth)/2-minD)/span
		col := color.RGBA{
			R: uint8(float64(base.R) * t),
			G: uint8(float64(base.G) * t),
			B: uint8(float64(base.B) * t),
			A: 255,
		}
		vector.StrokeLine(screen, a.x, a.y, b.x, b.y, 1, col, true)
	}
}

// DrawVertices marks projected vertices as small filled circles.
func DrawVertices(screen *ebiten.Image, verts []wires4d.Vector3, cam Camera, base color.RGBA) {
	w := screen.Bounds().Dx()
	h := screen.Bounds().Dy()
	for _, v := range verts {
		x, y, _, ok := cam.Project(v, w, h)
		if !ok {
			continue
		}
		vector.DrawFilledCircle(screen, x, y, 2, base, true)
	}
}
