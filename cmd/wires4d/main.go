package main

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/lukaszgryglicki/wires4d/internal/render"
	"github.com/lukaszgryglicki/wires4d/internal/wires4d"
)

const (
	screenWidth  = 1280
	screenHeight = 720

	// Per-frame manual rotation step in degrees at 60 TPS.
	rotStepDeg = 1.2
	// 4D camera distance step for +/-.
	distStep = 0.1
	minDist  = 0.5
	maxDist  = 50
)

// defaultScene is used when no scene file is given on the command line.
const defaultScene = `{
	"distance": 5,
	"shapes": [
		{"family": "cell8", "spinDeg": {"xw": 0.7, "yz": 0.4}},
		{"family": "cell24", "center": {"x": 2.5}, "spinDeg": {"xy": 0.5, "zw": 0.6}},
		{"family": "cell600", "center": {"x": -2.5}, "spinDeg": {"xz": 0.3, "yw": 0.5}}
	]
}`

type Game struct {
	shapes   []*wires4d.SceneShape
	distance wires4d.Real
	cam      render.Camera

	active   int  // shape receiving manual rotation
	spinning bool // auto-spin toggle
	showHUD  bool
}

// planeKeys maps key pairs to rotation planes: each pair is
// (negative key, positive key).
var planeKeys = []struct {
	neg, pos ebiten.Key
	plane    wires4d.Plane
}{
	{ebiten.KeyArrowLeft, ebiten.KeyArrowRight, wires4d.PlaneXY},
	{ebiten.KeyArrowDown, ebiten.KeyArrowUp, wires4d.PlaneXZ},
	{ebiten.KeyQ, ebiten.KeyE, wires4d.PlaneXW},
	{ebiten.KeyA, ebiten.KeyD, wires4d.PlaneYZ},
	{ebiten.KeyW, ebiten.KeyS, wires4d.PlaneYW},
	{ebiten.KeyZ, ebiten.KeyC, wires4d.PlaneZW},
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.active = (g.active + 1) % len(g.shapes)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.spinning = !g.spinning
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.shapes[g.active].SetRotation(wires4d.Rot4{})
	}

	// Manual rotation of the active shape, one key pair per plane.
	const rotStep = rotStepDeg * math.Pi / 180
	var step wires4d.Rot4
	for _, pk := range planeKeys {
		var a wires4d.Real
		if ebiten.IsKeyPressed(pk.pos) {
			a += rotStep
		}
		if ebiten.IsKeyPressed(pk.neg) {
			a -= rotStep
		}
		if a != 0 {
			step = step.WithPlane(pk.plane, a)
		}
	}
	if step != (wires4d.Rot4{}) {
		g.shapes[g.active].Rotate(step)
	}

	if g.spinning {
		for _, s := range g.shapes {
			s.Rotate(s.Spin)
		}
	}

	// 4D camera distance.
	if ebiten.IsKeyPressed(ebiten.KeyEqual) || ebiten.IsKeyPressed(ebiten.KeyKPAdd) {
		g.distance += distStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyMinus) || ebiten.IsKeyPressed(ebiten.KeyKPSubtract) {
		g.distance -= distStep
	}
	if g.distance < minDist {
		g.distance = minDist
	}
	if g.distance > maxDist {
		g.distance = maxDist
	}

	// 3D orbit camera.
	if ebiten.IsKeyPressed(ebiten.KeyJ) {
		g.cam.Orbit(-0.03, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyL) {
		g.cam.Orbit(0.03, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyI) {
		g.cam.Orbit(0, 0.03)
	}
	if ebiten.IsKeyPressed(ebiten.KeyK) {
		g.cam.Orbit(0, -0.03)
	}
	if _, wy := ebiten.Wheel(); wy != 0 {
		g.cam.Zoom(1 - 0.1*wy)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	for i, s := range g.shapes {
		pts := g.projectShape(s)
		if pts == nil {
			continue
		}
		render.DrawWireframe(screen, pts, s.Topology().Edges, g.cam, render.ShapeColor(i))
		render.DrawVertices(screen, pts, g.cam, render.ShapeColor(i))
	}
	if g.showHUD {
		ebitenutil.DebugPrint(screen, g.hud())
	}
}

// projectShape projects one shape's transformed vertices, skipping the
// whole shape for this frame when any vertex crosses the camera
// hyperplane. Per-shape skipping keeps the rest of the scene live.
func (g *Game) projectShape(s *wires4d.SceneShape) []wires4d.Vector3 {
	pts, err := wires4d.ProjectTo3D(s.TransformedVertices(), g.distance)
	if err != nil {
		if errors.Is(err, wires4d.ErrProjectionSingularity) {
			// Once, not per frame, or a shape parked on the camera
			// hyperplane floods the log at 60 TPS.
			wires4d.DebugLogOnce("shape skipped, vertex on the camera hyperplane: %v", err)
			return nil
		}
		wires4d.DebugLog("projection: %v", err)
		return nil
	}
	return pts
}

func (g *Game) hud() string {
	var b strings.Builder
	act := g.shapes[g.active]
	fmt.Fprintf(&b, "shape %d/%d: %s (V=%d E=%d F=%d C=%d)\n",
		g.active+1, len(g.shapes), act.Family,
		act.VertexCount(), act.EdgeCount(), act.FaceCount(), act.CellCount())
	fmt.Fprintf(&b, "4D distance: %.1f   spin: %v   fps: %.0f\n", g.distance, g.spinning, ebiten.ActualFPS())
	b.WriteString("tab: next shape  space: spin  r: reset\n")
	b.WriteString("arrows: xy/xz  q/e: xw  a/d: yz  w/s: yw  z/c: zw\n")
	b.WriteString("i/j/k/l: orbit  wheel: zoom  +/-: 4d distance  h: hud  esc: quit")
	return b.String()
}

func (g *Game) Layout(int, int) (int, int) {
	return screenWidth, screenHeight
}

func run() error {
	wires4d.Debug = os.Getenv("DEBUG") != ""

	var cfg *wires4d.SceneConfig
	var err error
	if len(os.Args) > 1 {
		cfg, err = wires4d.LoadSceneConfig(os.Args[1])
	} else {
		cfg, err = wires4d.ParseSceneConfig([]byte(defaultScene))
	}
	if err != nil {
		return err
	}
	shapes, err := cfg.BuildShapes()
	if err != nil {
		return err
	}

	g := &Game{
		shapes:   shapes,
		distance: cfg.Distance,
		cam:      render.NewCamera(),
		spinning: true,
		showHUD:  true,
	}

	// Start the orbit camera far enough back to frame the whole scene.
	var projected [][]wires4d.Vector3
	for _, s := range shapes {
		if pts, err := wires4d.ProjectTo3D(s.TransformedVertices(), g.distance); err == nil {
			projected = append(projected, pts)
		}
	}
	g.cam.Dist = render.FitDistance(projected...)

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("wires4d")
	return ebiten.RunGame(g)
}

func main() {
	if err := run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
