package wires4d

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseSceneConfig(t *testing.T) {
	data := []byte(`{
		"distance": 4,
		"shapes": [
			{"family": "cell8", "size": 2, "center": {"w": 0.5}, "rotDeg": {"xy": 45}},
			{"family": "duoprism", "m": 6, "n": 6},
			{"family": "torusKnot"}
		]
	}`)
	cfg, err := ParseSceneConfig(data)
	require.NoError(t, err)
	require.Equal(t, Real(4), cfg.Distance)
	require.Len(t, cfg.Shapes, 3)

	shapes, err := cfg.BuildShapes()
	require.NoError(t, err)
	require.Equal(t, Cell8, shapes[0].Family)
	require.Equal(t, Vector4{W: 0.5}, shapes[0].Position())
	require.Equal(t, 36, shapes[1].VertexCount())
	// Knot defaults: (3,5) with 240 segments.
	require.Equal(t, 240, shapes[2].VertexCount())
}

func TestSceneConfigDefaults(t *testing.T) {
	cfg, err := ParseSceneConfig([]byte(`{"shapes": [{"family": "cell5"}]}`))
	require.NoError(t, err)
	require.Equal(t, DefaultDistance, cfg.Distance)

	shapes, err := cfg.BuildShapes()
	require.NoError(t, err)
	require.Equal(t, Real(1), shapes[0].Scale())
	require.Equal(t, 5, shapes[0].VertexCount())
}

func TestSceneConfigRejectsUnknownKeys(t *testing.T) {
	_, err := ParseSceneConfig([]byte(`{"shapes": [{"family": "cell8", "sixe": 2}]}`))
	require.Error(t, err, "typoed keys must fail, not default silently")

	_, err = ParseSceneConfig([]byte(`{"distanse": 4, "shapes": [{"family": "cell8"}]}`))
	require.Error(t, err)
}

func TestSceneConfigInvalid(t *testing.T) {
	_, err := ParseSceneConfig([]byte(`{"shapes": []}`))
	require.Error(t, err, "empty scene")

	_, err = ParseSceneConfig([]byte(`{"distance": -2, "shapes": [{"family": "cell8"}]}`))
	require.ErrorIs(t, err, ErrInvalidProjection)

	cfg, err := ParseSceneConfig([]byte(`{"shapes": [{"family": "pentachoron"}]}`))
	require.NoError(t, err)
	_, err = cfg.BuildShapes()
	require.ErrorIs(t, err, ErrInvalidTopologyParameters)

	cfg, err = ParseSceneConfig([]byte(`{"shapes": [{"family": "cell8", "size": -1}]}`))
	require.NoError(t, err)
	_, err = cfg.BuildShapes()
	require.ErrorIs(t, err, ErrInvalidTopologyParameters)
}

func TestLoadSceneConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"distance": 6,
		"shapes": [{"family": "cliffordTorus", "segmentsU": 8, "segmentsV": 6, "spinDeg": {"xw": 1, "yz": 0.5}}]
	}`), 0o644))

	cfg, err := LoadSceneConfig(path)
	require.NoError(t, err)
	shapes, err := cfg.BuildShapes()
	require.NoError(t, err)
	require.Equal(t, 48, shapes[0].VertexCount())
	require.NotZero(t, shapes[0].Spin.XW)

	_, err = LoadSceneConfig(filepath.Join(dir, "missing.json"))
	require.Error(t, err)
}
