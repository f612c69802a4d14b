package chart

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wildfunctions/symbolic_regression/pkg/dataset"
	"github.com/wildfunctions/symbolic_regression/pkg/expr"
)

func requirePNG(t *testing.T, path string) {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Greater(t, len(data), 8)
	assert.Equal(t, "\x89PNG", string(data[:4]))
}

func TestFit_Save(t *testing.T) {
	x := &expr.Ident{Name: "x"}
	samples := []dataset.Sample{
		{Input: []float64{-1}, Output: 1},
		{Input: []float64{0}, Output: 0},
		{Input: []float64{2}, Output: 4},
	}
	path := filepath.Join(t.TempDir(), "fit.png")
	f := Fit{
		Title:      "x*x",
		Samples:    samples,
		Best:       &expr.Mult{Factors: []expr.Expr{x, x}},
		Identifier: "x",
		Truth:      func(v float64) float64 { return v * v },
		Lo:         -2,
		Hi:         2,
	}
	require.NoError(t, f.Save(path))
	requirePNG(t, path)
}

func TestFit_SplitsAtFailures(t *testing.T) {
	f := Fit{Lo: -1, Hi: 1}
	// 1/x is undefined at the midpoint of the grid
	segs := f.sample(func(v float64) (float64, bool) {
		if math.Abs(v) <= 1e-10 {
			return 0, false
		}
		return 1 / v, true
	})
	require.Len(t, segs, 2)
	assert.Len(t, segs[0], curveSteps/2)
	assert.Len(t, segs[1], curveSteps/2)

	path := filepath.Join(t.TempDir(), "recip.png")
	f.Identifier = "x"
	f.Best = &expr.Div{Left: &expr.Const{Val: 1}, Right: &expr.Ident{Name: "x"}}
	require.NoError(t, f.Save(path))
	requirePNG(t, path)
}

func TestFit_InvalidRange(t *testing.T) {
	err := Fit{Lo: 1, Hi: 1}.Save(filepath.Join(t.TempDir(), "bad.png"))
	assert.Error(t, err)
}

func TestHistory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.png")
	history := []float64{math.Inf(-1), -40, -12.5, -12.5, -3}
	require.NoError(t, History(path, "history", history))
	requirePNG(t, path)

	empty := filepath.Join(t.TempDir(), "empty.png")
	require.NoError(t, History(empty, "empty", nil))
	requirePNG(t, empty)
}
