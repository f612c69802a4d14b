package targets

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"exp", "original", "quadratic", "rational", "sine"}, Names())
}

func TestGet(t *testing.T) {
	orig, err := Get("original")
	require.NoError(t, err)
	assert.InDelta(t, 0.2, orig.F(0), 1e-12)
	assert.InDelta(t, 0.2*math.Exp(0.25)-math.Sin(2), orig.F(1), 1e-12)
	assert.Equal(t, -10.0, orig.Lo)
	assert.Equal(t, 10.0, orig.Hi)

	q, err := Get("quadratic")
	require.NoError(t, err)
	assert.Equal(t, 5.0, q.F(2))

	_, err = Get("nonexistent")
	assert.ErrorContains(t, err, "unknown target")
}

func TestTargetsFiniteOnRange(t *testing.T) {
	for _, name := range Names() {
		tgt, err := Get(name)
		require.NoError(t, err)
		for i := 0; i <= 100; i++ {
			x := tgt.Lo + (tgt.Hi-tgt.Lo)*float64(i)/100
			y := tgt.F(x)
			assert.False(t, math.IsNaN(y) || math.IsInf(y, 0), "%s(%g) = %g", name, x, y)
		}
	}
}
