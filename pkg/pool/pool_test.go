package pool

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wildfunctions/symbolic_regression/pkg/expr"
)

var identifiers = []string{"x", "y"}

func TestRandomExpr_Depth(t *testing.T) {
	p := Default()
	rng := rand.New(rand.NewSource(42))

	for depth := 0; depth <= 4; depth++ {
		for i := 0; i < 200; i++ {
			e := p.RandomExpr(rng, depth, identifiers)
			require.Equal(t, depth, e.Depth(), "tree %s", e)
			if depth == 0 {
				assert.True(t, e.IsLeaf())
			} else {
				assert.False(t, e.IsLeaf())
			}
		}
	}
}

func TestRandomExpr_ArityFromCardinalities(t *testing.T) {
	p := Default()
	p.Cardinalities = []int{4}
	rng := rand.New(rand.NewSource(42))

	seen := 0
	for i := 0; i < 500; i++ {
		switch n := p.RandomExpr(rng, 1, identifiers).(type) {
		case *expr.Plus:
			assert.Len(t, n.Terms, 4)
			seen++
		case *expr.Mult:
			assert.Len(t, n.Factors, 4)
			seen++
		case *expr.Minus, *expr.Div:
			assert.Equal(t, 2, n.NumChildren())
		case *expr.UnaryFn:
			assert.Equal(t, 1, n.NumChildren())
		}
	}
	assert.Greater(t, seen, 0)
}

func TestRandomExpr_AllKindsAppear(t *testing.T) {
	p := Default()
	rng := rand.New(rand.NewSource(7))

	kinds := map[string]int{}
	for i := 0; i < 1000; i++ {
		switch p.RandomExpr(rng, 1, identifiers).(type) {
		case *expr.Plus:
			kinds["plus"]++
		case *expr.Mult:
			kinds["mult"]++
		case *expr.Minus:
			kinds["minus"]++
		case *expr.Div:
			kinds["div"]++
		case *expr.UnaryFn:
			kinds["unary"]++
		}
	}
	require.Len(t, kinds, 5)
	for kind, n := range kinds {
		// uniform over five kinds: expect ~200 each
		assert.InDelta(t, 200, n, 80, "kind %s", kind)
	}
}

func TestRandomLeaf_ConstantProbability(t *testing.T) {
	p := Default()
	rng := rand.New(rand.NewSource(42))

	p.ProbLeafConstant = 1
	for i := 0; i < 100; i++ {
		assert.IsType(t, &expr.Const{}, p.RandomLeaf(rng, identifiers))
	}

	p.ProbLeafConstant = 0
	for i := 0; i < 100; i++ {
		id, ok := p.RandomLeaf(rng, identifiers).(*expr.Ident)
		require.True(t, ok)
		assert.Contains(t, identifiers, id.Name)
	}
}

func TestRandomConstant_Sentinel(t *testing.T) {
	p := Default()
	p.Constants = []float64{RandomConstant}
	rng := rand.New(rand.NewSource(42))

	distinct := map[float64]bool{}
	for i := 0; i < 1000; i++ {
		c := p.RandomConstant(rng)
		assert.False(t, IsRandomConstant(c.Val))
		assert.GreaterOrEqual(t, c.Val, -10.0)
		assert.Less(t, c.Val, 10.0)
		distinct[c.Val] = true
	}
	assert.Greater(t, len(distinct), 900)

	p.Constants = []float64{0.5}
	assert.Equal(t, 0.5, p.RandomConstant(rng).Val)
}

func TestRandomFunc_RepeatsBias(t *testing.T) {
	p := Default()
	p.UnaryFuns = []expr.Func{expr.FnSin, expr.FnSin, expr.FnSin, expr.FnCos}
	rng := rand.New(rand.NewSource(42))

	sin := 0
	for i := 0; i < 4000; i++ {
		if p.RandomFunc(rng) == expr.FnSin {
			sin++
		}
	}
	assert.InDelta(t, 3000, sin, 150)
}

func TestPoolsEvaluateMostly(t *testing.T) {
	for _, name := range Names() {
		p, err := Get(name)
		require.NoError(t, err)
		rng := rand.New(rand.NewSource(42))

		successes := 0
		total := 1000
		for i := 0; i < total; i++ {
			tree := p.RandomExpr(rng, 2, identifiers)
			env := expr.Env{"x": rng.Float64()*4 - 2, "y": rng.Float64()*4 - 2}
			if _, err := tree.Eval(env); err == nil {
				successes++
			}
		}
		assert.Greater(t, float64(successes)/float64(total), 0.3, "pool %s", name)
		t.Logf("%s pool: %d/%d trees evaluated cleanly", name, successes, total)
	}
}

func TestPoolRegistry(t *testing.T) {
	names := Names()
	assert.Equal(t, []string{"default", "kitchensink", "trig"}, names)

	for _, name := range names {
		p, err := Get(name)
		require.NoError(t, err)
		assert.Equal(t, name, p.Name)
		assert.NoError(t, p.Validate())
	}

	a, _ := Get("default")
	b, _ := Get("default")
	a.UnaryFuns[0] = expr.FnSqrt
	assert.Equal(t, expr.FnSin, b.UnaryFuns[0])
}

func TestUnknownPool(t *testing.T) {
	_, err := Get("nonexistent")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	p := Default()
	p.UnaryFuns = nil
	assert.Error(t, p.Validate())

	p = Default()
	p.Cardinalities = []int{2, 0}
	assert.Error(t, p.Validate())

	p = Default()
	p.Constants = nil
	assert.Error(t, p.Validate())

	p = Default()
	p.ProbLeafConstant = 1.5
	assert.Error(t, p.Validate())
}
