package fitness

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wildfunctions/symbolic_regression/pkg/dataset"
	"github.com/wildfunctions/symbolic_regression/pkg/expr"
)

var ids = []string{"x"}

func xx() expr.Expr {
	return &expr.Mult{Factors: []expr.Expr{&expr.Ident{Name: "x"}, &expr.Ident{Name: "x"}}}
}

func TestCompute_PerfectFit(t *testing.T) {
	training := []dataset.Sample{{Input: []float64{2.0}, Output: 4.0}}
	assert.Equal(t, 0.0, Compute(xx(), ids, training))
}

func TestCompute_SumOfSquaredResiduals(t *testing.T) {
	training := []dataset.Sample{
		{Input: []float64{1}, Output: 2},  // residual -1
		{Input: []float64{3}, Output: 6},  // residual 3
		{Input: []float64{-2}, Output: 4}, // residual 0
	}
	got := Compute(xx(), ids, training)
	assert.Equal(t, -10.0, got)
	assert.LessOrEqual(t, got, 0.0)
}

func TestCompute_FailureIsWorst(t *testing.T) {
	// 1/x fails only at x = 0, in the middle of the data
	inv := &expr.Div{Left: &expr.Const{Val: 1}, Right: &expr.Ident{Name: "x"}}
	training := []dataset.Sample{
		{Input: []float64{1}, Output: 1},
		{Input: []float64{0}, Output: 0},
		{Input: []float64{2}, Output: 0.5},
	}
	got := Compute(inv, ids, training)
	assert.True(t, math.IsInf(got, -1))
	assert.Equal(t, Worst(), got)

	// unbound identifier
	assert.Equal(t, Worst(), Compute(&expr.Ident{Name: "y"}, ids, training))
}

func TestCompute_NaNIsWorst(t *testing.T) {
	// exp(x) overflows cleanly to an error; a Plus of +Inf and -Inf gives NaN
	inf := &expr.Mult{Factors: []expr.Expr{&expr.Const{Val: 1e300}, &expr.Const{Val: 1e300}}}
	e := &expr.Plus{Terms: []expr.Expr{inf, &expr.Mult{Factors: []expr.Expr{inf, &expr.Const{Val: -1}}}}}
	training := []dataset.Sample{{Input: []float64{0}, Output: 0}}
	assert.Equal(t, Worst(), Compute(e, ids, training))
}

func TestIsViable(t *testing.T) {
	bad := &expr.Div{Left: &expr.Const{Val: 1}, Right: &expr.Const{Val: 0}}
	points := dataset.Grid(-1, 1, 10)

	assert.False(t, IsViable(bad, ids, points))
	assert.False(t, IsViable(bad, ids, [][]float64{{5}}))
	assert.True(t, IsViable(xx(), ids, points))

	sqrt := &expr.UnaryFn{Fn: expr.FnSqrt, Arg: &expr.Ident{Name: "x"}}
	assert.False(t, IsViable(sqrt, ids, points))
	assert.True(t, IsViable(sqrt, ids, dataset.Grid(0, 1, 10)))

	err := CheckValidity(sqrt, ids, points)
	require.Error(t, err)
	var evalErr *expr.EvalError
	require.ErrorAs(t, err, &evalErr)
	assert.Equal(t, expr.Domain, evalErr.Kind)
	assert.Contains(t, err.Error(), "validity point 0")

	// no points: vacuously viable
	assert.True(t, IsViable(bad, ids, nil))
}

func TestEvaluator_Score(t *testing.T) {
	ev := &Evaluator{
		Identifiers: ids,
		Training:    []dataset.Sample{{Input: []float64{3}, Output: 9}},
		TestPoints:  dataset.Grid(-1, 1, 4),
	}
	ind, ok := ev.Score(xx())
	require.True(t, ok)
	assert.Equal(t, 0.0, ind.Fitness)

	_, ok = ev.Score(&expr.UnaryFn{Fn: expr.FnLog, Arg: &expr.Ident{Name: "x"}})
	assert.False(t, ok)
}

func TestRMSE(t *testing.T) {
	assert.Equal(t, 2.0, RMSE(-16, 4))
	assert.True(t, math.IsInf(RMSE(Worst(), 4), 1))
	assert.Equal(t, 0.0, RMSE(0, 0))
}

func TestSortDescending(t *testing.T) {
	c := func(v float64) expr.Expr { return &expr.Const{Val: v} }
	pop := []Individual{
		{Expr: c(1), Fitness: -3},
		{Expr: c(2), Fitness: Worst()},
		{Expr: c(3), Fitness: math.NaN()},
		{Expr: c(4), Fitness: 0},
		{Expr: c(5), Fitness: -3},
	}
	SortDescending(pop)
	assert.Equal(t, 0.0, pop[0].Fitness)
	assert.Equal(t, "1", pop[1].Expr.String())
	assert.Equal(t, "5", pop[2].Expr.String())
	assert.True(t, math.IsInf(pop[3].Fitness, -1))
	assert.True(t, math.IsNaN(pop[4].Fitness))
}

func TestIndividualClone(t *testing.T) {
	ind := Individual{Expr: xx(), Fitness: -1}
	cp := ind.Clone()
	cp.Expr.SetChild(0, &expr.Const{Val: 2})
	assert.Equal(t, "(x * x)", ind.Expr.String())
	assert.Equal(t, -1.0, cp.Fitness)
}
