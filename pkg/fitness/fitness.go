package fitness

import (
	"fmt"
	"math"

	"github.com/wildfunctions/symbolic_regression/pkg/dataset"
	"github.com/wildfunctions/symbolic_regression/pkg/expr"
)

// Worst is the fitness of an expression that failed to evaluate.
func Worst() float64 {
	return math.Inf(-1)
}

// CheckValidity evaluates e at every point and returns the first failure,
// annotated with the index of the offending point.
func CheckValidity(e expr.Expr, identifiers []string, points [][]float64) error {
	for i, pt := range points {
		if _, err := e.Eval(expr.MakeEnv(identifiers, pt)); err != nil {
			return fmt.Errorf("validity point %d %v: %w", i, pt, err)
		}
	}
	return nil
}

// IsViable reports whether e evaluates cleanly at every validity point.
func IsViable(e expr.Expr, identifiers []string, points [][]float64) bool {
	return CheckValidity(e, identifiers, points) == nil
}

// Compute returns the negated sum of squared residuals of e over samples.
// The first evaluation failure short-circuits to Worst. A perfect fit scores 0.
func Compute(e expr.Expr, identifiers []string, samples []dataset.Sample) float64 {
	fitness := 0.0
	for _, s := range samples {
		yHat, err := e.Eval(expr.MakeEnv(identifiers, s.Input))
		if err != nil {
			return Worst()
		}
		r := yHat - s.Output
		fitness -= r * r
	}
	// inf - inf style residuals leave no usable ordering
	if math.IsNaN(fitness) {
		return Worst()
	}
	return fitness
}

// RMSE converts a fitness over n samples back to a root mean squared error.
func RMSE(fitness float64, n int) float64 {
	if n == 0 {
		return 0
	}
	if math.IsInf(fitness, -1) {
		return math.Inf(1)
	}
	return math.Sqrt(-fitness / float64(n))
}

// Evaluator bundles the data an expression is scored against.
type Evaluator struct {
	Identifiers []string
	Training    []dataset.Sample
	TestPoints  [][]float64
}

// Viable reports whether e evaluates cleanly at every test point.
func (ev *Evaluator) Viable(e expr.Expr) bool {
	return IsViable(e, ev.Identifiers, ev.TestPoints)
}

// Fitness scores e against the training samples.
func (ev *Evaluator) Fitness(e expr.Expr) float64 {
	return Compute(e, ev.Identifiers, ev.Training)
}

// Score checks viability first and only scores viable expressions.
func (ev *Evaluator) Score(e expr.Expr) (Individual, bool) {
	if !ev.Viable(e) {
		return Individual{}, false
	}
	return Individual{Expr: e, Fitness: ev.Fitness(e)}, true
}
