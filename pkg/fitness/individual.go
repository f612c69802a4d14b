package fitness

import (
	"fmt"
	"math"
	"sort"

	"github.com/wildfunctions/symbolic_regression/pkg/expr"
)

// Individual is a population member: an expression and its fitness.
type Individual struct {
	Expr    expr.Expr
	Fitness float64
}

// Clone returns a deep copy of the individual.
func (ind Individual) Clone() Individual {
	return Individual{Expr: ind.Expr.Clone(), Fitness: ind.Fitness}
}

// String returns a human-readable representation.
func (ind Individual) String() string {
	return fmt.Sprintf("%.6g | %s", ind.Fitness, ind.Expr)
}

// Better reports whether a ranks strictly ahead of b. NaN ranks last.
func Better(a, b float64) bool {
	if math.IsNaN(b) {
		return !math.IsNaN(a)
	}
	return a > b
}

// SortDescending orders pop best first. Ties keep their relative order.
func SortDescending(pop []Individual) {
	sort.SliceStable(pop, func(i, j int) bool {
		return Better(pop[i].Fitness, pop[j].Fitness)
	})
}

// Fitnesses extracts the fitness column of pop.
func Fitnesses(pop []Individual) []float64 {
	out := make([]float64, len(pop))
	for i, ind := range pop {
		out[i] = ind.Fitness
	}
	return out
}
