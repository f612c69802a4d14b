package strategy

import (
	"math"

	"github.com/wildfunctions/symbolic_regression/pkg/expr"
	"github.com/wildfunctions/symbolic_regression/pkg/fitness"
)

func init() {
	Register("anneal", func() Strategy { return &AnnealStrategy{} })
}

// AnnealStrategy runs one simulated annealing chain per population slot.
//
// Every generation each chain proposes a mutation of its current expression
// and moves to it when it is viable and either no worse or accepted with
// probability exp(delta/T). T starts at AnnealStartTemp and is multiplied by
// AnnealCoolFraction every AnnealCoolSteps generations.
type AnnealStrategy struct {
	temperature float64
	step        int
}

func (a *AnnealStrategy) Name() string { return "anneal" }

func (a *AnnealStrategy) Initialize(s *Search, popSize int) ([]fitness.Individual, error) {
	a.temperature = s.Params.AnnealStartTemp
	a.step = 0
	return randomPopulation(s, popSize)
}

func (a *AnnealStrategy) Evolve(s *Search, population []fitness.Individual) ([]fitness.Individual, error) {
	next := make([]fitness.Individual, len(population))
	for i, cur := range population {
		next[i] = a.stepChain(s, cur)
	}

	a.step++
	if s.Params.AnnealCoolSteps > 0 && a.step%s.Params.AnnealCoolSteps == 0 {
		a.temperature *= s.Params.AnnealCoolFraction
	}

	fitness.SortDescending(next)
	return next, nil
}

// Temperature returns the current annealing temperature.
func (a *AnnealStrategy) Temperature() float64 { return a.temperature }

func (a *AnnealStrategy) stepChain(s *Search, cur fitness.Individual) fitness.Individual {
	var proposal expr.Expr
	if cur.Expr.IsLeaf() {
		// nothing to mutate; restart the chain from a fresh tree
		proposal = s.Pool.RandomExpr(s.Rng, s.Params.Depth, s.Identifiers())
	} else {
		proposal = Mutate(cur.Expr, s.Identifiers(), s.Pool, s.Params, s.Rng)
	}

	cand, ok := s.Eval.Score(proposal)
	if !ok {
		return cur
	}
	if cand.Fitness >= cur.Fitness {
		return cand
	}
	if a.temperature > 0 && s.Rng.Float64() < math.Exp((cand.Fitness-cur.Fitness)/a.temperature) {
		return cand
	}
	return cur
}
