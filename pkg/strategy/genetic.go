package strategy

import (
	"fmt"

	"github.com/wildfunctions/symbolic_regression/pkg/expr"
	"github.com/wildfunctions/symbolic_regression/pkg/fitness"
)

func init() {
	Register("genetic", func() Strategy { return &GeneticStrategy{} })
}

// GeneticStrategy implements fitness-proportional selection with subtree
// crossover, mutation and elitism.
//
// Each generation the top floor(ElitismFraction*N) individuals survive
// unchanged and the remaining slots are filled with viable offspring. Parents
// are drawn with replacement, weighted by exp(fitness/Temperature).
type GeneticStrategy struct{}

func (g *GeneticStrategy) Name() string { return "genetic" }

func (g *GeneticStrategy) Initialize(s *Search, popSize int) ([]fitness.Individual, error) {
	return randomPopulation(s, popSize)
}

func (g *GeneticStrategy) Evolve(s *Search, population []fitness.Individual) ([]fitness.Individual, error) {
	n := len(population)
	if n == 0 {
		return nil, nil
	}
	k := eliteCount(n, s.Params.ElitismFraction)

	offspring, err := g.reproduce(s, population, n-k)
	if err != nil {
		return nil, err
	}

	// Elitism: sort the current generation and carry the top k over.
	ranked := make([]fitness.Individual, n)
	copy(ranked, population)
	fitness.SortDescending(ranked)

	next := make([]fitness.Individual, 0, n)
	next = append(next, ranked[:k]...)
	next = append(next, offspring...)
	fitness.SortDescending(next)
	return next, nil
}

// reproduce breeds exactly target viable offspring from population.
func (g *GeneticStrategy) reproduce(s *Search, population []fitness.Individual, target int) ([]fitness.Individual, error) {
	sampler := newWeightedSampler(selectionWeights(population, s.Params.Temperature))
	offspring := make([]fitness.Individual, 0, target)

	attempts := 0
	for len(offspring) < target {
		if limit := s.Params.MaxOffspringAttempts; limit > 0 && attempts >= limit {
			return nil, fmt.Errorf("%w: %d of %d viable offspring after %d breeding attempts",
				ErrStalled, len(offspring), target, attempts)
		}
		attempts++

		p1 := population[sampler.draw(s.Rng)]
		p2 := population[sampler.draw(s.Rng)]

		c1, c2 := Crossover(p1.Expr, p2.Expr, s.Rng)
		m1 := Mutate(c1, s.Identifiers(), s.Pool, s.Params, s.Rng)
		m2 := Mutate(c2, s.Identifiers(), s.Pool, s.Params, s.Rng)

		for _, m := range []expr.Expr{m1, m2} {
			if len(offspring) == target {
				break
			}
			if ind, ok := s.Eval.Score(m); ok {
				offspring = append(offspring, ind)
			}
		}
	}
	return offspring, nil
}
