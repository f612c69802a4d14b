package strategy

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"

	"github.com/wildfunctions/symbolic_regression/pkg/fitness"
	"github.com/wildfunctions/symbolic_regression/pkg/pool"
)

// ErrStalled is returned when a retry cap is exhausted before enough viable
// expressions were produced. It usually means the configuration makes almost
// every random tree invalid on the test points.
var ErrStalled = errors.New("search stalled")

// Params holds the operator and loop parameters shared by all strategies.
type Params struct {
	ReplaceBySubexpr float64 // mutation: probability of returning the chosen subtree
	GrowSubexpr      float64 // mutation: probability of wrapping the chosen subtree
	Depth            int     // depth of random trees and grown siblings
	ElitismFraction  float64
	Temperature      float64 // selection weight scale

	AnnealCoolSteps    int
	AnnealCoolFraction float64
	AnnealStartTemp    float64

	MaxInitAttempts      int // 0 = unlimited
	MaxOffspringAttempts int // per generation, 0 = unlimited
}

// Search is everything a strategy needs to draw, score and breed expressions.
type Search struct {
	Pool   *pool.Pool
	Eval   *fitness.Evaluator
	Params Params
	Rng    *rand.Rand
}

// Identifiers returns the variable names expressions may reference.
func (s *Search) Identifiers() []string {
	return s.Eval.Identifiers
}

// Strategy defines a search strategy over a population of expressions.
// Evolve must return the next population sorted best first.
type Strategy interface {
	Name() string
	Initialize(s *Search, popSize int) ([]fitness.Individual, error)
	Evolve(s *Search, population []fitness.Individual) ([]fitness.Individual, error)
}

var registry = map[string]func() Strategy{}

// Register adds a strategy constructor to the registry.
func Register(name string, constructor func() Strategy) {
	registry[name] = constructor
}

// Get returns a new strategy instance by name.
func Get(name string) (Strategy, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown strategy: %s", name)
	}
	return ctor(), nil
}

// Names returns all registered strategy names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for k := range registry {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// randomPopulation draws random trees at the configured depth until n of
// them are viable. Each viable tree is scored on the way in.
func randomPopulation(s *Search, n int) ([]fitness.Individual, error) {
	pop := make([]fitness.Individual, 0, n)
	attempts := 0
	for len(pop) < n {
		if limit := s.Params.MaxInitAttempts; limit > 0 && attempts >= limit {
			return nil, fmt.Errorf("%w: %d of %d viable individuals after %d random trees",
				ErrStalled, len(pop), n, attempts)
		}
		attempts++
		e := s.Pool.RandomExpr(s.Rng, s.Params.Depth, s.Identifiers())
		if ind, ok := s.Eval.Score(e); ok {
			pop = append(pop, ind)
		}
	}
	return pop, nil
}
