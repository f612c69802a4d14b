package engine

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/gofrs/uuid"

	"github.com/wildfunctions/symbolic_regression/pkg/dataset"
	"github.com/wildfunctions/symbolic_regression/pkg/expr"
	"github.com/wildfunctions/symbolic_regression/pkg/fitness"
	"github.com/wildfunctions/symbolic_regression/pkg/strategy"
)

// Engine runs the evolutionary search.
type Engine struct {
	cfg      Config
	search   *strategy.Search
	strategy strategy.Strategy
	out      io.Writer
}

// New creates a new engine from the given config. A zero seed is replaced by
// a random one, recorded in the config the engine reports.
func New(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	p, err := cfg.resolvePool()
	if err != nil {
		return nil, err
	}
	s, err := strategy.Get(cfg.Strategy)
	if err != nil {
		return nil, fmt.Errorf("%w (available: %v)", err, strategy.Names())
	}

	if cfg.Seed == 0 {
		cfg.Seed = rand.Int63()
	}
	testPoints := cfg.TestPoints
	if len(testPoints) == 0 {
		testPoints = dataset.Inputs(cfg.Training)
	}

	return &Engine{
		cfg: cfg,
		search: &strategy.Search{
			Pool: p,
			Eval: &fitness.Evaluator{
				Identifiers: cfg.Identifiers,
				Training:    cfg.Training,
				TestPoints:  testPoints,
			},
			Params: cfg.params(),
			Rng:    rand.New(rand.NewSource(cfg.Seed)),
		},
		strategy: s,
		out:      os.Stderr,
	}, nil
}

// SetOutput redirects progress logging, which goes to stderr by default.
func (e *Engine) SetOutput(w io.Writer) {
	e.out = w
}

// Config returns the effective configuration, including the resolved seed.
func (e *Engine) Config() Config {
	return e.cfg
}

// Run executes the evolutionary loop and returns the final report.
//
// Each generation evolves the population, then updates the best-so-far
// individual on strict improvement and appends the best-so-far fitness to the
// history, so the history never decreases and has one entry per generation.
func (e *Engine) Run() (FinalReport, error) {
	started := time.Now()
	prog := newProgress(e.out, e.cfg.Verbose)
	report := FinalReport{
		RunID:   uuid.Must(uuid.NewV4()).String(),
		Config:  e.cfg,
		History: []Score{},
	}
	prog.start(e.cfg, report.RunID)

	var best expr.Expr
	bestFitness := fitness.Worst()
	finish := func() FinalReport {
		report.setBest(best, bestFitness, len(e.cfg.Training))
		report.Elapsed = time.Since(started)
		prog.done(report)
		return report
	}

	if e.cfg.Generations == 0 {
		return finish(), nil
	}

	population, err := e.strategy.Initialize(e.search, e.cfg.Population)
	if err != nil {
		return finish(), fmt.Errorf("initializing population: %w", err)
	}

	for gen := 0; gen < e.cfg.Generations; gen++ {
		population, err = e.strategy.Evolve(e.search, population)
		if err != nil {
			return finish(), fmt.Errorf("generation %d: %w", gen, err)
		}

		improved := len(population) > 0 && fitness.Better(population[0].Fitness, bestFitness)
		if improved {
			best = population[0].Expr.Clone()
			bestFitness = population[0].Fitness
		}
		report.History = append(report.History, Score(bestFitness))

		genReport := newGenerationReport(gen, population, bestFitness)
		if e.cfg.Verbose {
			report.Generations = append(report.Generations, genReport)
		}
		prog.generation(genReport, improved)
	}

	return finish(), nil
}

// RunSearch runs one search over cfg's training data and returns the best
// expression, its fitness and the best-so-far fitness of every generation.
// populationSize and generations override the config's values.
//
// With zero generations no population is built and the result is
// (nil, -Inf, empty history).
func RunSearch(cfg Config, identifiers []string, populationSize, generations int) (expr.Expr, float64, []float64, error) {
	cfg.Identifiers = identifiers
	cfg.Population = populationSize
	cfg.Generations = generations

	e, err := New(cfg)
	if err != nil {
		return nil, fitness.Worst(), nil, err
	}
	report, err := e.Run()
	if err != nil {
		return nil, fitness.Worst(), nil, err
	}
	return report.Best, float64(report.BestFitness), report.HistoryValues(), nil
}
