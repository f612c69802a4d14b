package engine

import (
	"fmt"
	"math"

	"github.com/wildfunctions/symbolic_regression/pkg/dataset"
	"github.com/wildfunctions/symbolic_regression/pkg/expr"
	"github.com/wildfunctions/symbolic_regression/pkg/pool"
	"github.com/wildfunctions/symbolic_regression/pkg/strategy"
)

// Config holds all parameters for a search run.
type Config struct {
	Target      string `json:"target,omitempty"` // label for the data source, reporting only
	Pool        string `json:"pool"`
	Strategy    string `json:"strategy"`
	Population  int    `json:"population"`
	Generations int    `json:"generations"`
	Seed        int64  `json:"seed"`   // 0 = random
	Format      string `json:"format"` // "text" or "json"
	Verbose     bool   `json:"verbose"`
	OutDir      string `json:"outdir,omitempty"`

	// Overrides of the pool preset. Empty or nil keeps the preset's value.
	UnaryFuns        []string  `json:"unary_funs,omitempty"`
	Cardinalities    []int     `json:"cardinalities,omitempty"`
	ProbLeafConstant *float64  `json:"prob_leaf_constant,omitempty"`
	Constants        []float64 `json:"-"` // may hold pool.RandomConstant

	ReplaceBySubexpr float64 `json:"replace_by_subexpr"`
	GrowSubexpr      float64 `json:"grow_subexpr"`
	Depth            int     `json:"depth"`
	ElitismFraction  float64 `json:"elitism_fraction"`
	Temperature      float64 `json:"temperature"`

	AnnealCoolSteps    int     `json:"anneal_cool_steps"`
	AnnealCoolFraction float64 `json:"anneal_cool_fraction"`
	AnnealStartTemp    float64 `json:"anneal_start_temp"`

	MaxInitAttempts      int `json:"max_init_attempts"`
	MaxOffspringAttempts int `json:"max_offspring_attempts"`

	Identifiers []string         `json:"identifiers"`
	Training    []dataset.Sample `json:"-"`
	TestPoints  [][]float64      `json:"-"` // nil = the training inputs
}

// DefaultConfig returns a config with sensible defaults. Training data and
// identifiers are left for the caller to fill in.
func DefaultConfig() Config {
	return Config{
		Pool:        "default",
		Strategy:    "genetic",
		Population:  100,
		Generations: 100,
		Seed:        0,
		Format:      "text",
		Verbose:     false,

		ReplaceBySubexpr: 0.3,
		GrowSubexpr:      0.2,
		Depth:            3,
		ElitismFraction:  0.2,
		Temperature:      10,

		AnnealCoolSteps:    100,
		AnnealCoolFraction: 0.8,
		AnnealStartTemp:    100,

		MaxInitAttempts:      1_000_000,
		MaxOffspringAttempts: 1_000_000,
	}
}

// Validate reports the first parameter that cannot drive a search.
func (c Config) Validate() error {
	if c.Population < 1 {
		return fmt.Errorf("population must be at least 1, got %d", c.Population)
	}
	if c.Generations < 0 {
		return fmt.Errorf("generations must not be negative, got %d", c.Generations)
	}
	if c.Depth < 0 {
		return fmt.Errorf("depth must not be negative, got %d", c.Depth)
	}
	fractions := []struct {
		name string
		v    float64
	}{
		{"replace_by_subexpr", c.ReplaceBySubexpr},
		{"grow_subexpr", c.GrowSubexpr},
		{"elitism_fraction", c.ElitismFraction},
	}
	for _, f := range fractions {
		if !(f.v >= 0 && f.v <= 1) {
			return fmt.Errorf("%s must be in [0, 1], got %g", f.name, f.v)
		}
	}
	if !(c.Temperature > 0) || math.IsInf(c.Temperature, 1) {
		return fmt.Errorf("temperature must be positive and finite, got %g", c.Temperature)
	}
	if c.AnnealCoolSteps < 0 {
		return fmt.Errorf("anneal cool steps must not be negative, got %d", c.AnnealCoolSteps)
	}
	if !(c.AnnealCoolFraction > 0 && c.AnnealCoolFraction <= 1) {
		return fmt.Errorf("anneal cool fraction must be in (0, 1], got %g", c.AnnealCoolFraction)
	}
	if c.AnnealStartTemp < 0 {
		return fmt.Errorf("anneal start temperature must not be negative, got %g", c.AnnealStartTemp)
	}
	if c.MaxInitAttempts < 0 || c.MaxOffspringAttempts < 0 {
		return fmt.Errorf("attempt caps must not be negative")
	}
	if _, err := strategy.Get(c.Strategy); err != nil {
		return fmt.Errorf("%w (available: %v)", err, strategy.Names())
	}
	if _, err := pool.Get(c.Pool); err != nil {
		return fmt.Errorf("%w (available: %v)", err, pool.Names())
	}
	if _, err := expr.ParseFuncs(c.UnaryFuns); err != nil {
		return err
	}
	switch c.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unknown format: %s (available: text, json)", c.Format)
	}
	if len(c.Identifiers) == 0 {
		return fmt.Errorf("no identifiers")
	}
	if len(c.Training) == 0 {
		return fmt.Errorf("no training data")
	}
	for i, s := range c.Training {
		if len(s.Input) != len(c.Identifiers) {
			return fmt.Errorf("training sample %d has %d inputs, want %d", i, len(s.Input), len(c.Identifiers))
		}
	}
	for i, pt := range c.TestPoints {
		if len(pt) != len(c.Identifiers) {
			return fmt.Errorf("test point %d has %d inputs, want %d", i, len(pt), len(c.Identifiers))
		}
	}
	return nil
}

// resolvePool loads the named preset and applies the config's overrides.
func (c Config) resolvePool() (*pool.Pool, error) {
	p, err := pool.Get(c.Pool)
	if err != nil {
		return nil, fmt.Errorf("%w (available: %v)", err, pool.Names())
	}
	if len(c.UnaryFuns) > 0 {
		fns, err := expr.ParseFuncs(c.UnaryFuns)
		if err != nil {
			return nil, err
		}
		p.UnaryFuns = fns
	}
	if len(c.Cardinalities) > 0 {
		p.Cardinalities = append([]int(nil), c.Cardinalities...)
	}
	if c.ProbLeafConstant != nil {
		p.ProbLeafConstant = *c.ProbLeafConstant
	}
	if len(c.Constants) > 0 {
		p.Constants = append([]float64(nil), c.Constants...)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func (c Config) params() strategy.Params {
	return strategy.Params{
		ReplaceBySubexpr:     c.ReplaceBySubexpr,
		GrowSubexpr:          c.GrowSubexpr,
		Depth:                c.Depth,
		ElitismFraction:      c.ElitismFraction,
		Temperature:          c.Temperature,
		AnnealCoolSteps:      c.AnnealCoolSteps,
		AnnealCoolFraction:   c.AnnealCoolFraction,
		AnnealStartTemp:      c.AnnealStartTemp,
		MaxInitAttempts:      c.MaxInitAttempts,
		MaxOffspringAttempts: c.MaxOffspringAttempts,
	}
}
