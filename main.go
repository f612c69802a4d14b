package main

import (
	"flag"
	"fmt"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"github.com/wildfunctions/symbolic_regression/pkg/chart"
	"github.com/wildfunctions/symbolic_regression/pkg/dataset"
	"github.com/wildfunctions/symbolic_regression/pkg/engine"
	"github.com/wildfunctions/symbolic_regression/pkg/pool"
	"github.com/wildfunctions/symbolic_regression/pkg/strategy"
	"github.com/wildfunctions/symbolic_regression/pkg/targets"
)

func main() {
	cfg := engine.DefaultConfig()
	target := "original"
	dataFile := ""
	lo, hi := math.NaN(), math.NaN()
	samples := 25
	testPoints := 100
	funcs := ""

	flag.StringVar(&target, "target", target, "target function ("+strings.Join(targets.Names(), ", ")+"); ignored with -data")
	flag.StringVar(&dataFile, "data", dataFile, "whitespace-separated data file with a header row (identifiers, then output)")
	flag.Float64Var(&lo, "lo", lo, "lower end of the sampling range (default: the target's)")
	flag.Float64Var(&hi, "hi", hi, "upper end of the sampling range (default: the target's)")
	flag.IntVar(&samples, "samples", samples, "number of training samples drawn from the target")
	flag.IntVar(&testPoints, "testpoints", testPoints, "number of grid intervals for validity points")
	flag.StringVar(&cfg.Pool, "pool", cfg.Pool, "building-block pool ("+strings.Join(pool.Names(), ", ")+")")
	flag.StringVar(&cfg.Strategy, "strategy", cfg.Strategy, "search strategy ("+strings.Join(strategy.Names(), ", ")+")")
	flag.IntVar(&cfg.Population, "population", cfg.Population, "population size")
	flag.IntVar(&cfg.Generations, "generations", cfg.Generations, "number of generations")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (0 = random)")
	flag.IntVar(&cfg.Depth, "depth", cfg.Depth, "depth of random trees")
	flag.Float64Var(&cfg.ElitismFraction, "elitism", cfg.ElitismFraction, "fraction of the population carried over unchanged")
	flag.Float64Var(&cfg.Temperature, "temperature", cfg.Temperature, "selection temperature")
	flag.Float64Var(&cfg.ReplaceBySubexpr, "replace", cfg.ReplaceBySubexpr, "mutation: probability of hoisting the chosen subtree")
	flag.Float64Var(&cfg.GrowSubexpr, "grow", cfg.GrowSubexpr, "mutation: probability of wrapping the chosen subtree")
	flag.StringVar(&funcs, "funcs", funcs, "comma-separated unary functions overriding the pool's")
	flag.StringVar(&cfg.Format, "format", cfg.Format, "output format (text, json)")
	flag.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "verbose output per generation")
	flag.StringVar(&cfg.OutDir, "outdir", cfg.OutDir, "output directory for fit.png and history.png (empty = no plots)")
	flag.Parse()

	if cfg.Seed == 0 {
		cfg.Seed = rand.Int63()
	}
	if funcs != "" {
		cfg.UnaryFuns = strings.Split(funcs, ",")
	}

	var truth *targets.Target
	if dataFile != "" {
		if err := loadData(&cfg, dataFile); err != nil {
			fatalf("error loading %s: %v", dataFile, err)
		}
		if math.IsNaN(lo) || math.IsNaN(hi) {
			lo, hi = inputRange(cfg.Training)
		}
	} else {
		t, err := targets.Get(target)
		if err != nil {
			fatalf("error: %v", err)
		}
		truth = &t
		if math.IsNaN(lo) {
			lo = t.Lo
		}
		if math.IsNaN(hi) {
			hi = t.Hi
		}
		rng := rand.New(rand.NewSource(dataSeed(cfg.Seed)))
		cfg.Training, err = dataset.FromFunc(rng, t.F, lo, hi, samples)
		if err != nil {
			fatalf("error sampling %s: %v", target, err)
		}
		cfg.Target = t.Name
		cfg.Identifiers = []string{"x"}
		cfg.TestPoints = dataset.Grid(lo, hi, testPoints)
	}

	if cfg.OutDir != "" {
		if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
			fatalf("error creating output dir: %v", err)
		}
	}

	e, err := engine.New(cfg)
	if err != nil {
		fatalf("error: %v", err)
	}
	report, err := e.Run()
	if err != nil {
		fatalf("error: %v", err)
	}

	switch cfg.Format {
	case "json":
		if err := engine.WriteJSONFinal(os.Stdout, report); err != nil {
			fatalf("error writing JSON: %v", err)
		}
	default:
		engine.WriteTextFinal(os.Stdout, report)
	}

	if cfg.OutDir != "" {
		writePlots(cfg, report, truth, lo, hi)
	}
}

func loadData(cfg *engine.Config, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	ids, training, err := dataset.Load(f)
	if err != nil {
		return err
	}
	cfg.Target = filepath.Base(path)
	cfg.Identifiers = ids
	cfg.Training = training
	cfg.TestPoints = nil
	return nil
}

func inputRange(samples []dataset.Sample) (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, s := range samples {
		lo = math.Min(lo, s.Input[0])
		hi = math.Max(hi, s.Input[0])
	}
	return lo, hi
}

// writePlots draws fit.png for one-dimensional data and history.png always.
// Plot failures are reported but do not fail the run.
func writePlots(cfg engine.Config, report engine.FinalReport, truth *targets.Target, lo, hi float64) {
	if len(cfg.Identifiers) == 1 {
		fit := chart.Fit{
			Title:      report.Simplified,
			Samples:    cfg.Training,
			Best:       report.Best,
			Identifier: cfg.Identifiers[0],
			Lo:         lo,
			Hi:         hi,
		}
		if truth != nil {
			fit.Truth = truth.F
		}
		path := filepath.Join(cfg.OutDir, "fit.png")
		if err := fit.Save(path); err != nil {
			fmt.Fprintf(os.Stderr, "error writing %s: %v\n", path, err)
		} else {
			fmt.Fprintf(os.Stderr, "Wrote %s\n", path)
		}
	}

	path := filepath.Join(cfg.OutDir, "history.png")
	if err := chart.History(path, "best fitness ("+cfg.Strategy+")", report.HistoryValues()); err != nil {
		fmt.Fprintf(os.Stderr, "error writing %s: %v\n", path, err)
	} else {
		fmt.Fprintf(os.Stderr, "Wrote %s\n", path)
	}
}

// dataSeed derives the sampling seed from the search seed so the two
// streams differ but a run replays from -seed alone.
func dataSeed(seed int64) int64 {
	return seed ^ 0x5eed
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
