package engine

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/wildfunctions/symbolic_regression/pkg/expr"
	"github.com/wildfunctions/symbolic_regression/pkg/fitness"
)

// Score is a fitness-like value. Infinities and NaN, which JSON cannot
// represent, are encoded as null.
type Score float64

func (s Score) MarshalJSON() ([]byte, error) {
	f := float64(s)
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return []byte("null"), nil
	}
	return json.Marshal(f)
}

// GenerationReport summarizes one generation.
type GenerationReport struct {
	Generation  int    `json:"generation"`
	BestFitness Score  `json:"best_fitness"` // best of this generation
	BestSoFar   Score  `json:"best_so_far"`
	BestExpr    string `json:"best_expr"`
	MeanFitness Score  `json:"mean_fitness"`
	StdDev      Score  `json:"stddev_fitness"`
	Finite      int    `json:"finite"` // individuals with finite fitness
}

// newGenerationReport describes a population sorted best first. Mean and
// standard deviation cover finite fitnesses only.
func newGenerationReport(gen int, pop []fitness.Individual, bestSoFar float64) GenerationReport {
	r := GenerationReport{
		Generation:  gen,
		BestFitness: Score(fitness.Worst()),
		BestSoFar:   Score(bestSoFar),
		MeanFitness: Score(math.NaN()),
		StdDev:      Score(math.NaN()),
	}
	if len(pop) > 0 {
		r.BestFitness = Score(pop[0].Fitness)
		r.BestExpr = pop[0].Expr.String()
	}

	finite := make([]float64, 0, len(pop))
	for _, ind := range pop {
		if !math.IsInf(ind.Fitness, 0) && !math.IsNaN(ind.Fitness) {
			finite = append(finite, ind.Fitness)
		}
	}
	r.Finite = len(finite)
	if len(finite) > 0 {
		mean, std := stat.MeanStdDev(finite, nil)
		r.MeanFitness = Score(mean)
		r.StdDev = Score(std)
	}
	return r
}

// FinalReport summarizes the entire run.
type FinalReport struct {
	RunID       string             `json:"run_id"`
	Config      Config             `json:"config"`
	Best        expr.Expr          `json:"-"`
	BestExpr    string             `json:"best_expr"`
	Simplified  string             `json:"simplified"`
	LaTeX       string             `json:"latex"`
	BestFitness Score              `json:"best_fitness"`
	RMSE        Score              `json:"rmse"`
	NodeCount   int                `json:"node_count"`
	Complexity  float64            `json:"complexity"`
	History     []Score            `json:"history"`
	Generations []GenerationReport `json:"generations,omitempty"`
	Elapsed     time.Duration      `json:"elapsed_ns"`
}

// setBest fills in the best expression and everything derived from it.
func (r *FinalReport) setBest(best expr.Expr, bestFitness float64, samples int) {
	r.BestFitness = Score(bestFitness)
	r.RMSE = Score(fitness.RMSE(bestFitness, samples))
	if best == nil {
		return
	}
	r.Best = best
	r.BestExpr = best.String()
	simplified := expr.Simplify(best)
	r.Simplified = simplified.String()
	r.LaTeX = simplified.LaTeX()
	r.NodeCount = best.NodeCount()
	r.Complexity = expr.WeightedComplexity(best)
}

// HistoryValues returns the best-so-far fitness history as plain floats.
func (r FinalReport) HistoryValues() []float64 {
	out := make([]float64, len(r.History))
	for i, s := range r.History {
		out[i] = float64(s)
	}
	return out
}

// WriteTextReport writes a generation report in human-readable format.
func WriteTextReport(w io.Writer, r GenerationReport) {
	fmt.Fprintf(w, "Gen %4d | Best: %.6g | So far: %.6g | Mean: %.6g ± %.3g (%d finite) | %s\n",
		r.Generation, float64(r.BestFitness), float64(r.BestSoFar),
		float64(r.MeanFitness), float64(r.StdDev), r.Finite, r.BestExpr)
}

// WriteTextFinal writes the final report in human-readable format.
func WriteTextFinal(w io.Writer, r FinalReport) {
	fmt.Fprintln(w, "\n========== FINAL RESULT ==========")
	fmt.Fprintf(w, "Run:        %s\n", r.RunID)
	if r.Config.Target != "" {
		fmt.Fprintf(w, "Target:     %s\n", r.Config.Target)
	}
	fmt.Fprintf(w, "Strategy:   %s\n", r.Config.Strategy)
	fmt.Fprintf(w, "Pool:       %s\n", r.Config.Pool)
	fmt.Fprintf(w, "Seed:       %d\n", r.Config.Seed)
	if r.Best == nil && r.BestExpr == "" {
		fmt.Fprintln(w, "Best:       (none)")
		fmt.Fprintln(w, "==================================")
		return
	}
	fmt.Fprintf(w, "Best:       %s\n", r.BestExpr)
	fmt.Fprintf(w, "Simplified: %s\n", r.Simplified)
	fmt.Fprintf(w, "LaTeX:      %s\n", r.LaTeX)
	fmt.Fprintf(w, "Fitness:    %.6g\n", float64(r.BestFitness))
	fmt.Fprintf(w, "RMSE:       %.6g\n", float64(r.RMSE))
	fmt.Fprintf(w, "Nodes:      %d (complexity %.1f)\n", r.NodeCount, r.Complexity)
	fmt.Fprintln(w, "==================================")
}

// WriteJSONFinal writes the final report as JSON.
func WriteJSONFinal(w io.Writer, r FinalReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
