package engine

import (
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/term"
	"golang.org/x/time/rate"
)

const (
	colorReset = "\x1b[0m"
	colorGray  = "\x1b[90m"
	colorGreen = "\x1b[32m"
	colorCyan  = "\x1b[36m"
)

// progress writes run progress to stderr. Non-verbose runs print every new
// best and otherwise a heartbeat at most once per second.
type progress struct {
	w         io.Writer
	color     bool
	verbose   bool
	heartbeat rate.Sometimes
}

func newProgress(w io.Writer, verbose bool) *progress {
	return &progress{
		w:         w,
		color:     colorEnabled(w),
		verbose:   verbose,
		heartbeat: rate.Sometimes{Interval: time.Second},
	}
}

// colorEnabled is true only for a terminal and only when NO_COLOR is unset.
func colorEnabled(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (p *progress) paint(color, s string) string {
	if !p.color {
		return s
	}
	return color + s + colorReset
}

func (p *progress) start(cfg Config, runID string) {
	fmt.Fprintf(p.w, "%s strategy %s, pool %s, population %d, %d generations, %d samples, seed %d\n",
		p.paint(colorCyan, "Starting run "+runID+":"),
		cfg.Strategy, cfg.Pool, cfg.Population, cfg.Generations, len(cfg.Training), cfg.Seed)
}

func (p *progress) generation(r GenerationReport, improved bool) {
	switch {
	case p.verbose:
		WriteTextReport(p.w, r)
	case improved:
		fmt.Fprintf(p.w, "%s fitness %.6g | %s\n",
			p.paint(colorGreen, fmt.Sprintf("[gen %d] NEW BEST", r.Generation)),
			float64(r.BestSoFar), r.BestExpr)
	default:
		p.heartbeat.Do(func() {
			fmt.Fprintf(p.w, "%s best %.6g | mean %.6g\n",
				p.paint(colorGray, fmt.Sprintf("[gen %d]", r.Generation)),
				float64(r.BestSoFar), float64(r.MeanFitness))
		})
	}
}

func (p *progress) done(r FinalReport) {
	fmt.Fprintf(p.w, "%s best fitness %.6g after %d generations in %s\n",
		p.paint(colorCyan, "Finished:"),
		float64(r.BestFitness), len(r.History), r.Elapsed.Round(time.Millisecond))
}
