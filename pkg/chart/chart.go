// Package chart renders a finished search as images: the fitted curve over
// the training data, and the best-so-far fitness by generation.
package chart

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/wildfunctions/symbolic_regression/pkg/dataset"
	"github.com/wildfunctions/symbolic_regression/pkg/expr"
)

const curveSteps = 400

var (
	fitColor   = color.RGBA{R: 200, A: 255}
	truthColor = color.RGBA{B: 200, A: 255}
)

// Fit describes a one-dimensional fit plot.
type Fit struct {
	Title      string
	Samples    []dataset.Sample
	Best       expr.Expr
	Identifier string
	Truth      func(float64) float64 // optional ground truth
	Lo, Hi     float64
}

// Save writes the plot to path; the format follows the extension.
func (f Fit) Save(path string) error {
	if !(f.Lo < f.Hi) {
		return fmt.Errorf("invalid plot range [%g, %g]", f.Lo, f.Hi)
	}
	p := plot.New()
	p.Title.Text = f.Title
	p.X.Label.Text = f.Identifier
	p.Y.Label.Text = "y"

	pts := make(plotter.XYs, 0, len(f.Samples))
	for _, s := range f.Samples {
		if len(s.Input) == 0 || !finite(s.Output) {
			continue
		}
		pts = append(pts, plotter.XY{X: s.Input[0], Y: s.Output})
	}
	if len(pts) > 0 {
		scatter, err := plotter.NewScatter(pts)
		if err != nil {
			return err
		}
		p.Add(scatter)
		p.Legend.Add("data", scatter)
	}

	if f.Truth != nil {
		if err := addCurve(p, "truth", truthColor, f.sample(func(x float64) (float64, bool) {
			y := f.Truth(x)
			return y, finite(y)
		})); err != nil {
			return err
		}
	}
	if f.Best != nil {
		env := expr.Env{}
		if err := addCurve(p, "fit", fitColor, f.sample(func(x float64) (float64, bool) {
			env[f.Identifier] = x
			y, err := f.Best.Eval(env)
			return y, err == nil && finite(y)
		})); err != nil {
			return err
		}
	}

	p.Legend.Top = true
	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}

// sample evaluates g on an even grid over [Lo, Hi] and splits the result
// into runs of consecutive defined points.
func (f Fit) sample(g func(float64) (float64, bool)) []plotter.XYs {
	var segments []plotter.XYs
	var cur plotter.XYs
	for i := 0; i <= curveSteps; i++ {
		x := f.Lo + (f.Hi-f.Lo)*float64(i)/curveSteps
		y, ok := g(x)
		if !ok {
			if len(cur) > 0 {
				segments = append(segments, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, plotter.XY{X: x, Y: y})
	}
	if len(cur) > 0 {
		segments = append(segments, cur)
	}
	return segments
}

func addCurve(p *plot.Plot, name string, c color.Color, segments []plotter.XYs) error {
	for i, seg := range segments {
		line, err := plotter.NewLine(seg)
		if err != nil {
			return err
		}
		line.Color = c
		p.Add(line)
		if i == 0 {
			p.Legend.Add(name, line)
		}
	}
	return nil
}

// History plots the best-so-far fitness of each generation. Generations
// that had no finite best yet are left out.
func History(path, title string, history []float64) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Generation"
	p.Y.Label.Text = "Best fitness"

	pts := make(plotter.XYs, 0, len(history))
	for i, v := range history {
		if finite(v) {
			pts = append(pts, plotter.XY{X: float64(i), Y: v})
		}
	}
	if len(pts) > 0 {
		line, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		line.Color = fitColor
		p.Add(line)
	}
	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
