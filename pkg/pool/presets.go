package pool

import "github.com/wildfunctions/symbolic_regression/pkg/expr"

func init() {
	Register("default", Default)
	Register("trig", Trig)
	Register("kitchensink", KitchenSink)
}

// Default is the classic parameter set: trig and exp favoured three to one,
// binary sums and products most likely, and a small set of signed literals.
func Default() *Pool {
	return &Pool{
		Name: "default",
		UnaryFuns: []expr.Func{
			expr.FnSin, expr.FnSin, expr.FnSin,
			expr.FnCos, expr.FnCos, expr.FnCos,
			expr.FnLog,
			expr.FnExp, expr.FnExp, expr.FnExp,
			expr.FnAtan,
			expr.FnSqrt, expr.FnSqrt,
			expr.FnTanh, expr.FnSinh, expr.FnCosh,
		},
		Cardinalities:    []int{2, 2, 2, 2, 2, 2, 2, 2, 3, 3, 3, 3, 3, 4, 4, 5},
		ProbLeafConstant: 0.3,
		Constants:        []float64{1.0, -1.0, 2.0, -2.0, 0.5, -0.5, RandomConstant},
	}
}

// Trig favours periodic building blocks for oscillating data.
func Trig() *Pool {
	return &Pool{
		Name: "trig",
		UnaryFuns: []expr.Func{
			expr.FnSin, expr.FnSin, expr.FnSin, expr.FnSin,
			expr.FnCos, expr.FnCos, expr.FnCos, expr.FnCos,
			expr.FnAtan, expr.FnTanh,
		},
		Cardinalities:    []int{2, 2, 2, 2, 3},
		ProbLeafConstant: 0.3,
		Constants:        []float64{1.0, -1.0, 2.0, -2.0, 0.5, 3.0, RandomConstant},
	}
}

// KitchenSink draws every function and arity with equal weight.
func KitchenSink() *Pool {
	return &Pool{
		Name: "kitchensink",
		UnaryFuns: []expr.Func{
			expr.FnSin, expr.FnCos, expr.FnLog, expr.FnExp, expr.FnAtan,
			expr.FnTanh, expr.FnSinh, expr.FnCosh, expr.FnSqrt,
		},
		Cardinalities:    []int{2, 3, 4, 5},
		ProbLeafConstant: 0.4,
		Constants:        []float64{1.0, -1.0, 2.0, -2.0, 0.5, -0.5, 3.0, 10.0, RandomConstant, RandomConstant},
	}
}
