package expr

import (
	"fmt"
	"math"
)

// zeroThreshold guards the right operand of both Minus and Div.
const zeroThreshold = 1e-10

// ErrorKind classifies an evaluation failure.
type ErrorKind int

const (
	UnknownIdent ErrorKind = iota
	DivisionByZero
	Domain
	Overflow
)

var errorKindNames = map[ErrorKind]string{
	UnknownIdent:   "unknown identifier",
	DivisionByZero: "division by zero",
	Domain:         "domain error",
	Overflow:       "overflow",
}

func (k ErrorKind) String() string { return errorKindNames[k] }

// EvalError reports why an expression could not be evaluated.
type EvalError struct {
	Kind   ErrorKind
	Detail string
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("evaluation failed: %s: %s", e.Kind, e.Detail)
}

func evalErr(kind ErrorKind, format string, args ...any) *EvalError {
	return &EvalError{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

func (c *Const) Eval(env Env) (float64, error) {
	return c.Val, nil
}

func (id *Ident) Eval(env Env) (float64, error) {
	v, ok := env[id.Name]
	if !ok {
		return 0, evalErr(UnknownIdent, "%s", id.Name)
	}
	return v, nil
}

func (p *Plus) Eval(env Env) (float64, error) {
	sum := 0.0
	for _, t := range p.Terms {
		v, err := t.Eval(env)
		if err != nil {
			return 0, err
		}
		sum += v
	}
	return sum, nil
}

func (m *Mult) Eval(env Env) (float64, error) {
	prod := 1.0
	for _, f := range m.Factors {
		v, err := f.Eval(env)
		if err != nil {
			return 0, err
		}
		prod *= v
	}
	return prod, nil
}

func (m *Minus) Eval(env Env) (float64, error) {
	left, right, err := evalPair(m.Left, m.Right, env)
	if err != nil {
		return 0, err
	}
	if math.Abs(right) <= zeroThreshold {
		return 0, evalErr(DivisionByZero, "subtracting %g", right)
	}
	return left - right, nil
}

func (d *Div) Eval(env Env) (float64, error) {
	left, right, err := evalPair(d.Left, d.Right, env)
	if err != nil {
		return 0, err
	}
	if math.Abs(right) <= zeroThreshold {
		return 0, evalErr(DivisionByZero, "dividing by %g", right)
	}
	return left / right, nil
}

func (u *UnaryFn) Eval(env Env) (float64, error) {
	x, err := u.Arg.Eval(env)
	if err != nil {
		return 0, err
	}
	return Apply(u.Fn, x)
}

func evalPair(left, right Expr, env Env) (float64, float64, error) {
	l, err := left.Eval(env)
	if err != nil {
		return 0, 0, err
	}
	r, err := right.Eval(env)
	if err != nil {
		return 0, 0, err
	}
	return l, r, nil
}

// Apply evaluates fn at x with the same domain checks Eval uses.
func Apply(fn Func, x float64) (float64, error) {
	var r float64
	switch fn {
	case FnSin:
		r = math.Sin(x)
	case FnCos:
		r = math.Cos(x)
	case FnLog:
		if !(x > 0) {
			return 0, evalErr(Domain, "log(%g)", x)
		}
		r = math.Log(x)
	case FnExp:
		r = math.Exp(x)
	case FnAtan:
		r = math.Atan(x)
	case FnTanh:
		r = math.Tanh(x)
	case FnSinh:
		r = math.Sinh(x)
	case FnCosh:
		r = math.Cosh(x)
	case FnSqrt:
		if !(x >= 0) {
			return 0, evalErr(Domain, "sqrt(%g)", x)
		}
		r = math.Sqrt(x)
	default:
		panic(fmt.Sprintf("expr: unknown unary function %d", int(fn)))
	}

	// sin(±Inf) and friends produce NaN from a non-NaN input; exp and the
	// hyperbolics overflow finite inputs to ±Inf.
	if math.IsNaN(r) && !math.IsNaN(x) {
		return 0, evalErr(Domain, "%s(%g)", fn, x)
	}
	if math.IsInf(r, 0) && !math.IsInf(x, 0) {
		return 0, evalErr(Overflow, "%s(%g)", fn, x)
	}
	return r, nil
}
