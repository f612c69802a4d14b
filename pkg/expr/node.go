package expr

import "fmt"

// Expr is the interface for all expression tree nodes.
//
// The set of implementations is closed: Const, Ident, Plus, Mult, Minus, Div
// and UnaryFn. Each node owns its children outright; operators that recombine
// subtrees from different trees must Clone first.
type Expr interface {
	Eval(env Env) (float64, error)
	String() string
	LaTeX() string
	Clone() Expr
	Simplify() Expr
	NodeCount() int
	Depth() int
	IsLeaf() bool
	NumChildren() int
	Child(i int) Expr
	SetChild(i int, e Expr)
}

// Func identifies a unary function.
type Func int

const (
	FnSin Func = iota
	FnCos
	FnLog
	FnExp
	FnAtan
	FnTanh
	FnSinh
	FnCosh
	FnSqrt
)

var funcNames = map[Func]string{
	FnSin:  "sin",
	FnCos:  "cos",
	FnLog:  "log",
	FnExp:  "exp",
	FnAtan: "atan",
	FnTanh: "tanh",
	FnSinh: "sinh",
	FnCosh: "cosh",
	FnSqrt: "sqrt",
}

func (f Func) String() string {
	if name, ok := funcNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Func(%d)", int(f))
}

// ParseFunc looks up a unary function by name.
func ParseFunc(name string) (Func, error) {
	for f, n := range funcNames {
		if n == name {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown unary function: %s", name)
}

// ParseFuncs parses a list of function names, keeping repeats.
func ParseFuncs(names []string) ([]Func, error) {
	fns := make([]Func, 0, len(names))
	for _, name := range names {
		f, err := ParseFunc(name)
		if err != nil {
			return nil, err
		}
		fns = append(fns, f)
	}
	return fns, nil
}

// Const is a floating point literal.
type Const struct {
	Val float64
}

// Ident is a variable resolved against the environment at evaluation time.
type Ident struct {
	Name string
}

// Plus is the sum of one or more terms.
type Plus struct {
	Terms []Expr
}

// Mult is the product of one or more factors.
type Mult struct {
	Factors []Expr
}

// Minus is Left - Right.
type Minus struct {
	Left, Right Expr
}

// Div is Left / Right.
type Div struct {
	Left, Right Expr
}

// UnaryFn applies a unary function to its argument.
type UnaryFn struct {
	Fn  Func
	Arg Expr
}
