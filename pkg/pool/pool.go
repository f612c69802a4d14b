package pool

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/wildfunctions/symbolic_regression/pkg/expr"
)

// RandomConstant is the sentinel entry of Pool.Constants meaning "draw a
// fresh value uniformly from [-10, 10)". Test for it with IsRandomConstant.
var RandomConstant = math.NaN()

// IsRandomConstant reports whether v is the RandomConstant sentinel.
func IsRandomConstant(v float64) bool { return math.IsNaN(v) }

// Pool provides the random building blocks for constructing expression trees.
// Repeated entries in UnaryFuns and Cardinalities bias the draw toward them.
type Pool struct {
	Name             string
	UnaryFuns        []expr.Func
	Cardinalities    []int // candidate arities for Plus and Mult
	ProbLeafConstant float64
	Constants        []float64
}

var registry = map[string]func() *Pool{}

// Register adds a pool constructor to the registry.
func Register(name string, constructor func() *Pool) {
	registry[name] = constructor
}

// Get returns a fresh copy of a pool by name.
func Get(name string) (*Pool, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown pool: %s", name)
	}
	return ctor(), nil
}

// Names returns all registered pool names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for k := range registry {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Validate checks that every draw the pool can make is well defined.
func (p *Pool) Validate() error {
	if len(p.UnaryFuns) == 0 {
		return fmt.Errorf("pool %s: no unary functions", p.Name)
	}
	if len(p.Cardinalities) == 0 {
		return fmt.Errorf("pool %s: no subexpression cardinalities", p.Name)
	}
	for _, c := range p.Cardinalities {
		if c < 1 {
			return fmt.Errorf("pool %s: cardinality %d must be at least 1", p.Name, c)
		}
	}
	if len(p.Constants) == 0 {
		return fmt.Errorf("pool %s: no constants", p.Name)
	}
	if p.ProbLeafConstant < 0 || p.ProbLeafConstant > 1 {
		return fmt.Errorf("pool %s: leaf constant probability %g outside [0, 1]", p.Name, p.ProbLeafConstant)
	}
	return nil
}

// RandomConstant draws a constant from the literal list, resolving the
// RandomConstant sentinel to a uniform value in [-10, 10).
func (p *Pool) RandomConstant(rng *rand.Rand) *expr.Const {
	v := p.Constants[rng.Intn(len(p.Constants))]
	if IsRandomConstant(v) {
		v = -10.0 + 20.0*rng.Float64()
	}
	return &expr.Const{Val: v}
}

// RandomIdent picks one of the identifiers uniformly.
func (p *Pool) RandomIdent(rng *rand.Rand, identifiers []string) *expr.Ident {
	return &expr.Ident{Name: identifiers[rng.Intn(len(identifiers))]}
}

// RandomLeaf returns a constant with probability ProbLeafConstant, else an
// identifier.
func (p *Pool) RandomLeaf(rng *rand.Rand, identifiers []string) expr.Expr {
	if rng.Float64() <= p.ProbLeafConstant {
		return p.RandomConstant(rng)
	}
	return p.RandomIdent(rng, identifiers)
}

// RandomFunc picks a unary function from UnaryFuns.
func (p *Pool) RandomFunc(rng *rand.Rand) expr.Func {
	return p.UnaryFuns[rng.Intn(len(p.UnaryFuns))]
}

// RandomArity picks a Plus/Mult arity from Cardinalities.
func (p *Pool) RandomArity(rng *rand.Rand) int {
	return p.Cardinalities[rng.Intn(len(p.Cardinalities))]
}

type nodeKind int

const (
	kindPlus nodeKind = iota
	kindMult
	kindDiv
	kindMinus
	kindUnary
	numKinds
)

// RandomExpr builds a random tree of exactly the given depth along every
// path: internal nodes down to depth 1, leaves at depth 0.
func (p *Pool) RandomExpr(rng *rand.Rand, depth int, identifiers []string) expr.Expr {
	if depth <= 0 {
		return p.RandomLeaf(rng, identifiers)
	}
	switch nodeKind(rng.Intn(int(numKinds))) {
	case kindPlus:
		return &expr.Plus{Terms: p.randomChildren(rng, p.RandomArity(rng), depth-1, identifiers)}
	case kindMult:
		return &expr.Mult{Factors: p.randomChildren(rng, p.RandomArity(rng), depth-1, identifiers)}
	case kindDiv:
		left := p.RandomExpr(rng, depth-1, identifiers)
		right := p.RandomExpr(rng, depth-1, identifiers)
		return &expr.Div{Left: left, Right: right}
	case kindMinus:
		left := p.RandomExpr(rng, depth-1, identifiers)
		right := p.RandomExpr(rng, depth-1, identifiers)
		return &expr.Minus{Left: left, Right: right}
	default:
		arg := p.RandomExpr(rng, depth-1, identifiers)
		return &expr.UnaryFn{Fn: p.RandomFunc(rng), Arg: arg}
	}
}

func (p *Pool) randomChildren(rng *rand.Rand, n, depth int, identifiers []string) []expr.Expr {
	children := make([]expr.Expr, n)
	for i := range children {
		children[i] = p.RandomExpr(rng, depth, identifiers)
	}
	return children
}
