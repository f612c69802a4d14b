package strategy

import (
	"math/rand"

	"github.com/wildfunctions/symbolic_regression/pkg/expr"
	"github.com/wildfunctions/symbolic_regression/pkg/pool"
)

// MutationType identifies which branch a mutation took.
type MutationType int

const (
	MutNone    MutationType = iota // leaf input, returned unchanged
	MutHoist                       // the chosen subtree replaces the whole tree
	MutGrow                        // the chosen subtree is wrapped in a new node
	MutSubtree                     // one child of the chosen subtree is regrown
)

// Mutate perturbs a clone of e around one uniformly chosen internal node S.
//
// The result is always rooted at S, not at e's root: a hoist returns S
// itself, a grow returns S wrapped in a new node, and a subtree mutation
// returns S with one child regrown. A leaf has no internal node and comes
// back as an unchanged clone.
func Mutate(e expr.Expr, identifiers []string, p *pool.Pool, params Params, rng *rand.Rand) expr.Expr {
	out, _ := mutate(e, identifiers, p, params, rng)
	return out
}

func mutate(e expr.Expr, identifiers []string, p *pool.Pool, params Params, rng *rand.Rand) (expr.Expr, MutationType) {
	root := e.Clone()
	nodes := expr.CollectInternal(root)
	if len(nodes) == 0 {
		return root, MutNone
	}
	target := nodes[rng.Intn(len(nodes))]

	// Two independent draws: the branch probabilities do not partition [0, 1).
	if rng.Float64() <= params.ReplaceBySubexpr {
		return target, MutHoist
	}
	if rng.Float64() <= params.GrowSubexpr {
		return situate(target, identifiers, p, params.Depth, rng), MutGrow
	}

	slot := rng.Intn(target.NumChildren())
	target.SetChild(slot, p.RandomExpr(rng, target.Depth()-1, identifiers))
	return target, MutSubtree
}

// situate embeds e in a freshly generated context: with probability 0.8 a
// binary combination with a random sibling of the given depth (split evenly
// across Plus, Minus, Div and Mult), otherwise a random unary function.
func situate(e expr.Expr, identifiers []string, p *pool.Pool, depth int, rng *rand.Rand) expr.Expr {
	u := rng.Float64()
	if u > 0.8 {
		return &expr.UnaryFn{Fn: p.RandomFunc(rng), Arg: e}
	}
	sibling := p.RandomExpr(rng, depth, identifiers)
	switch {
	case u <= 0.2:
		return &expr.Plus{Terms: []expr.Expr{e, sibling}}
	case u <= 0.4:
		return &expr.Minus{Left: e, Right: sibling}
	case u <= 0.6:
		return &expr.Div{Left: e, Right: sibling}
	default:
		return &expr.Mult{Factors: []expr.Expr{e, sibling}}
	}
}
