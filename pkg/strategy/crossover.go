package strategy

import (
	"math/rand"

	"github.com/wildfunctions/symbolic_regression/pkg/expr"
)

// Crossover swaps one random child subtree between clones of a and b.
//
// An internal node is picked uniformly on each side, then a child slot
// uniformly within each, and the two children trade places. If either input
// is a leaf there is nothing to swap and a, b are returned as they are.
func Crossover(a, b expr.Expr, rng *rand.Rand) (expr.Expr, expr.Expr) {
	if a.IsLeaf() || b.IsLeaf() {
		return a, b
	}
	ca := a.Clone()
	cb := b.Clone()

	nodesA := expr.CollectInternal(ca)
	nodesB := expr.CollectInternal(cb)
	na := nodesA[rng.Intn(len(nodesA))]
	nb := nodesB[rng.Intn(len(nodesB))]

	slotA := rng.Intn(na.NumChildren())
	slotB := rng.Intn(nb.NumChildren())
	childA := na.Child(slotA)
	childB := nb.Child(slotB)

	na.SetChild(slotA, childB)
	nb.SetChild(slotB, childA)

	return ca, cb
}
