package strategy

import (
	"math"
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/wildfunctions/symbolic_regression/pkg/fitness"
)

// selectionWeights returns exp(f / temperature) for each individual, shifted
// by the best fitness so the fittest weighs exactly 1. The shift leaves the
// sampling distribution unchanged but keeps very negative fitnesses from
// underflowing every weight to zero. Worst fitness gets weight 0.
func selectionWeights(pop []fitness.Individual, temperature float64) []float64 {
	w := fitness.Fitnesses(pop)
	if len(w) == 0 {
		return w
	}
	best := floats.Max(w)
	if math.IsInf(best, -1) {
		for i := range w {
			w[i] = 1
		}
		return w
	}
	for i := range w {
		if math.IsInf(w[i], -1) {
			w[i] = 0
			continue
		}
		w[i] = math.Exp((w[i] - best) / temperature)
	}
	return w
}

// weightedSampler draws indices with probability proportional to weight,
// with replacement.
type weightedSampler struct {
	cum []float64
}

func newWeightedSampler(weights []float64) *weightedSampler {
	return &weightedSampler{cum: floats.CumSum(make([]float64, len(weights)), weights)}
}

func (ws *weightedSampler) draw(rng *rand.Rand) int {
	n := len(ws.cum)
	total := ws.cum[n-1]
	if !(total > 0) || math.IsInf(total, 1) {
		return rng.Intn(n)
	}
	u := rng.Float64() * total
	i := sort.Search(n, func(i int) bool { return ws.cum[i] > u })
	if i == n {
		i = n - 1
	}
	return i
}

// eliteCount is floor(fraction * n).
func eliteCount(n int, fraction float64) int {
	k := int(fraction * float64(n))
	if k > n {
		k = n
	}
	if k < 0 {
		k = 0
	}
	return k
}
