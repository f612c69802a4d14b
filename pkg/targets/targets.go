// Package targets is a registry of one-dimensional functions to regress
// against when no data file is given.
package targets

import (
	"fmt"
	"math"
	"sort"
)

// Target is a named ground-truth function with the input range it is
// usually sampled on.
type Target struct {
	Name        string
	Description string
	F           func(x float64) float64
	Lo, Hi      float64
}

var registry = map[string]Target{}

// Register adds a target to the registry.
func Register(t Target) {
	registry[t.Name] = t
}

// Get returns a target by name.
func Get(name string) (Target, error) {
	t, ok := registry[name]
	if !ok {
		return Target{}, fmt.Errorf("unknown target: %s (available: %v)", name, Names())
	}
	return t, nil
}

// Names returns all registered target names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for k := range registry {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func init() {
	Register(Target{
		Name:        "original",
		Description: "0.2*exp(x/4) - sin(2x)",
		F:           func(x float64) float64 { return 0.2*math.Exp(x/4) - math.Sin(2*x) },
		Lo:          -10,
		Hi:          10,
	})
	Register(Target{
		Name:        "quadratic",
		Description: "x^2 + x - 1",
		F:           func(x float64) float64 { return x*x + x - 1 },
		Lo:          -3,
		Hi:          3,
	})
	Register(Target{
		Name:        "sine",
		Description: "sin(x) + 0.5x",
		F:           func(x float64) float64 { return math.Sin(x) + 0.5*x },
		Lo:          -2 * math.Pi,
		Hi:          2 * math.Pi,
	})
	Register(Target{
		Name:        "rational",
		Description: "1 / (1 + x^2)",
		F:           func(x float64) float64 { return 1 / (1 + x*x) },
		Lo:          -4,
		Hi:          4,
	})
	Register(Target{
		Name:        "exp",
		Description: "exp(-x/2) * cos(x)",
		F:           func(x float64) float64 { return math.Exp(-x/2) * math.Cos(x) },
		Lo:          0,
		Hi:          6,
	})
}
