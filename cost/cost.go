// Package cost maps the elevation change of a single grid move to an edge
// weight. Functions are selected by name from configuration.
package cost

import (
	"errors"
	"fmt"
	"slices"
)

// ErrUnknownCost indicates Lookup was given a name with no registered Func.
var ErrUnknownCost = errors.New("cost: unknown cost function")

// Func returns the weight of a move whose destination is delta units higher
// than its origin (negative delta means downhill).
type Func func(delta int) int64

// Climb charges 1 + delta² for uphill moves and 1 for level or downhill ones.
// It never returns a negative weight.
func Climb(delta int) int64 {
	if delta > 0 {
		d := int64(delta)
		return 1 + d*d
	}

	return 1
}

// ClimbDescend charges 1 + delta² uphill and 1 + delta downhill, so steep
// descents earn energy back and yield negative weights.
func ClimbDescend(delta int) int64 {
	d := int64(delta)
	if d > 0 {
		return 1 + d*d
	}

	return 1 + d
}

// Flat ignores elevation entirely.
func Flat(int) int64 { return 1 }

var registry = map[string]Func{
	"climb":         Climb,
	"climb-descend": ClimbDescend,
	"flat":          Flat,
}

// Lookup returns the Func registered under name.
func Lookup(name string) (Func, error) {
	fn, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (want one of %v)", ErrUnknownCost, name, Names())
	}

	return fn, nil
}

// Names returns the registered names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}

// NonNegative reports whether the Func registered under name never returns
// a negative weight.
func NonNegative(name string) bool {
	return name == "climb" || name == "flat"
}
