// Package mission runs a route search over a height field: it turns the
// field into a graph with a named cost function, finds the cheapest route
// from a source cell to a target cell with the chosen strategy, and plots
// that route onto a copy of the field.
//
// Strategies:
//
//   - "dijkstra":       single-source label-setting search (dijkstra package).
//   - "floyd-warshall": all-pairs dynamic program (floydwarshall package),
//     exact with negative weights, O(V³).
//
// Dijkstra combined with a cost function that can go negative (for example
// "climb-descend") is allowed and logged as a warning; the route is
// deterministic but may cost more than the true optimum.
//
// RunAll executes several missions concurrently on the same read-only height
// field and returns their reports in input order.
package mission
