// Package core_test provides benchmarks for core.Graph operations.
package core_test

import (
	"testing"
)

// BenchmarkAddEdge measures appending edges to a single hub vertex.
func BenchmarkAddEdge(b *testing.B) {
	const n = 1024
	g := MustGraph(b, n)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.AddEdge(0, i%n, int64(i))
	}
}

// BenchmarkEdgesFrom measures a full iteration over a vertex with 64 edges.
func BenchmarkEdgesFrom(b *testing.B) {
	const n = 64
	g := MustGraph(b, n)
	for v := 0; v < n; v++ {
		MustEdge(b, g, 0, v, int64(v))
	}
	b.ReportAllocs()
	b.ResetTimer()
	var sum int64
	for i := 0; i < b.N; i++ {
		for e := range g.EdgesFrom(0) {
			sum += e.Weight
		}
	}
	_ = sum
}
