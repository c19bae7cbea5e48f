package floydwarshall_test

import (
	"math/rand"
	"testing"

	"github.com/sheabunge/terrainpath/floydwarshall"
)

// BenchmarkFloydWarshall measures the closure on a sparse 256-vertex graph.
func BenchmarkFloydWarshall(b *testing.B) {
	g := randomGraph(b, rand.New(rand.NewSource(1)), 256, 1024, 0, 100)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := floydwarshall.FloydWarshall(g); err != nil {
			b.Fatal(err)
		}
	}
}
