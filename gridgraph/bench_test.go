package gridgraph_test

import (
	"testing"

	"github.com/katalvlaran/algolab/gridgraph"
)

// BenchmarkCountPathsDynamic measures the DP counter on a seeded 30×30 grid
// with 25% hazards.
// Complexity: O(R×C)
func BenchmarkCountPathsDynamic(b *testing.B) {
	g, err := gridgraph.Random(30, 30, gridgraph.WithSeed(42))
	if err != nil {
		b.Fatalf("setup Random failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = gridgraph.CountPathsDynamic(g)
	}
}

// BenchmarkCountPathsExhaustive measures bitmask enumeration on a seeded
// 8×8 grid (14 steps, 16384 candidates).
// Complexity: O(2^s·s)
func BenchmarkCountPathsExhaustive(b *testing.B) {
	g, err := gridgraph.Random(8, 8, gridgraph.WithSeed(42))
	if err != nil {
		b.Fatalf("setup Random failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = gridgraph.CountPathsExhaustive(g)
	}
}
