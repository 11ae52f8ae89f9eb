package gridgraph_test

import (
	"testing"

	"golang.org/x/exp/rand"

	"github.com/katalvlaran/minegrid/gridgraph"
)

// BenchmarkConnectedComponents measures performance of ConnectedComponents
// on a randomly marked 1000×1000 grid (about one cell in five marked).
// Complexity: O(W×H×d)
func BenchmarkConnectedComponents(b *testing.B) {
	const n = 1000
	r := rand.New(rand.NewSource(42))
	marked := make([]bool, n*n)
	for i := range marked {
		marked[i] = r.Intn(5) == 0
	}
	g, err := gridgraph.Square(n, gridgraph.DefaultGridOptions())
	if err != nil {
		b.Fatalf("setup Square failed: %v", err)
	}
	member := func(p gridgraph.Pos) bool { return marked[g.Index(p)] }

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.ConnectedComponents(member)
	}
}

// BenchmarkNeighbors measures bounds-clipped neighbor enumeration across a 100×100 grid.
func BenchmarkNeighbors(b *testing.B) {
	g, err := gridgraph.Square(100, gridgraph.DefaultGridOptions())
	if err != nil {
		b.Fatalf("setup Square failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Neighbors(g.Coordinate(i % g.Area()))
	}
}
