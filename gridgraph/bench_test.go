package gridgraph_test

import (
	"testing"

	"github.com/katalvlaran/frontier/gridgraph"
)

// BenchmarkHasAdjacentUnknown scans every cell of a half-observed 512×512 map.
func BenchmarkHasAdjacentUnknown(b *testing.B) {
	const n = 512
	g, err := gridgraph.NewGrid(n)
	if err != nil {
		b.Fatalf("setup NewGrid failed: %v", err)
	}
	for r := 0; r < n; r += 2 {
		for c := 0; c < n; c++ {
			_ = g.Mark(gridgraph.Cell{Row: r, Col: c}, gridgraph.Free)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for r := 0; r < n; r++ {
			for c := 0; c < n; c++ {
				_ = g.HasAdjacentUnknown(gridgraph.Cell{Row: r, Col: c})
			}
		}
	}
}

// BenchmarkAddEdge grows the 8-connected lattice graph of a 256×256 map.
func BenchmarkAddEdge(b *testing.B) {
	const n = 256
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		g, _ := gridgraph.NewGraph(n * n)
		for r := 0; r < n; r++ {
			for c := 0; c < n; c++ {
				u := gridgraph.Cell{Row: r, Col: c}
				for _, d := range gridgraph.Conn8 {
					v := u.Add(d[0], d[1])
					if v.Row < 0 || v.Row >= n || v.Col < 0 || v.Col >= n {
						continue
					}
					_, _ = g.AddEdge(u.Vertex(n), v.Vertex(n))
				}
			}
		}
	}
}
