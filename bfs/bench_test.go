package bfs_test

import (
	"strconv"
	"testing"

	"github.com/katalvlaran/graphgen/bfs"
	"github.com/katalvlaran/graphgen/core"
)

// BenchmarkBFS_Chain measures BFS on a linear chain graph.
func BenchmarkBFS_Chain(b *testing.B) {
	g := chain(b, 10000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, "v0")
	}
}

// BenchmarkComponentSizes measures component discovery over many small components.
func BenchmarkComponentSizes(b *testing.B) {
	g := core.NewGraph()
	for i := 0; i < 3000; i++ {
		base := strconv.Itoa(i)
		_, _ = g.AddEdge(base+"a", base+"b")
		_, _ = g.AddEdge(base+"b", base+"c")
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.ComponentSizes(g)
	}
}
