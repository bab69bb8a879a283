// File: api.go
// Role: Read-only summaries of a Graph.
package core

// GraphStats is a snapshot of a Graph's flags and sizes.
type GraphStats struct {
	AllowsMulti bool // parallel edges permitted
	AllowsLoops bool // self-loops permitted

	VertexCount int
	EdgeCount   int
	LoopCount   int // edges with From == To
}

// Stats returns a summary of g's configuration and sizes.
//
// Vertex data is read under muVert and edge data under muEdgeAdj, one phase
// after the other; the two locks are never held together here.
//
// Complexity: O(E).
func (g *Graph) Stats() *GraphStats {
	g.muVert.RLock()
	stats := GraphStats{
		AllowsMulti: g.allowMulti,
		AllowsLoops: g.allowLoops,
		VertexCount: len(g.vertices),
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	stats.EdgeCount = len(g.edges)
	for _, e := range g.edges {
		if e.From == e.To {
			stats.LoopCount++
		}
	}
	g.muEdgeAdj.RUnlock()

	return &stats
}
