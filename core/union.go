// File: union.go
// Role: Disjoint union of two graphs.
//
// Determinism:
//   - Vertices of a are renumbered first, in lexicographic order of their old
//     IDs, then those of b; edges are replayed in edge-ID order, a before b.
package core

import (
	"fmt"
	"strconv"
)

// DisjointUnion returns a new Graph holding a copy of a and a copy of b side by
// side, with no edges between them. Vertices are renamed to the dense decimal
// range "0".."n-1" (a's first), so the operands' IDs never collide. The result
// permits loops or multi-edges if either operand does. Metadata maps are
// shared with the operands.
//
// Errors:
//   - ErrNilGraph: a or b is nil.
//
// Complexity: O(V log V + E log E).
func DisjointUnion(a, b *Graph) (*Graph, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("DisjointUnion: %w", ErrNilGraph)
	}

	var opts []GraphOption
	if a.Multigraph() || b.Multigraph() {
		opts = append(opts, WithMultiEdges())
	}
	if a.Looped() || b.Looped() {
		opts = append(opts, WithLoops())
	}
	out := NewGraph(opts...)

	next := 0
	for _, src := range []*Graph{a, b} {
		rename := make(map[string]string, src.VertexCount())
		for _, id := range src.Vertices() {
			nid := strconv.Itoa(next)
			next++
			rename[id] = nid
			if err := out.AddVertex(nid); err != nil {
				return nil, fmt.Errorf("DisjointUnion: %w", err)
			}
			if v := src.vertex(id); v != nil {
				out.vertices[nid].Metadata = v.Metadata
			}
		}
		for _, e := range src.Edges() {
			if _, err := out.AddEdge(rename[e.From], rename[e.To]); err != nil {
				return nil, fmt.Errorf("DisjointUnion: edge %s: %w", e.ID, err)
			}
		}
	}

	return out, nil
}

// vertex returns the stored Vertex for id, or nil.
func (g *Graph) vertex(id string) *Vertex {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.vertices[id]
}
