// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs sorted lexicographically ascending.
//
// Concurrency:
//   - Vertex catalog protected by muVert.
//   - Adjacency bootstrap under muEdgeAdj (lock order muVert -> muEdgeAdj).
package core

import "sort"

// AddVertex inserts a vertex if missing (idempotent).
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()
	if _, exists := g.vertices[id]; exists {
		return nil
	}
	g.vertices[id] = &Vertex{ID: id, Metadata: make(map[string]interface{})}

	g.muEdgeAdj.Lock()
	if g.adjacency[id] == nil {
		g.adjacency[id] = make(map[string]map[string]struct{})
	}
	g.muEdgeAdj.Unlock()

	return nil
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertices returns all vertex IDs sorted lexicographically.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	g.muVert.RUnlock()
	sort.Strings(ids)

	return ids
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// NeighborIDs returns the unique neighbors of id, sorted lexicographically.
// A self-loop lists id among its own neighbors.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	if !g.HasVertex(id) {
		return nil, ErrVertexNotFound
	}

	g.muEdgeAdj.RLock()
	out := make([]string, 0, len(g.adjacency[id]))
	for nbr, ids := range g.adjacency[id] {
		if len(ids) > 0 {
			out = append(out, nbr)
		}
	}
	g.muEdgeAdj.RUnlock()
	sort.Strings(out)

	return out, nil
}
