// File: methods_edges.go
// Role: Edge insertion & queries.
//
// Determinism:
//   - Edge IDs are "e1", "e2", … in insertion order; Edges() sorts by that number.
//
// Concurrency:
//   - AddEdge takes muVert then muEdgeAdj; readers take muEdgeAdj only.
package core

import (
	"fmt"
	"sort"
	"strconv"
	"sync/atomic"
)

// AddEdge connects from and to with an undirected edge and returns its ID.
// Missing endpoints are created.
//
// Errors:
//   - ErrEmptyVertexID: either endpoint is empty.
//   - ErrLoopNotAllowed: from == to without WithLoops.
//   - ErrMultiEdgeNotAllowed: the pair is already connected without WithMultiEdges.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if from == to && !g.allowLoops {
		return "", fmt.Errorf("AddEdge(%q, %q): %w", from, to, ErrLoopNotAllowed)
	}
	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	if !g.allowMulti && len(g.adjacency[from][to]) > 0 {
		return "", fmt.Errorf("AddEdge(%q, %q): %w", from, to, ErrMultiEdgeNotAllowed)
	}

	eid := "e" + strconv.FormatUint(atomic.AddUint64(&g.nextEdgeID, 1), 10)
	g.edges[eid] = &Edge{ID: eid, From: from, To: to}
	g.link(from, to, eid)

	return eid, nil
}

// link records eid in both adjacency directions. Caller holds muEdgeAdj.
func (g *Graph) link(from, to, eid string) {
	if g.adjacency[from] == nil {
		g.adjacency[from] = make(map[string]map[string]struct{})
	}
	if g.adjacency[from][to] == nil {
		g.adjacency[from][to] = make(map[string]struct{})
	}
	g.adjacency[from][to][eid] = struct{}{}

	if g.adjacency[to] == nil {
		g.adjacency[to] = make(map[string]map[string]struct{})
	}
	if g.adjacency[to][from] == nil {
		g.adjacency[to][from] = make(map[string]struct{})
	}
	g.adjacency[to][from][eid] = struct{}{}
}

// HasEdge reports whether at least one edge joins from and to.
func (g *Graph) HasEdge(from, to string) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacency[from][to]) > 0
}

// Edges returns a snapshot of all edges sorted by numeric edge ID.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, &Edge{ID: e.ID, From: e.From, To: e.To})
	}
	g.muEdgeAdj.RUnlock()
	sort.Slice(out, func(i, j int) bool { return edgeSeq(out[i].ID) < edgeSeq(out[j].ID) })

	return out
}

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// edgeSeq extracts the counter from an "eN" edge ID.
func edgeSeq(id string) uint64 {
	n, err := strconv.ParseUint(id[1:], 10, 64)
	if err != nil {
		return 0
	}

	return n
}
