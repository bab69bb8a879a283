package bfs

import (
	"fmt"

	"github.com/katalvlaran/graphgen/core"
)

// queueItem pairs a vertex ID with its BFS depth.
type queueItem struct {
	id    string
	depth int
}

// walker holds the visited set shared by every traversal it runs, so a sweep
// over many start vertices touches each vertex and edge once.
type walker struct {
	graph   *core.Graph
	visited map[string]bool
	queue   []queueItem
}

func newWalker(g *core.Graph) *walker {
	return &walker{graph: g, visited: make(map[string]bool, g.VertexCount())}
}

// BFS runs breadth-first search on g from startID.
//
// Errors: ErrGraphNil, ErrStartVertexNotFound, ErrNeighbors, or the error
// returned by a WithOnVisit callback, wrapped. On a callback error the
// partial Result is returned alongside it.
func BFS(g *core.Graph, startID string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	return newWalker(g).run(startID, opts...)
}

// run explores every vertex reachable from start that no earlier run of w
// has visited.
func (w *walker) run(start string, opts ...Option) (*Result, error) {
	o := newOptions(opts)
	res := &Result{Depth: make(map[string]int)}

	w.visited[start] = true
	w.queue = append(w.queue[:0], queueItem{id: start})
	for head := 0; head < len(w.queue); head++ {
		item := w.queue[head]
		res.Order = append(res.Order, item.id)
		res.Depth[item.id] = item.depth
		if err := o.onVisit(item.id, item.depth); err != nil {
			return res, fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
		}

		neighbors, err := w.graph.NeighborIDs(item.id)
		if err != nil {
			return res, fmt.Errorf("%w: failed to get neighbors of %q: %v", ErrNeighbors, item.id, err)
		}
		for _, nbr := range neighbors {
			if !w.visited[nbr] {
				w.visited[nbr] = true
				w.queue = append(w.queue, queueItem{id: nbr, depth: item.depth + 1})
			}
		}
	}

	return res, nil
}
