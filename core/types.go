// Package core defines the central Graph, Vertex and Edge types and the
// sentinel errors shared by every graph operation.
//
// All core APIs use separate sync.RWMutex locks internally (muVert for vertices,
// muEdgeAdj for edges and adjacency), so graphs can be read from several
// goroutines while a single writer mutates them.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")


	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrNilGraph indicates a nil *Graph was passed to a package-level function.
	ErrNilGraph = errors.New("core: graph is nil")
)

// Vertex represents a node in the graph.
//
// Metadata stores arbitrary key-value data and is shared on shallow copies.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Metadata stores arbitrary user data. DisjointUnion shares it, it is not deep-copied.
	Metadata map[string]interface{}
}

// Edge is an undirected connection between two vertices.
// From and To record insertion order only; the edge is traversable both ways.
type Edge struct {
	ID   string
	From string
	To   string
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is the core in-memory undirected graph.
//
// muVert protects vertices; muEdgeAdj protects edges and adjacency.
// nextEdgeID is an atomic counter for unique Edge.ID generation.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards edges and adjacency

	allowMulti bool // allow parallel edges
	allowLoops bool // allow self-loops

	nextEdgeID uint64             // atomic edge ID generator
	vertices   map[string]*Vertex // vertex ID → Vertex
	edges      map[string]*Edge   // edge ID → Edge

	// adjacency[u][v][edgeID] = struct{}{}, mirrored for v→u.
	adjacency map[string]map[string]map[string]struct{}
}

// NewGraph creates an empty simple Graph and applies opts in order.
// Complexity: O(len(opts)).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]*Vertex),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string]map[string]map[string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowLoops
}

// Multigraph reports whether parallel edges are permitted.
func (g *Graph) Multigraph() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowMulti
}

// options reproduces g's construction flags.
func (g *Graph) options() []GraphOption {
	var opts []GraphOption
	if g.allowMulti {
		opts = append(opts, WithMultiEdges())
	}
	if g.allowLoops {
		opts = append(opts, WithLoops())
	}

	return opts
}
