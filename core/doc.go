// Package core provides the thread-safe in-memory Graph that generators build
// and tests inspect.
//
// The Graph G = (V,E) is undirected. By default it is simple: no self-loops
// and no parallel edges. Both can be enabled at construction time:
//
//   - WithLoops()      permits AddEdge(v, v)
//   - WithMultiEdges() permits several edges between the same endpoints
//
// Adjacency is stored as nested maps, adjacency[u][v][edgeID] = struct{}{},
// mirrored for both endpoints, so membership, insertion and neighbor lookups
// are O(1) amortized. Vertices and edges+adjacency are guarded by separate
// sync.RWMutex locks (muVert, then muEdgeAdj; never the reverse).
//
// Deterministic iteration:
//
//	Vertices()      sorted lexicographically
//	Edges()         sorted by numeric edge ID ("e1", "e2", …)
//	NeighborIDs(v)  unique, sorted lexicographically
//
// Composition:
//
//	DisjointUnion(a, b)   both operands side by side, renumbered "0".."n-1"
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex
//	ErrLoopNotAllowed      – self-loop when loops are disabled
//	ErrMultiEdgeNotAllowed – parallel edge when multi-edges are disabled
//	ErrNilGraph            – nil *Graph passed to a package function
package core
