// Package bfs provides breadth-first search over a core.Graph and the
// connected-component queries built on it.
//
// BFS explores vertices in non-decreasing distance (edge count) from a start
// vertex and returns a Result (Order, Depth). WithOnVisit observes each
// visit and may abort the walk by returning an error.
//
// Components and ComponentSizes sweep the whole graph with one shared
// visited set: each BFS starts at the smallest vertex not yet reached and
// collects its members through WithOnVisit.
//
// Determinism
//
//	core.Graph.NeighborIDs returns neighbors sorted by ID and BFS enqueues
//	them in that order, so the visit sequence is reproducible. Components are
//	ordered by their smallest member, members sorted.
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrNeighbors            if neighbor lookup fails for any vertex.
//   - Wrapped errors returned from OnVisit.
package bfs
