package bfs

import "errors"

// Sentinel errors for traversals.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrNeighbors is returned when fetching neighbors from the graph fails.
	ErrNeighbors = errors.New("bfs: neighbor iteration error")
)

// Option configures one traversal.
type Option func(*options)

type options struct {
	onVisit func(id string, depth int) error
}

func newOptions(opts []Option) options {
	o := options{onVisit: func(string, int) error { return nil }}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithOnVisit registers a callback run for every visited vertex with its
// distance from the start. Returning an error stops the traversal.
// A nil fn is ignored.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *options) {
		if fn != nil {
			o.onVisit = fn
		}
	}
}

// Result is the outcome of one traversal.
type Result struct {
	// Order lists visited vertices in visit sequence.
	Order []string
	// Depth maps each visited vertex to its distance in edges from the start.
	Depth map[string]int
}
