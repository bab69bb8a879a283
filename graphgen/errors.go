package graphgen

import "errors"

var (
	// ErrInvalidArgument indicates Constraints that can never produce a graph.
	ErrInvalidArgument = errors.New("graphgen: invalid argument")

	// ErrOverConstrained indicates a draw whose node count admits no
	// component count or partition under the constraints.
	ErrOverConstrained = errors.New("graphgen: over-constrained")

	// ErrBuilderContract indicates a ConnectedBuilder returned a graph with
	// the wrong number of vertices or more than one component.
	ErrBuilderContract = errors.New("graphgen: connected builder broke its contract")
)
