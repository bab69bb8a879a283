// SPDX-License-Identifier: MIT
// Package: graphgen/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - All public factories are declared here, implemented in impl_*.go.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic at runtime; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphgen/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Respect core graph mode flags (loops/multigraph).
//   - Preserve determinism for the same config and call order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildGraph: %w" and
// returned immediately; no partial cleanup is attempted.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
//
// Errors:
//   - Wraps constructor errors via %w; callers branch with errors.Is
//     against builder sentinels (ErrTooFewVertices, ErrInvalidProbability, ...).
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// =============================================================================
// Topology factories (declarations) - implemented in impl_*.go
// =============================================================================
//
// Each factory returns a Constructor closure. The closure MUST:
//   - Add vertices via cfg.idFn.
//   - Emit edges in a stable, documented order.
//   - Return only sentinel errors; NEVER panic at runtime.
//
// Every factory below yields a connected graph and accepts n ≥ 1: the single
// isolated vertex is the connected graph on one node.

// Path builds a simple path P_n.
// Complexity: O(n) vertices + O(n-1) edges.
//func Path(n int) Constructor

// Star builds a star with hub idFn(0) and n-1 leaves.
// Complexity: O(n) vertices + O(n-1) edges.
//func Star(n int) Constructor

// Complete builds the complete simple graph K_n.
// Complexity: O(n) vertices + O(n^2) edges.
//func Complete(n int) Constructor

// RandomConnected builds a random recursive tree on n vertices and then adds
// each remaining pair with probability p. Requires a Drawer or an RNG.
// Complexity: O(n^2) draws. Deterministic per seed or replayed choices.
//func RandomConnected(n int, p float64) Constructor
