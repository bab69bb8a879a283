// SPDX-License-Identifier: MIT
// Package: graphgen/builder
//
// impl_cycle.go - implementation of Cycle(n) and Wheel(n) constructors.
//
// Contract:
//   - Cycle: n ≥ 3 (else ErrTooFewVertices); edges i–(i+1)%n for i=0..n-1.
//   - Wheel: n ≥ 4; ring C_{n-1} on idFn(0..n-2), hub idFn(n-1), spokes in
//     ring order.
//
// Complexity:
//   - Time: O(n) vertices + O(n) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphgen/core"
)

// Cycle returns a Constructor that builds the simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodCycle, n, MinCycleNodes); err != nil {
			return err
		}
		ids, err := addVertices(MethodCycle, g, n, cfg.idFn)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err = addEdge(MethodCycle, g, ids[i], ids[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Wheel returns a Constructor that builds W_n: a ring of n-1 vertices plus
// a hub adjacent to every ring vertex.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodWheel, n, MinWheelNodes); err != nil {
			return err
		}
		if err := Cycle(n-1)(g, cfg); err != nil {
			return fmt.Errorf("%s: ring C_%d: %w", MethodWheel, n-1, err)
		}
		hub := cfg.idFn(n - 1)
		if err := g.AddVertex(hub); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", MethodWheel, hub, err)
		}
		for i := 0; i < n-1; i++ {
			if err := addEdge(MethodWheel, g, hub, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
