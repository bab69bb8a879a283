// SPDX-License-Identifier: MIT
// Package: graphgen/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Adds vertices via cfg.idFn in ascending index order.
//   - Emits each unordered pair {i,j}, i<j, in lexicographic index order.
//
// Complexity:
//   - Time: O(n) vertices + O(n(n-1)/2) edges.

package builder

import "github.com/katalvlaran/graphgen/core"

// Complete returns a Constructor that builds the complete simple graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodComplete, n, MinConnectedNodes); err != nil {
			return err
		}
		ids, err := addVertices(MethodComplete, g, n, cfg.idFn)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err = addEdge(MethodComplete, g, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
