// SPDX-License-Identifier: MIT
// Package: graphgen/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Hub is idFn(0); leaves are idFn(1..n-1) in ascending order.
//   - Emits spokes hub–leaf[i] in stable order.
//
// Complexity:
//   - Time: O(n) vertices + O(n-1) edges.

package builder

import "github.com/katalvlaran/graphgen/core"

// Star returns a Constructor that builds a star topology with n vertices:
// one hub and n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodStar, n, MinConnectedNodes); err != nil {
			return err
		}
		ids, err := addVertices(MethodStar, g, n, cfg.idFn)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err = addEdge(MethodStar, g, ids[0], ids[i]); err != nil {
				return err
			}
		}

		return nil
	}
}
