// SPDX-License-Identifier: MIT
// Package: graphgen/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices); n == 1 is a lone vertex.
//   - Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   - Emits edges (i-1)–i for i=1..n-1 in stable increasing order.
//
// Complexity:
//   - Time: O(n) vertices + O(n-1) edges.

package builder

import "github.com/katalvlaran/graphgen/core"

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodPath, n, MinConnectedNodes); err != nil {
			return err
		}
		ids, err := addVertices(MethodPath, g, n, cfg.idFn)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err = addEdge(MethodPath, g, ids[i-1], ids[i]); err != nil {
				return err
			}
		}

		return nil
	}
}
