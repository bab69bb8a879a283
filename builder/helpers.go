// SPDX-License-Identifier: MIT
// Package: graphgen/builder
//
// helpers.go - small internal routines shared by constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphgen/core"
)

// addVertices inserts idFn(0..n-1) in ascending index order and returns the IDs.
// Complexity: O(n).
func addVertices(method string, g *core.Graph, n int, idFn IDFn) ([]string, error) {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = idFn(i)
		if err := g.AddVertex(ids[i]); err != nil {
			return nil, fmt.Errorf("%s: AddVertex(%s): %w", method, ids[i], err)
		}
	}

	return ids, nil
}

// addEdge inserts u–v with method context on failure.
func addEdge(method string, g *core.Graph, u, v string) error {
	if _, err := g.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: AddEdge(%s–%s): %w", method, u, v, err)
	}

	return nil
}
