// SPDX-License-Identifier: MIT
// Package: graphgen/builder
//
// impl_random_connected.go - implementation of RandomConnected(n, p) constructor.
//
// Model:
//   - Random recursive tree: vertex i (i ≥ 1) attaches to an earlier vertex
//     chosen uniformly with Index(i). The result is a spanning tree.
//   - Extra edges: every unordered pair {i,j}, i<j, not already in the tree is
//     added independently with probability p.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - A Drawer (WithDrawer) or an RNG (WithSeed/WithRand) is required
//     (else ErrNeedRandSource), even when n == 1.
//
// Shrinking:
//   - Zero offsets attach every vertex to vertex 0 and skip every extra edge,
//     so a minimized choice sequence yields a star.
//
// Determinism:
//   - Stable trial order: tree parents for i asc, then pairs i asc, j asc.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/graphgen/core"
)

// RandomConnected returns a Constructor that samples a connected graph on n
// vertices: a random spanning tree plus independent extra edges.
func RandomConnected(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodRandomConnected, n, MinConnectedNodes); err != nil {
			return err
		}
		if err := validateProbability(MethodRandomConnected, p); err != nil {
			return err
		}
		d := cfg.source()
		if d == nil {
			return fmt.Errorf("%s: %w", MethodRandomConnected, ErrNeedRandSource)
		}

		ids, err := addVertices(MethodRandomConnected, g, n, cfg.idFn)
		if err != nil {
			return err
		}

		for i := 1; i < n; i++ {
			parent, err := d.Index(i)
			if err != nil {
				return fmt.Errorf("%s: parent of %s: %v: %w", MethodRandomConnected, ids[i], err, ErrConstructFailed)
			}
			if err = addEdge(MethodRandomConnected, g, ids[parent], ids[i]); err != nil {
				return err
			}
		}

		// Outcomes in [ProbabilityResolution-hits, ProbabilityResolution) add
		// the edge, so the zero offset always means "no edge".
		hits := int(math.Round(p * ProbabilityResolution))
		if hits == 0 {
			return nil
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if g.HasEdge(ids[i], ids[j]) {
					continue
				}
				v, err := d.IntRange(0, ProbabilityResolution-1)
				if err != nil {
					return fmt.Errorf("%s: trial %s–%s: %v: %w", MethodRandomConnected, ids[i], ids[j], err, ErrConstructFailed)
				}
				if v < ProbabilityResolution-hits {
					continue
				}
				if err = addEdge(MethodRandomConnected, g, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
