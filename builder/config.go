// SPDX-License-Identifier: MIT
// Package: graphgen/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • idFn    = DefaultIDFn   ("0","1","2",...)
//   • rng     = nil           (pure/deterministic unless seeded)
//   • drawer  = nil           (stochastic builders fall back to rng)

package builder

import (
	"math/rand"

	"github.com/katalvlaran/graphgen/draw"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Vertex ID strategy: index -> ID (deterministic).
	idFn IDFn
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Drawer for stochastic choices; takes precedence over rng.
	drawer draw.Drawer
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{idFn: DefaultIDFn}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// source returns the Drawer stochastic constructors consume: the configured
// drawer, else a Source over rng, else nil.
func (c builderConfig) source() draw.Drawer {
	switch {
	case c.drawer != nil:
		return c.drawer
	case c.rng != nil:
		return draw.NewSource(c.rng)
	default:
		return nil
	}
}
