// SPDX-License-Identifier: MIT
// Package: graphgen/builder
//
// options.go - functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed, WithRand or WithDrawer.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/graphgen/draw"
)

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before graph construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the deterministic vertex ID generator: idx -> string.
// Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithDrawer routes every stochastic choice through d, so a recording
// draw.Source can replay or shrink the built topology. Overrides WithRand
// and WithSeed. Panics on nil.
func WithDrawer(d draw.Drawer) BuilderOption {
	if d == nil {
		panic("builder: WithDrawer(nil)")
	}
	return func(c *builderConfig) {
		c.drawer = d
	}
}
