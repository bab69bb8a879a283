// SPDX-License-Identifier: MIT
// Package: graphgen/builder
//
// errors.go - sentinel errors for builder constructors.
//
// Constructors wrap these with "%s: ...: %w" (method tag first) so callers
// can branch with errors.Is regardless of context.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the constructor minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates p outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor with neither a Drawer nor an RNG.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a construction failure not covered above
// (nil constructor, draw failure).
var ErrConstructFailed = errors.New("builder: construction failed")
