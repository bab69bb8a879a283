// Package draw defines the random-choice capability that generators consume,
// and a recording implementation that supports deterministic replay.
//
// Every decision a generator makes goes through a Drawer. Source records each
// decision as an offset from the smallest admissible value, so a recorded
// choice sequence of all zeros always describes the simplest possible draw:
// lowest integers, first elements of every choice list. Shrinking a random
// input is then a matter of replaying smaller choice sequences (see Shrinks).
package draw

import (
	"errors"
	"fmt"
	"math/rand"
)

// Sentinel errors for draws.
var (
	// ErrEmptyRange indicates IntRange(lo, hi) with lo > hi.
	ErrEmptyRange = errors.New("draw: empty integer range")

	// ErrNoChoices indicates Index(n) with n < 1.
	ErrNoChoices = errors.New("draw: nothing to choose from")
)

// Drawer is a source of discrete random choices.
//
// Implementations shrink toward smaller integers and earlier indexes: the
// zero offset is the value a minimizing search prefers.
type Drawer interface {
	// IntRange returns an integer uniformly drawn from [lo, hi].
	IntRange(lo, hi int) (int, error)
	// Index returns an index uniformly drawn from [0, n).
	Index(n int) (int, error)
}

// Source is a recording Drawer. It first replays a fixed prefix of offsets
// and then draws from its RNG; every offset it hands out is recorded.
// A Source is not safe for concurrent use.
type Source struct {
	rng     *rand.Rand
	prefix  []int
	pos     int
	choices []int
}

// NewSource returns a Source drawing from rng. Panics on nil.
func NewSource(rng *rand.Rand) *Source {
	if rng == nil {
		panic("draw: NewSource(nil)")
	}
	return &Source{rng: rng}
}

// NewSeeded returns a Source over a fresh RNG seeded with seed.
func NewSeeded(seed int64) *Source {
	return NewSource(rand.New(rand.NewSource(seed)))
}

// Replay returns a Source that reproduces choices and then continues with
// rng. With a nil rng every draw past the prefix takes the zero offset.
// Offsets larger than a range allows are clamped to its upper end.
func Replay(choices []int, rng *rand.Rand) *Source {
	prefix := make([]int, len(choices))
	copy(prefix, choices)

	return &Source{rng: rng, prefix: prefix}
}

// IntRange implements Drawer.
func (s *Source) IntRange(lo, hi int) (int, error) {
	if lo > hi {
		return 0, fmt.Errorf("IntRange(%d, %d): %w", lo, hi, ErrEmptyRange)
	}

	return lo + s.next(hi-lo), nil
}

// Index implements Drawer.
func (s *Source) Index(n int) (int, error) {
	if n < 1 {
		return 0, fmt.Errorf("Index(%d): %w", n, ErrNoChoices)
	}

	return s.next(n - 1), nil
}

// next produces an offset in [0, span] and records it.
func (s *Source) next(span int) int {
	var off int
	switch {
	case s.pos < len(s.prefix):
		off = s.prefix[s.pos]
		if off < 0 {
			off = 0
		}
		if off > span {
			off = span
		}
	case s.rng != nil && span > 0:
		off = s.rng.Intn(span + 1)
	}
	s.pos++
	s.choices = append(s.choices, off)

	return off
}

// Choices returns a copy of the offsets handed out so far.
func (s *Source) Choices() []int {
	out := make([]int, len(s.choices))
	copy(out, s.choices)

	return out
}
