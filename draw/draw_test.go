package draw_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphgen/draw"
)

func TestSource_IntRangeWithinBounds(t *testing.T) {
	s := draw.NewSeeded(42)
	for i := 0; i < 500; i++ {
		v, err := s.IntRange(-3, 7)
		require.NoError(t, err)
		require.GreaterOrEqual(t, v, -3)
		require.LessOrEqual(t, v, 7)
	}
	require.Len(t, s.Choices(), 500)
}

func TestSource_DegenerateRangeRecordsZero(t *testing.T) {
	s := draw.NewSeeded(1)
	v, err := s.IntRange(5, 5)
	require.NoError(t, err)
	require.Equal(t, 5, v)
	require.Equal(t, []int{0}, s.Choices())
}

func TestSource_Errors(t *testing.T) {
	s := draw.NewSeeded(1)
	_, err := s.IntRange(3, 2)
	require.ErrorIs(t, err, draw.ErrEmptyRange)
	_, err = s.Index(0)
	require.ErrorIs(t, err, draw.ErrNoChoices)
	require.Empty(t, s.Choices(), "failed draws are not recorded")
}

func TestSource_ReplayReproduces(t *testing.T) {
	orig := draw.NewSeeded(7)
	var want []int
	for i := 0; i < 20; i++ {
		v, err := orig.IntRange(0, 100)
		require.NoError(t, err)
		want = append(want, v)
		idx, err := orig.Index(4)
		require.NoError(t, err)
		want = append(want, idx)
	}

	rep := draw.Replay(orig.Choices(), nil)
	var got []int
	for i := 0; i < 20; i++ {
		v, err := rep.IntRange(0, 100)
		require.NoError(t, err)
		got = append(got, v)
		idx, err := rep.Index(4)
		require.NoError(t, err)
		got = append(got, idx)
	}
	require.Equal(t, want, got)
}

func TestSource_ReplayClampsAndFallsBack(t *testing.T) {
	rep := draw.Replay([]int{50, -4}, nil)

	v, err := rep.IntRange(10, 20)
	require.NoError(t, err)
	assert.Equal(t, 20, v, "offset beyond span is clamped")

	v, err = rep.IntRange(10, 20)
	require.NoError(t, err)
	assert.Equal(t, 10, v, "negative offset is clamped to zero")

	v, err = rep.IntRange(10, 20)
	require.NoError(t, err)
	assert.Equal(t, 10, v, "past the prefix a nil rng draws the minimum")

	require.Equal(t, []int{10, 0, 0}, rep.Choices())
}

func TestSource_ReplayContinuesWithRNG(t *testing.T) {
	rep := draw.Replay([]int{1}, rand.New(rand.NewSource(3)))
	v, err := rep.IntRange(0, 9)
	require.NoError(t, err)
	require.Equal(t, 1, v)
	for i := 0; i < 10; i++ {
		_, err = rep.IntRange(0, 9)
		require.NoError(t, err)
	}
	require.Len(t, rep.Choices(), 11)
}

func TestNewSource_NilPanics(t *testing.T) {
	require.Panics(t, func() { draw.NewSource(nil) })
}

func TestShrinks(t *testing.T) {
	require.Empty(t, draw.Shrinks(nil))
	require.Empty(t, draw.Shrinks([]int{0, 0, 0}))

	got := draw.Shrinks([]int{4, 0, 2})
	require.Equal(t, [][]int{
		{},
		{4},
		{0, 0, 2},
		{2, 0, 2},
		{3, 0, 2},
		{4, 0, 1},
	}, got)
}

func TestShrinks_CandidatesAreSmaller(t *testing.T) {
	orig := []int{9, 3, 0, 5, 1}
	for _, c := range draw.Shrinks(orig) {
		require.LessOrEqual(t, len(c), len(orig))
		var diff bool
		for i := range orig {
			v := 0
			if i < len(c) {
				v = c[i]
			}
			require.LessOrEqual(t, v, orig[i])
			if v != orig[i] {
				diff = true
			}
		}
		require.True(t, diff, "candidate %v must differ from the original", c)
	}
}

func TestEquivalent(t *testing.T) {
	assert.True(t, draw.Equivalent(nil, []int{0, 0}))
	assert.True(t, draw.Equivalent([]int{3, 1}, []int{3, 1, 0}))
	assert.False(t, draw.Equivalent([]int{3, 1}, []int{3, 0, 1}))
}

func TestShrinks_LargeOffsetHalvesTowardOriginal(t *testing.T) {
	got := draw.Shrinks([]int{16})
	require.Equal(t, [][]int{
		{},
		{8},
		{12},
		{14},
		{15},
	}, got)
}
