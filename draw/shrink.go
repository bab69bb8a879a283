package draw

import (
	"slices"
	"strconv"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
)

// Shrinks returns candidate choice sequences that are simpler than choices,
// simplest first. Replaying a candidate with Replay(candidate, nil) yields a
// draw at least as small as the original in every position it changes.
//
// Candidates, in order:
//   - every prefix (the dropped tail replays as zero offsets), shortest first;
//   - for each position holding a positive offset, the non-negative values of
//     gen.IntShrinker: zero first, then halving steps up to the offset minus one.
//
// Duplicates and the unchanged sequence are omitted. An all-zero input has no
// candidates.
func Shrinks(choices []int) [][]int {
	var out [][]int
	seen := map[string]struct{}{key(normalize(choices)): {}}

	add := func(c []int) {
		k := key(normalize(c))
		if _, ok := seen[k]; ok {
			return
		}
		seen[k] = struct{}{}
		out = append(out, c)
	}

	for i := 0; i < len(choices); i++ {
		prefix := make([]int, i)
		copy(prefix, choices)
		add(prefix)
	}
	for i, c := range choices {
		if c <= 0 {
			continue
		}
		for _, v := range offsetShrinks(c).All() {
			cand := append([]int(nil), choices...)
			cand[i] = v.(int)
			add(cand)
		}
	}

	return out
}

// offsetShrinks streams the smaller non-negative offsets gopter proposes for c.
func offsetShrinks(c int) gopter.Shrink {
	return gen.IntShrinker(c).Filter(func(v interface{}) bool {
		return v.(int) >= 0
	})
}

// normalize strips trailing zeros, which replay identically to a shorter prefix.
func normalize(c []int) []int {
	n := len(c)
	for n > 0 && c[n-1] <= 0 {
		n--
	}

	return c[:n]
}

// key renders a sequence as a comparable map key.
func key(c []int) string {
	b := make([]byte, 0, len(c)*4)
	for _, v := range c {
		b = strconv.AppendInt(b, int64(v), 10)
		b = append(b, ',')
	}

	return string(b)
}

// Equivalent reports whether a and b replay identically, that is, whether
// they differ only in trailing zero offsets.
func Equivalent(a, b []int) bool {
	return slices.Equal(normalize(a), normalize(b))
}
