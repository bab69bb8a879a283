package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphgen/builder"
)

// TestIDFns verifies each IDFn implementation both for correct outputs on valid inputs
// and for panics on invalid inputs.
func TestIDFns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		fn          builder.IDFn
		input       int
		want        string
		shouldPanic bool
	}{
		{"DefaultIDFn_zero", builder.DefaultIDFn, 0, "0", false},
		{"DefaultIDFn_multi", builder.DefaultIDFn, 123, "123", false},
		{"ExcelColumnIDFn_A", builder.ExcelColumnIDFn, 0, "A", false},
		{"ExcelColumnIDFn_Z", builder.ExcelColumnIDFn, 25, "Z", false},
		{"ExcelColumnIDFn_AA", builder.ExcelColumnIDFn, 26, "AA", false},
		{"ExcelColumnIDFn_AB", builder.ExcelColumnIDFn, 27, "AB", false},
		{"ExcelColumnIDFn_negative", builder.ExcelColumnIDFn, -1, "", true},
		{"SymbolNumberIDFn", builder.SymbolNumberIDFn("c"), 12, "c12", false},
		{"SymbolNumberIDFn_negative", builder.SymbolNumberIDFn("c"), -3, "", true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if tc.shouldPanic {
				require.Panics(t, func() { tc.fn(tc.input) })
				return
			}
			assert.Equal(t, tc.want, tc.fn(tc.input))
		})
	}
}

func TestExcelColumnIDFn_Injective(t *testing.T) {
	seen := make(map[string]int, 2000)
	for i := 0; i < 2000; i++ {
		id := builder.ExcelColumnIDFn(i)
		prev, dup := seen[id]
		require.False(t, dup, "ids %d and %d collide on %q", prev, i, id)
		seen[id] = i
	}
}
