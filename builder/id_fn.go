// SPDX-License-Identifier: MIT
// Package: graphgen/builder
//
// id_fn.go - vertex ID schemes for WithIDScheme.
//
// Every scheme is injective on its documented domain, so constructors never
// collide on vertex IDs. Schemes panic on out-of-domain input (programmer
// error); constructors only call them with 0 ≤ idx < n.

package builder

import (
	"fmt"
	"strconv"
)

// IDFn maps a vertex index to its ID.
type IDFn func(idx int) string

// DefaultIDFn renders idx in decimal ("0","1","2",...).
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// ExcelColumnIDFn renders idx as a spreadsheet column ("A".."Z","AA",...).
// Panics if idx < 0.
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// SymbolNumberIDFn returns a scheme producing prefix+decimal ("v0","v1",...).
func SymbolNumberIDFn(prefix string) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("SymbolNumberIDFn: idx must be ≥ 0, got %d", idx))
		}
		return prefix + strconv.Itoa(idx)
	}
}
