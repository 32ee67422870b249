// SPDX-License-Identifier: MIT
// Package: lvsearch/builder
//
// ids.go — state naming schemes: index -> state ID.

package builder

import (
	"fmt"
	"strconv"
)

// IDFn names the state with zero-based index idx. It must be pure: the same
// idx always yields the same ID, and distinct indices yield distinct IDs.
type IDFn func(idx int) string

// DecimalIDs names states "0", "1", "2", ... It is the default scheme.
func DecimalIDs(idx int) string {
	return strconv.Itoa(idx)
}

// LetterIDs names states the way spreadsheet columns are named:
// "A".."Z", then "AA", "AB", ... so it never runs out. This matches the
// single-letter states of small hand-written problems for n ≤ 26.
// Panics if idx < 0.
func LetterIDs(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("builder: LetterIDs(%d)", idx))
	}
	var buf [16]byte
	i := len(buf)
	for ; idx >= 0; idx = idx/26 - 1 {
		i--
		buf[i] = byte('A' + idx%26)
	}

	return string(buf[i:])
}

// PrefixedIDs returns a scheme naming states prefix+index, e.g. "v0", "v1".
func PrefixedIDs(prefix string) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("builder: PrefixedIDs(%q)(%d)", prefix, idx))
		}
		return prefix + strconv.Itoa(idx)
	}
}

// WithLetterIDs names states with LetterIDs.
func WithLetterIDs() BuilderOption {
	return WithIDScheme(LetterIDs)
}

// WithPrefixedIDs names states with PrefixedIDs(prefix).
func WithPrefixedIDs(prefix string) BuilderOption {
	return WithIDScheme(PrefixedIDs(prefix))
}
