package internal

import (
	"iter"
	"maps"
	"slices"
)

// Defines merges sequences of name/value defines into a single sequence
// in name order. A later sequence overrides an earlier one for a name.
func Defines(seqs ...iter.Seq2[string, string]) iter.Seq2[string, string] {
	merged := map[string]string{}
	for _, seq := range seqs {
		maps.Insert(merged, seq)
	}

	return func(yield func(string, string) bool) {
		for _, name := range slices.Sorted(maps.Keys(merged)) {
			if !yield(name, merged[name]) {
				return
			}
		}
	}
}
