// Package internal holds helpers shared by the regvm packages.
package internal

import (
	"cmp"
	"iter"
	"maps"
	"slices"
)

// SortedSeq2 merges dual-return iterators into a single sequence ordered by key.
// For a repeated key, the value from the last sequence wins.
func SortedSeq2[K cmp.Ordered, V any](seqs ...iter.Seq2[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		merged := map[K]V{}
		for _, seq := range seqs {
			maps.Insert(merged, seq)
		}
		for _, key := range slices.Sorted(maps.Keys(merged)) {
			if !yield(key, merged[key]) {
				return // Stop if the consumer stops
			}
		}
	}
}
