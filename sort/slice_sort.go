package sort

import (
	"golang.org/x/exp/slices"

	"github.com/sbezverk/seqtools/list"
)

// HeadPair returns xs and ys ordered so that the sequence with the smaller head comes first,
// when heads are equal ys comes first.
func HeadPair[T list.Number](xs, ys []T) ([]T, []T, error) {
	if len(xs) == 0 || len(ys) == 0 {
		return nil, nil, list.ErrEmptySequence
	}
	first, second := headPair(xs, ys)
	return first, second, nil
}

// headPair expects both xs and ys to be non empty.
func headPair[T list.Number](xs, ys []T) ([]T, []T) {
	if xs[0] < ys[0] {
		return xs, ys
	}
	return ys, xs
}

// Merge merges two ascending sequences into a new ascending sequence holding the elements of both.
// If either input is not sorted, the order of the result is unspecified.
func Merge[T list.Number](xs, ys []T) []T {
	if len(xs) == 0 {
		return slices.Clone(ys)
	}
	if len(ys) == 0 {
		return slices.Clone(xs)
	}
	merged := make([]T, 0, len(xs)+len(ys))
	for len(xs) != 0 && len(ys) != 0 {
		first, second := headPair(xs, ys)
		merged = append(merged, first[0])
		// The rest of the sequence which gave the head goes first in the next round
		xs, ys = first[1:], second
	}
	merged = append(merged, xs...)
	merged = append(merged, ys...)

	return merged
}

// Sort returns a new sequence with the elements of ns in ascending order, ns is not modified.
func Sort[T list.Number](ns []T) []T {
	if len(ns) <= 1 {
		return slices.Clone(ns)
	}
	mid := len(ns) / 2
	return Merge(Sort(ns[:mid]), Sort(ns[mid:]))
}
