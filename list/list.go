package list

import (
	"errors"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

var (
	// ErrEmptySequence error returns when an operation needing a head is given an empty sequence
	ErrEmptySequence = errors.New("empty sequence")
)

// Number is any integer or floating point type
type Number interface {
	constraints.Integer | constraints.Float
}

// Empty returns a new sequence of length 0.
func Empty[T Number]() []T {
	return []T{}
}

// Head returns the first element of xs.
func Head[T Number](xs []T) (T, error) {
	if len(xs) == 0 {
		var zero T
		return zero, ErrEmptySequence
	}
	return xs[0], nil
}

// Tail returns a copy of xs without its first element, the input is not modified.
func Tail[T Number](xs []T) ([]T, error) {
	if len(xs) == 0 {
		return nil, ErrEmptySequence
	}
	return slices.Clone(xs[1:]), nil
}

// Equal reports whether a and b have the same length and equal elements.
// A nil and an empty sequence are equal, NaN is not equal to anything.
func Equal[T Number](a, b []T) bool {
	return slices.Equal(a, b)
}
