package numeric

import (
	"golang.org/x/exp/constraints"

	"github.com/sbezverk/seqtools/list"
)

// Atom is a symbolic constant
type Atom uint8

const (
	False Atom = iota
	True
	Chipmunk
)

func (a Atom) String() string {
	switch a {
	case False:
		return "False"
	case True:
		return "True"
	case Chipmunk:
		return "Chipmunk"
	}
	return "Unknown"
}

// Signed is a number type which can hold the negation of its values
type Signed interface {
	constraints.Signed | constraints.Float
}

// Neg returns 0 - x.
func Neg[T Signed](x T) T {
	return 0 - x
}

// Avg returns the midpoint of a and b.
func Avg(a, b float64) float64 {
	return 0.5 * (a + b)
}

func Sum[T list.Number](xs []T) T {
	var s T
	for _, x := range xs {
		s += x
	}
	return s
}

// Mean returns the arithmetic mean of xs, NaN for an empty sequence.
func Mean[T list.Number](xs []T) float64 {
	return float64(Sum(xs)) / float64(len(xs))
}

// Compose returns the function x -> f(g(x)).
func Compose[A, B, C any](f func(B) C, g func(A) B) func(A) C {
	return func(a A) C {
		return f(g(a))
	}
}

// RankPet puts p1 first when it is a Chipmunk, otherwise p2 goes first.
func RankPet(p1, p2 Atom) (Atom, Atom) {
	if p1 == Chipmunk {
		return p1, p2
	}
	return p2, p1
}
