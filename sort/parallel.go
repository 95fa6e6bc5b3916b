package sort

import (
	"github.com/sbezverk/seqtools/list"
)

// ParallelSort sorts like Sort, but halves longer than cutoff get the left half sorted
// in its own goroutine. A cutoff below 2 is treated as 2.
func ParallelSort[T list.Number](ns []T, cutoff int) []T {
	if cutoff < 2 {
		cutoff = 2
	}
	return parallelSort(ns, cutoff)
}

func parallelSort[T list.Number](ns []T, cutoff int) []T {
	if len(ns) <= cutoff {
		return Sort(ns)
	}
	mid := len(ns) / 2
	leftCh := make(chan []T, 1)
	go func(s []T) {
		leftCh <- parallelSort(s, cutoff)
	}(ns[:mid])
	right := parallelSort(ns[mid:], cutoff)

	return Merge(<-leftCh, right)
}
