// Package sorting holds the sample sort used by the Chat and Edit lessons.
package sorting

// BubbleSort sorts xs in place in non-decreasing order and returns xs.
// Each of the n passes walks every adjacent pair and swaps neighbors that are
// out of order. Equal elements are never swapped, so the sort is stable.
func BubbleSort(xs []int) []int {
	return BubbleSortFunc(xs, func(a, b int) bool { return a < b })
}

// BubbleSortDescending is the Edit lesson variant: same passes, reversed order.
func BubbleSortDescending(xs []int) []int {
	return BubbleSortFunc(xs, func(a, b int) bool { return a > b })
}

// BubbleSortFunc sorts xs in place using less as a strict ordering.
// Only pairs where less(xs[j+1], xs[j]) holds are swapped.
func BubbleSortFunc[T any](xs []T, less func(a, b T) bool) []T {
	n := len(xs)
	for i := 0; i < n; i++ {
		for j := 0; j < n-1; j++ {
			if less(xs[j+1], xs[j]) {
				xs[j], xs[j+1] = xs[j+1], xs[j]
			}
		}
	}
	return xs
}

// IsSorted reports whether xs is non-decreasing.
func IsSorted(xs []int) bool {
	for i := 1; i < len(xs); i++ {
		if xs[i] < xs[i-1] {
			return false
		}
	}
	return true
}
