// Package sorting holds in-place comparison sorts.
package sorting

import "cmp"

// Sort the slice in place by repeatedly swapping adjacent out of order values.
//
// Stops early once a pass makes no swaps.
func BubbleSort[T cmp.Ordered](array []T) {
	for i := range array {
		var swapped bool
		for j := 0; j < len(array)-1-i; j++ {
			if array[j] > array[j+1] {
				array[j], array[j+1] = array[j+1], array[j]
				swapped = true
			}
		}
		if !swapped {
			return
		}
	}
}

// Sort the slice in place using quicksort with a Lomuto partition.
func QuickSort[T cmp.Ordered](array []T) {
	quickSort(array, 0, len(array)-1)
}

func quickSort[T cmp.Ordered](array []T, lo, hi int) {
	if lo >= hi {
		return
	}

	var pivot = partition(array, lo, hi)
	quickSort(array, lo, pivot-1)
	quickSort(array, pivot+1, hi)
}

// partition uses the last value as the pivot and returns its final index.
func partition[T cmp.Ordered](array []T, lo, hi int) int {
	var pivot = array[hi]
	var index = lo - 1

	for i := lo; i < hi; i++ {
		if array[i] <= pivot {
			index++
			array[i], array[index] = array[index], array[i]
		}
	}

	index++
	array[hi] = array[index]
	array[index] = pivot
	return index
}
