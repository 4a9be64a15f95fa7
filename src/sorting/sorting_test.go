package sorting_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/Nigel2392/dsa/src/sorting"
	"github.com/stretchr/testify/assert"
)

var sorters = map[string]func([]int){
	"bubble sort": sorting.BubbleSort[int],
	"quick sort":  sorting.QuickSort[int],
}

func TestSorters(t *testing.T) {
	var rng = rand.New(rand.NewSource(69))

	for name, sorter := range sorters {
		t.Run(name, func(t *testing.T) {
			var array = []int{9, 3, 7, 4, 69, 105, 42, 420}
			sorter(array)
			assert.Equal(t, []int{3, 4, 7, 9, 42, 69, 105, 420}, array)

			for _, array := range [][]int{nil, {}, {1}, {2, 1}, {1, 1, 1}, {5, 4, 3, 2, 1}} {
				sorter(array)
				assert.True(t, sort.IntsAreSorted(array), "%v", array)
			}

			var random = make([]int, 500)
			for i := range random {
				random[i] = rng.Intn(100)
			}
			var expected = append([]int(nil), random...)
			sort.Ints(expected)
			sorter(random)
			assert.Equal(t, expected, random)
		})
	}
}

func TestQuickSortStrings(t *testing.T) {
	var words = []string{"pear", "apple", "fig", "banana"}
	sorting.QuickSort(words)
	assert.Equal(t, []string{"apple", "banana", "fig", "pear"}, words)
}
