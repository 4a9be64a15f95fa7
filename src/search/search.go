package search

import (
	"cmp"
	"math"
)

// Return an index of needle within the ascending haystack.
//
// Runs in O(log n), returns ErrNotFound if the needle is absent.
func BinarySearch[T cmp.Ordered](haystack []T, needle T) (int, error) {
	var lo, hi = 0, len(haystack)
	for lo < hi {
		var mid = lo + (hi-lo)/2
		switch v := haystack[mid]; {
		case v == needle:
			return mid, nil
		case v > needle:
			hi = mid
		default:
			lo = mid + 1
		}
	}
	return -1, ErrNotFound
}

// Return the index of the first true value in breaks.
//
// Breaks must be false up to some index and true from there on.
// Jumps ahead √n at a time with the first ball, then walks
// the last safe stretch with the second. Runs in O(√n).
func TwoCrystalBalls(breaks []bool) (int, error) {
	var jump = int(math.Sqrt(float64(len(breaks))))
	if jump < 1 {
		jump = 1
	}

	var i = jump
	for ; i < len(breaks); i += jump {
		if breaks[i] {
			break
		}
	}

	for i -= jump; i < len(breaks); i++ {
		if breaks[i] {
			return i, nil
		}
	}

	return -1, ErrNotFound
}
