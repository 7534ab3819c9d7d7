package utils

import "math"

func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// ArgMax returns the index of the first item with the highest value, or -1 for
// an empty slice.
func ArgMax[T any](slice []T, value func(T) float64) int {
	best := -1
	bestValue := math.Inf(-1)
	for i, v := range slice {
		if x := value(v); best == -1 || x > bestValue {
			best = i
			bestValue = x
		}
	}
	return best
}
