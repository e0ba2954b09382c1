// Package keysort provides key-based in-memory sorting with interchangeable algorithms
// and stable recovery of the original record order.
/*
 * Copyright (c) 2018-2026, NVIDIA CORPORATION. All rights reserved.
 */
package keysort

// Exchange returns a sorted copy of keys using adjacent swaps. A pass without
// swaps terminates the sort: O(n) on sorted input, O(n^2) otherwise.
func Exchange[K Key](keys []K, dir Direction) []K {
	a := clone(keys)
	n := len(a)
	for i := range n {
		var swapped bool
		for j := 0; j < n-i-1; j++ {
			if Follows(dir, a[j], a[j+1]) {
				a[j], a[j+1] = a[j+1], a[j]
				swapped = true
			}
		}
		if !swapped {
			break
		}
	}
	return a
}

func clone[K any](keys []K) []K {
	a := make([]K, len(keys))
	copy(a, keys)
	return a
}
