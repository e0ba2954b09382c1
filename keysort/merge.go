// Package keysort provides key-based in-memory sorting with interchangeable algorithms
// and stable recovery of the original record order.
/*
 * Copyright (c) 2018-2026, NVIDIA CORPORATION. All rights reserved.
 */
package keysort

// Merge returns a sorted copy of keys (top-down merge sort, stable).
func Merge[K Key](keys []K, dir Direction) []K {
	return MergeFunc(keys, func(a, b K) bool { return Precedes(dir, a, b) })
}

// MergeFunc is Merge for arbitrary elements: `less` must be a strict weak ordering.
// Equal elements keep their input order. The input is never modified.
// Recursion depth is ceil(log2(n)).
func MergeFunc[E any](xs []E, less func(a, b E) bool) []E {
	if len(xs) <= 1 {
		return clone(xs)
	}
	mid := len(xs) / 2
	return merge(MergeFunc(xs[:mid], less), MergeFunc(xs[mid:], less), less)
}

// on a tie the left element goes first
func merge[E any](left, right []E, less func(a, b E) bool) []E {
	var (
		i, j int
		out  = make([]E, 0, len(left)+len(right))
	)
	for i < len(left) && j < len(right) {
		if less(right[j], left[i]) {
			out = append(out, right[j])
			j++
		} else {
			out = append(out, left[i])
			i++
		}
	}
	out = append(out, left[i:]...)
	return append(out, right[j:]...)
}
