// Package bench measures sorting algorithms on table attributes and summarizes
// the results as per-size speedups.
/*
 * Copyright (c) 2018-2026, NVIDIA CORPORATION. All rights reserved.
 */
package bench

import (
	"time"

	"github.com/recsort/recsort/keysort"
)

// MedianTime runs fn `repeats` times and returns the median wall-clock duration
// (mean of the two middle samples when repeats is even). Zero repeats count as one.
func MedianTime(fn func(), repeats int) time.Duration {
	repeats = max(repeats, 1)
	samples := make([]int64, repeats)
	for i := range samples {
		started := time.Now()
		fn()
		samples[i] = int64(time.Since(started))
	}
	return time.Duration(median(samples))
}

func median[K int64 | float64](samples []K) K {
	sorted := keysort.Merge(samples, keysort.Ascending)
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}
