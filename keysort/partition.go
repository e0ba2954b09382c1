// Package keysort provides key-based in-memory sorting with interchangeable algorithms
// and stable recovery of the original record order.
/*
 * Copyright (c) 2018-2026, NVIDIA CORPORATION. All rights reserved.
 */
package keysort

import (
	"math/rand/v2"
	"time"
)

type (
	// Rand is a uniform random index generator: IntN returns a value in [0, n).
	// *rand.Rand (math/rand/v2) implements it.
	Rand interface {
		IntN(n int) int
	}

	// closed range [lo, hi]
	span struct {
		lo, hi int
	}
)

// NewRand returns a PCG-backed Rand; the same seed reproduces the same pivots.
func NewRand(seed int64) Rand {
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))
}

// Partition returns a sorted copy of keys: randomized-pivot quicksort with 3-way
// (Dutch National Flag) partitioning, so runs of pivot-equal keys are placed in a single pass.
// A nil rnd selects a time-seeded generator.
//
// Expected O(n log n); an unlucky pivot sequence degrades to O(n^2) time with no fallback.
// Pending ranges live on an explicit stack, smaller range first, so the stack holds
// O(log n) entries regardless of pivot luck. Not stable.
func Partition[K Key](keys []K, dir Direction, rnd Rand) []K {
	a := clone(keys)
	if rnd == nil {
		rnd = NewRand(time.Now().UnixNano())
	}
	qsort(a, dir, rnd)
	return a
}

func qsort[K Key](a []K, dir Direction, rnd Rand) {
	if len(a) < 2 {
		return
	}
	stack := make([]span, 1, 32)
	stack[0] = span{0, len(a) - 1}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		lt, gt := partition3(a, s, dir, rnd)
		left, right := span{s.lo, lt - 1}, span{gt + 1, s.hi}
		if left.size() < right.size() {
			left, right = right, left
		}
		// larger one first => smaller one is popped next
		if left.size() > 1 {
			stack = append(stack, left)
		}
		if right.size() > 1 {
			stack = append(stack, right)
		}
	}
}

// partition3 rearranges a[s.lo..s.hi] into (precedes pivot | ties | follows pivot)
// and returns the bounds [lt, gt] of the tie block.
func partition3[K Key](a []K, s span, dir Direction, rnd Rand) (lt, gt int) {
	pivot := a[s.lo+rnd.IntN(s.size())]
	lt, gt = s.lo, s.hi
	for i := s.lo; i <= gt; {
		switch {
		case Precedes(dir, a[i], pivot):
			a[lt], a[i] = a[i], a[lt]
			lt++
			i++
		case Follows(dir, a[i], pivot):
			a[i], a[gt] = a[gt], a[i]
			gt--
		default:
			i++
		}
	}
	return lt, gt
}

func (s span) size() int { return s.hi - s.lo + 1 }
