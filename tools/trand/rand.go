// Package trand provides random test data: strings, keys, and key sequences
/*
 * Copyright (c) 2018-2026, NVIDIA CORPORATION. All rights reserved.
 */
package trand

import (
	"math/rand/v2"

	"github.com/recsort/recsort/cmn/cos"
)

func String(n int) string {
	b := make([]byte, n)
	for i := range n {
		b[i] = cos.LetterRunes[rand.Int()%cos.LenRunes]
	}
	return string(b)
}

// Ints returns n values in [0, distinct); small `distinct` yields many duplicates.
func Ints(n, distinct int) []int64 {
	out := make([]int64, n)
	for i := range out {
		out[i] = int64(rand.IntN(distinct))
	}
	return out
}

// Floats returns n values in [lo, hi).
func Floats(n int, lo, hi float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = lo + rand.Float64()*(hi-lo)
	}
	return out
}

// Strings returns n strings drawn from a pool of `distinct` random words.
func Strings(n, distinct, wordLen int) []string {
	pool := make([]string, distinct)
	for i := range pool {
		pool[i] = String(wordLen)
	}
	out := make([]string, n)
	for i := range out {
		out[i] = pool[rand.IntN(distinct)]
	}
	return out
}
