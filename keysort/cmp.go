// Package keysort provides key-based in-memory sorting with interchangeable algorithms
// and stable recovery of the original record order.
/*
 * Copyright (c) 2018-2026, NVIDIA CORPORATION. All rights reserved.
 */
package keysort

import (
	"strings"

	"github.com/pkg/errors"
)

// Direction is the ordering policy shared by all algorithms.
// Equal keys are order-neutral: ties are never broken here.
type Direction bool

const (
	Ascending  Direction = false
	Descending Direction = true
)

func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "asc", "ascending", "increasing", "inc":
		return Ascending, nil
	case "desc", "descending", "decreasing", "dec":
		return Descending, nil
	default:
		return Ascending, errors.Errorf("invalid sort order %q (expecting ascending or descending)", s)
	}
}

// Precedes reports whether a must come strictly before b.
func Precedes[K Key](dir Direction, a, b K) bool {
	if dir == Descending {
		return a > b
	}
	return a < b
}

// Follows reports whether a must come strictly after b (i.e., the pair (a, b) is out of order).
func Follows[K Key](dir Direction, a, b K) bool {
	if dir == Descending {
		return a < b
	}
	return a > b
}

func (dir Direction) String() string {
	if dir == Descending {
		return "descending"
	}
	return "ascending"
}

// unordered reports NaN: the only value of an ordered type that is not equal to itself.
func unordered[K Key](k K) bool { return k != k }
