// Package keysort provides key-based in-memory sorting with interchangeable algorithms
// and stable recovery of the original record order.
/*
 * Copyright (c) 2018-2026, NVIDIA CORPORATION. All rights reserved.
 */
package keysort

import (
	"strconv"

	"github.com/pkg/errors"

	"github.com/recsort/recsort/cmn/debug"
)

// SortFunc is the common contract of Exchange, Merge and Partition:
// return a new sorted sequence, leave the input intact.
type SortFunc[K Key] func(keys []K, dir Direction) []K

// Lookup selects an algorithm by name (aliases included). Partition gets
// a time-seeded generator on each call.
func Lookup[K Key](kind string) (SortFunc[K], error) {
	algo := Algorithm{Kind: kind}
	if err := algo.Validate(); err != nil {
		return nil, err
	}
	switch algo.Canonical() {
	case KindExchange:
		return Exchange[K], nil
	case KindMerge:
		return Merge[K], nil
	case KindPartition:
		return func(keys []K, dir Direction) []K { return Partition(keys, dir, nil) }, nil
	}
	debug.Assertf(false, "unhandled algorithm %q", kind)
	return nil, &ErrUnknownAlgorithm{kind}
}

// Sort checks preconditions and runs the algorithm selected by `algo`.
func Sort[K Key](keys []K, algo *Algorithm) ([]K, error) {
	if err := algo.Validate(); err != nil {
		return nil, err
	}
	if err := CheckKeys(keys); err != nil {
		return nil, err
	}
	var (
		sorted []K
		dir    = algo.Direction()
	)
	switch algo.Canonical() {
	case KindExchange:
		sorted = Exchange(keys, dir)
	case KindMerge:
		sorted = Merge(keys, dir)
	case KindPartition:
		sorted = Partition(keys, dir, algo.rand())
	default:
		debug.Assertf(false, "unhandled algorithm %q", algo.Kind)
		return nil, &ErrUnknownAlgorithm{algo.Kind}
	}
	debug.AssertFunc(func() bool { return IsSorted(sorted, dir) }, algo.String())
	return sorted, nil
}

// SortAndRecover sorts the keys of seq and returns the identifiers in stable sorted order.
func SortAndRecover[K Key, ID any](seq KeyedSeq[K, ID], algo *Algorithm) ([]ID, error) {
	if err := seq.Validate(); err != nil {
		return nil, err
	}
	sorted, err := Sort(seq.Keys, algo)
	if err != nil {
		return nil, err
	}
	return RecoverOrder(seq.Keys, seq.IDs, sorted)
}

// IsSorted reports whether no adjacent pair of keys is out of order.
func IsSorted[K Key](keys []K, dir Direction) bool {
	for i := 1; i < len(keys); i++ {
		if Follows(dir, keys[i-1], keys[i]) {
			return false
		}
	}
	return true
}

// CheckKeys rejects keys that are not totally ordered (float NaN).
func CheckKeys[K Key](keys []K) error {
	for i, k := range keys {
		if unordered(k) {
			return errors.Wrapf(ErrPrecondition, fmtErrUnordered, i)
		}
	}
	return nil
}

// nil when not seeded (see Partition)
func (algo *Algorithm) rand() Rand {
	if algo.Seed == "" {
		return nil
	}
	seed, err := strconv.ParseInt(algo.Seed, 10, 64)
	debug.AssertNoErr(err) // validated
	return NewRand(seed)
}
