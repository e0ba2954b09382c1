// Package keysort provides key-based in-memory sorting with interchangeable algorithms
// and stable recovery of the original record order.
/*
 * Copyright (c) 2018-2026, NVIDIA CORPORATION. All rights reserved.
 */
package keysort

import (
	"cmp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const (
	algDefault    = ""          // default (merge, increasing)
	KindExchange  = "exchange"  // quadratic adjacent-swap sort with early exit
	KindMerge     = "merge"     // top-down merge sort (stable)
	KindPartition = "partition" // randomized-pivot 3-way quicksort (in place, not stable)

	// aliases
	KindBubble = "bubble" // => KindExchange
	KindQuick  = "quick"  // => KindPartition
)

var algorithms = []string{algDefault, KindExchange, KindBubble, KindMerge, KindPartition, KindQuick}

type (
	// Key is any totally ordered scalar: in practice float64 (numeric), int64 (integral),
	// or string (text). All keys of a single call share the same type.
	Key interface {
		cmp.Ordered
	}

	// KeyedSeq pairs keys with the identifiers of the records that carry them.
	// Keys[i] belongs to IDs[i].
	KeyedSeq[K Key, ID any] struct {
		Keys []K
		IDs  []ID
	}

	Algorithm struct {
		// one of the `algorithms` above
		Kind string `json:"kind" yaml:"kind"`

		// descending order when true
		Decreasing bool `json:"decreasing" yaml:"decreasing"`

		// Partition only: decimal seed to reproduce pivot selection
		Seed string `json:"seed,omitempty" yaml:"seed,omitempty"`
	}
)

// Kinds returns canonical algorithm names, aliases excluded.
func Kinds() []string { return []string{KindExchange, KindMerge, KindPartition} }

//////////////
// KeyedSeq //
//////////////

func NewKeyedSeq[K Key, ID any](keys []K, ids []ID) (KeyedSeq[K, ID], error) {
	seq := KeyedSeq[K, ID]{Keys: keys, IDs: ids}
	return seq, seq.Validate()
}

func (seq *KeyedSeq[K, ID]) Len() int { return len(seq.Keys) }

func (seq *KeyedSeq[K, ID]) Validate() error {
	if len(seq.Keys) != len(seq.IDs) {
		return errors.Wrapf(ErrPrecondition, "keys (%d) and identifiers (%d) are not aligned",
			len(seq.Keys), len(seq.IDs))
	}
	return nil
}

///////////////
// Algorithm //
///////////////

// Canonical returns the canonical kind: aliases and the default resolved.
func (algo *Algorithm) Canonical() string {
	switch strings.ToLower(algo.Kind) {
	case algDefault, KindMerge:
		return KindMerge
	case KindExchange, KindBubble:
		return KindExchange
	case KindPartition, KindQuick:
		return KindPartition
	default:
		return algo.Kind
	}
}

func (algo *Algorithm) Direction() Direction {
	if algo.Decreasing {
		return Descending
	}
	return Ascending
}

func (algo *Algorithm) Validate() error {
	var found bool
	kind := strings.ToLower(algo.Kind)
	for _, k := range algorithms {
		if k == kind {
			found = true
			break
		}
	}
	if !found {
		return &ErrUnknownAlgorithm{algo.Kind}
	}
	if algo.Seed != "" {
		if algo.Canonical() != KindPartition {
			return errors.Errorf("seed is only supported with %q (got %q)", KindPartition, algo.Kind)
		}
		if _, err := strconv.ParseInt(algo.Seed, 10, 64); err != nil {
			return errors.Errorf(fmtErrSeed, algo.Seed)
		}
	}
	return nil
}

func (algo *Algorithm) String() string {
	s := algo.Canonical() + "(" + algo.Direction().String()
	if algo.Seed != "" {
		s += ", seed=" + algo.Seed
	}
	return s + ")"
}
