// Package keysort provides key-based in-memory sorting with interchangeable algorithms
// and stable recovery of the original record order.
/*
 * Copyright (c) 2018-2026, NVIDIA CORPORATION. All rights reserved.
 */
package keysort

import (
	"github.com/pkg/errors"
)

// FIFO queue of identifiers that share one key, in first-seen order
type bucket[ID any] struct {
	ids  []ID
	head int
}

func (b *bucket[ID]) push(id ID)  { b.ids = append(b.ids, id) }
func (b *bucket[ID]) empty() bool { return b.head >= len(b.ids) }

func (b *bucket[ID]) pop() (id ID) {
	id = b.ids[b.head]
	b.head++
	return
}

// RecoverOrder maps sorted keys back onto the identifiers that carried them.
// Identifiers with equal keys come out in their original relative order, which makes
// the overall result stable even when the sort that produced `sorted` is not.
//
// `sorted` must be a permutation of `keys` (same multiset) and `ids` must be aligned with
// `keys`; any violation fails the call with ErrPrecondition and no partial result.
func RecoverOrder[K Key, ID any](keys []K, ids []ID, sorted []K) ([]ID, error) {
	if len(keys) != len(ids) {
		return nil, errors.Wrapf(ErrPrecondition, "keys (%d) and identifiers (%d) are not aligned", len(keys), len(ids))
	}
	if len(sorted) != len(keys) {
		return nil, errors.Wrapf(ErrPrecondition, "sorted keys (%d) vs original keys (%d): not a permutation",
			len(sorted), len(keys))
	}
	buckets := make(map[K]*bucket[ID])
	for i, k := range keys {
		b, ok := buckets[k]
		if !ok {
			b = &bucket[ID]{}
			buckets[k] = b
		}
		b.push(ids[i])
	}

	order := make([]ID, 0, len(sorted))
	for i, k := range sorted {
		b, ok := buckets[k]
		if !ok || b.empty() {
			return nil, errors.Wrapf(ErrPrecondition, fmtErrExhausted, k, i)
		}
		order = append(order, b.pop())
	}
	return order, nil
}
