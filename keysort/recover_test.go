// Package keysort provides key-based in-memory sorting with interchangeable algorithms
// and stable recovery of the original record order.
/*
 * Copyright (c) 2018-2026, NVIDIA CORPORATION. All rights reserved.
 */
package keysort_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/recsort/recsort/keysort"
	"github.com/recsort/recsort/tools/trand"
)

var _ = Describe("RecoverOrder", func() {
	It("should recover identifiers in stable order", func() {
		var (
			keys = []int64{5, 3, 5, 1}
			ids  = []string{"A", "B", "C", "D"}
		)
		for _, kind := range keysort.Kinds() {
			order, err := keysort.SortAndRecover(keysort.KeyedSeq[int64, string]{Keys: keys, IDs: ids},
				&keysort.Algorithm{Kind: kind})
			Expect(err).NotTo(HaveOccurred())
			Expect(order).To(Equal([]string{"D", "B", "A", "C"}), kind)
		}
	})

	It("should keep first-seen order for ties when descending", func() {
		order, err := keysort.SortAndRecover(keysort.KeyedSeq[string, int]{
			Keys: []string{"x", "y", "x", "y"},
			IDs:  []int{0, 1, 2, 3},
		}, &keysort.Algorithm{Kind: keysort.KindQuick, Decreasing: true})
		Expect(err).NotTo(HaveOccurred())
		Expect(order).To(Equal([]int{1, 3, 0, 2}))
	})

	It("should produce a stable permutation with many duplicates", func() {
		const n = 1000
		var (
			keys = trand.Ints(n, 3)
			ids  = make([]int, n)
		)
		for i := range ids {
			ids[i] = i
		}
		for _, kind := range []string{keysort.KindMerge, keysort.KindPartition} {
			seq, err := keysort.NewKeyedSeq(keys, ids)
			Expect(err).NotTo(HaveOccurred())
			order, err := keysort.SortAndRecover(seq, &keysort.Algorithm{Kind: kind})
			Expect(err).NotTo(HaveOccurred())
			Expect(order).To(HaveLen(n))

			seen := make(map[int]bool, n)
			for i, id := range order {
				Expect(seen[id]).To(BeFalse())
				seen[id] = true
				if i == 0 {
					continue
				}
				prev := order[i-1]
				Expect(keys[prev] <= keys[id]).To(BeTrue())
				if keys[prev] == keys[id] {
					Expect(prev < id).To(BeTrue())
				}
			}
		}
	})

	It("should handle empty input", func() {
		order, err := keysort.RecoverOrder([]float64{}, []int{}, []float64{})
		Expect(err).NotTo(HaveOccurred())
		Expect(order).To(BeEmpty())
	})

	It("should fail on misaligned identifiers", func() {
		_, err := keysort.RecoverOrder([]int64{1, 2}, []int{0}, []int64{1, 2})
		Expect(keysort.IsErrPrecondition(err)).To(BeTrue())

		_, err = keysort.NewKeyedSeq([]int64{1}, []int{})
		Expect(keysort.IsErrPrecondition(err)).To(BeTrue())
	})

	It("should fail when sorted keys are not a permutation", func() {
		// unknown key
		_, err := keysort.RecoverOrder([]int64{1, 2}, []int{0, 1}, []int64{1, 3})
		Expect(keysort.IsErrPrecondition(err)).To(BeTrue())

		// too many occurrences of a known key
		_, err = keysort.RecoverOrder([]int64{1, 2}, []int{0, 1}, []int64{1, 1})
		Expect(keysort.IsErrPrecondition(err)).To(BeTrue())

		// length mismatch
		_, err = keysort.RecoverOrder([]int64{1, 2}, []int{0, 1}, []int64{1})
		Expect(keysort.IsErrPrecondition(err)).To(BeTrue())
	})
})
