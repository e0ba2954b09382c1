// Package keysort provides key-based in-memory sorting with interchangeable algorithms
// and stable recovery of the original record order.
/*
 * Copyright (c) 2018-2026, NVIDIA CORPORATION. All rights reserved.
 */
package keysort_test

import (
	"math"
	"slices"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/recsort/recsort/keysort"
	"github.com/recsort/recsort/tools/trand"
)

// always picks the first element of the range
type firstPivot struct{}

func (firstPivot) IntN(int) int { return 0 }

// always picks the last element of the range
type lastPivot struct{}

func (lastPivot) IntN(n int) int { return n - 1 }

// counts pivot selections, one per partitioning pass
type countingRand struct {
	keysort.Rand
	calls int
}

func (r *countingRand) IntN(n int) int {
	r.calls++
	return r.Rand.IntN(n)
}

func sortFuncs[K keysort.Key]() map[string]keysort.SortFunc[K] {
	return map[string]keysort.SortFunc[K]{
		keysort.KindExchange: keysort.Exchange[K],
		keysort.KindMerge:    keysort.Merge[K],
		keysort.KindPartition: func(keys []K, dir keysort.Direction) []K {
			return keysort.Partition(keys, dir, keysort.NewRand(42))
		},
	}
}

func sameMultiset[K keysort.Key](a, b []K) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[K]int, len(a))
	for _, k := range a {
		counts[k]++
	}
	for _, k := range b {
		counts[k]--
		if counts[k] < 0 {
			return false
		}
	}
	return true
}

var _ = Describe("Direction", func() {
	It("should order keys strictly", func() {
		Expect(keysort.Precedes(keysort.Ascending, 1, 2)).To(BeTrue())
		Expect(keysort.Precedes(keysort.Ascending, 2, 2)).To(BeFalse())
		Expect(keysort.Precedes(keysort.Descending, 2, 1)).To(BeTrue())
		Expect(keysort.Follows(keysort.Ascending, "b", "a")).To(BeTrue())
		Expect(keysort.Follows(keysort.Descending, "b", "b")).To(BeFalse())
	})

	DescribeTable("should parse direction",
		func(s string, expected keysort.Direction) {
			dir, err := keysort.ParseDirection(s)
			Expect(err).NotTo(HaveOccurred())
			Expect(dir).To(Equal(expected))
		},
		Entry("empty", "", keysort.Ascending),
		Entry("asc", "asc", keysort.Ascending),
		Entry("Ascending", "Ascending", keysort.Ascending),
		Entry("increasing", " increasing ", keysort.Ascending),
		Entry("desc", "desc", keysort.Descending),
		Entry("DECREASING", "DECREASING", keysort.Descending),
	)

	It("should reject unknown direction", func() {
		_, err := keysort.ParseDirection("sideways")
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("Algorithm", func() {
	DescribeTable("should resolve canonical kind",
		func(kind, expected string) {
			algo := &keysort.Algorithm{Kind: kind}
			Expect(algo.Validate()).To(Succeed())
			Expect(algo.Canonical()).To(Equal(expected))
		},
		Entry("default", "", keysort.KindMerge),
		Entry("merge", "merge", keysort.KindMerge),
		Entry("bubble", "bubble", keysort.KindExchange),
		Entry("exchange", "Exchange", keysort.KindExchange),
		Entry("quick", "quick", keysort.KindPartition),
		Entry("partition", "PARTITION", keysort.KindPartition),
	)

	It("should reject unknown kind", func() {
		algo := &keysort.Algorithm{Kind: "bogo"}
		err := algo.Validate()
		Expect(err).To(HaveOccurred())
		Expect(keysort.IsErrUnknownAlgorithm(err)).To(BeTrue())

		_, err = keysort.Lookup[int64]("bogo")
		Expect(keysort.IsErrUnknownAlgorithm(err)).To(BeTrue())
	})

	It("should accept seed only with partition", func() {
		Expect((&keysort.Algorithm{Kind: keysort.KindQuick, Seed: "7"}).Validate()).To(Succeed())
		Expect((&keysort.Algorithm{Kind: keysort.KindMerge, Seed: "7"}).Validate()).NotTo(Succeed())
		Expect((&keysort.Algorithm{Kind: keysort.KindPartition, Seed: "x"}).Validate()).NotTo(Succeed())
	})

	It("should describe itself", func() {
		algo := &keysort.Algorithm{Kind: "quick", Decreasing: true, Seed: "3"}
		Expect(algo.String()).To(Equal("partition(descending, seed=3)"))
		Expect(algo.Direction()).To(Equal(keysort.Descending))
	})
})

var _ = Describe("Sort", func() {
	fns := sortFuncs[int64]()
	for _, kind := range keysort.Kinds() {
		sortFn := fns[kind]
		Context(kind, func() {
			It("should handle empty and single-element input", func() {
				Expect(sortFn(nil, keysort.Ascending)).To(BeEmpty())
				Expect(sortFn([]int64{}, keysort.Descending)).To(BeEmpty())
				Expect(sortFn([]int64{7}, keysort.Ascending)).To(Equal([]int64{7}))
			})

			It("should sort ascending and descending", func() {
				keys := []int64{5, 3, 5, 1, -2, 0, 3}
				Expect(sortFn(keys, keysort.Ascending)).To(Equal([]int64{-2, 0, 1, 3, 3, 5, 5}))
				Expect(sortFn(keys, keysort.Descending)).To(Equal([]int64{5, 5, 3, 3, 1, 0, -2}))
			})

			It("should not modify the input", func() {
				keys := []int64{3, 1, 2}
				_ = sortFn(keys, keysort.Ascending)
				Expect(keys).To(Equal([]int64{3, 1, 2}))
			})

			It("should be idempotent", func() {
				keys := trand.Ints(500, 50)
				once := sortFn(keys, keysort.Ascending)
				Expect(sortFn(once, keysort.Ascending)).To(Equal(once))
			})

			It("should produce a sorted permutation", func() {
				keys := trand.Ints(1000, 3)
				for _, dir := range []keysort.Direction{keysort.Ascending, keysort.Descending} {
					sorted := sortFn(keys, dir)
					Expect(keysort.IsSorted(sorted, dir)).To(BeTrue())
					Expect(sameMultiset(keys, sorted)).To(BeTrue())
				}
			})

			It("should reverse between directions", func() {
				keys := trand.Ints(300, 1000)
				asc := sortFn(keys, keysort.Ascending)
				desc := sortFn(keys, keysort.Descending)
				slices.Reverse(desc)
				Expect(desc).To(Equal(asc))
			})
		})
	}

	It("should agree across algorithms", func() {
		var (
			floats  = trand.Floats(700, -10, 10)
			strs    = trand.Strings(700, 20, 4)
			wantF   = keysort.Merge(floats, keysort.Descending)
			wantS   = keysort.Merge(strs, keysort.Ascending)
			floatFn = sortFuncs[float64]()
			strFn   = sortFuncs[string]()
		)
		for _, kind := range keysort.Kinds() {
			Expect(floatFn[kind](floats, keysort.Descending)).To(Equal(wantF), kind)
			Expect(strFn[kind](strs, keysort.Ascending)).To(Equal(wantS), kind)
		}
	})

	It("should sort with adversarial pivots", func() {
		keys := make([]int64, 200)
		for i := range keys {
			keys[i] = int64(i)
		}
		want := slices.Clone(keys)
		slices.Reverse(keys)
		Expect(keysort.Partition(keys, keysort.Ascending, firstPivot{})).To(Equal(want))
		Expect(keysort.Partition(keys, keysort.Ascending, lastPivot{})).To(Equal(want))
	})

	It("should place all pivot-equal keys in a single pass", func() {
		var (
			keys = trand.Ints(1000, 3)
			rnd  = &countingRand{Rand: keysort.NewRand(1)}
		)
		sorted := keysort.Partition(keys, keysort.Ascending, rnd)
		Expect(keysort.IsSorted(sorted, keysort.Ascending)).To(BeTrue())
		Expect(sameMultiset(sorted, keys)).To(BeTrue())
		// each pass retires one distinct value
		Expect(rnd.calls).To(BeNumerically("<=", 3))

		same := make([]int64, 1000)
		rnd = &countingRand{Rand: keysort.NewRand(1)}
		Expect(keysort.Partition(same, keysort.Descending, rnd)).To(Equal(same))
		Expect(rnd.calls).To(Equal(1))
	})

	It("should reproduce results with the same seed", func() {
		keys := trand.Floats(100, 0, 1)
		a := keysort.Partition(keys, keysort.Ascending, keysort.NewRand(1))
		b := keysort.Partition(keys, keysort.Ascending, keysort.NewRand(1))
		Expect(a).To(Equal(b))
	})

	It("should dispatch by algorithm", func() {
		keys := []string{"b", "c", "a"}
		for _, kind := range []string{"", "bubble", "merge", "quick"} {
			sorted, err := keysort.Sort(keys, &keysort.Algorithm{Kind: kind, Decreasing: true})
			Expect(err).NotTo(HaveOccurred())
			Expect(sorted).To(Equal([]string{"c", "b", "a"}))

			fn, err := keysort.Lookup[string](kind)
			Expect(err).NotTo(HaveOccurred())
			Expect(fn(keys, keysort.Ascending)).To(Equal([]string{"a", "b", "c"}))
		}
	})

	It("should reject NaN keys", func() {
		_, err := keysort.Sort([]float64{1, math.NaN(), 0}, &keysort.Algorithm{})
		Expect(err).To(HaveOccurred())
		Expect(keysort.IsErrPrecondition(err)).To(BeTrue())
	})

	It("should check keys for NaN", func() {
		Expect(keysort.CheckKeys([]float64{math.Inf(-1), 0, 1})).To(Succeed())
		Expect(keysort.CheckKeys([]string{"a", ""})).To(Succeed())
		err := keysort.CheckKeys([]float64{0, 1, math.NaN()})
		Expect(keysort.IsErrPrecondition(err)).To(BeTrue())
		Expect(err.Error()).To(ContainSubstring("index 2"))
	})

	It("should keep infinities ordered", func() {
		sorted, err := keysort.Sort([]float64{math.Inf(1), 0, math.Inf(-1)}, &keysort.Algorithm{Kind: "quick"})
		Expect(err).NotTo(HaveOccurred())
		Expect(sorted).To(Equal([]float64{math.Inf(-1), 0, math.Inf(1)}))
	})
})

var _ = Describe("MergeFunc", func() {
	type pair struct {
		k int
		v string
	}
	It("should keep equal elements in input order", func() {
		in := []pair{{2, "a"}, {1, "b"}, {2, "c"}, {1, "d"}, {0, "e"}}
		out := keysort.MergeFunc(in, func(a, b pair) bool { return a.k < b.k })
		Expect(out).To(Equal([]pair{{0, "e"}, {1, "b"}, {1, "d"}, {2, "a"}, {2, "c"}}))
	})
})
