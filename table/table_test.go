// Package table loads tabular stock records from CSV files, normalizes them, and
// exposes attribute columns as keyed sequences for sorting.
/*
 * Copyright (c) 2018-2026, NVIDIA CORPORATION. All rights reserved.
 */
package table_test

import (
	"math"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/recsort/recsort/keysort"
	"github.com/recsort/recsort/table"
)

func rec(day int, cl float64, vol int64, company string) *table.Record {
	return &table.Record{
		Date:    time.Date(2020, time.January, day, 0, 0, 0, 0, time.UTC),
		Open:    cl - 1,
		High:    cl + 1,
		Low:     cl - 2,
		Close:   cl,
		Volume:  vol,
		Company: company,
	}
}

func companiesOf(recs []*table.Record) (out []string) {
	for _, r := range recs {
		out = append(out, r.Company)
	}
	return
}

var _ = Describe("Table", func() {
	var t *table.Table

	BeforeEach(func() {
		t = table.New([]*table.Record{
			rec(1, 10, 500, "Tesla"),
			rec(2, 12, 100, "Apple"),
			rec(3, 10, 300, "Tesla"),
			rec(4, 9, 100, "Apple"),
			rec(5, 11, 700, "Tesla"),
		}, "a.csv", "b.csv")
	})

	It("should normalize attribute names", func() {
		name, err := table.NormalizeAttr("close")
		Expect(err).NotTo(HaveOccurred())
		Expect(name).To(Equal(table.AttrClose))

		typ, err := table.KeyType("VOLUME")
		Expect(err).NotTo(HaveOccurred())
		Expect(typ).To(Equal(table.KeyInt))

		_, err = table.KeyType("Adj Close")
		Expect(err).To(BeAssignableToTypeOf(&table.ErrUnknownAttribute{}))
	})

	It("should count companies", func() {
		Expect(t.Companies()).To(Equal([]table.CompanyCount{{Name: "Tesla", Count: 3}, {Name: "Apple", Count: 2}}))
	})

	It("should filter and truncate", func() {
		Expect(t.Filter("")).To(BeIdenticalTo(t))
		Expect(t.Filter("all")).To(BeIdenticalTo(t))
		Expect(t.Filter("apple").Len()).To(Equal(2))
		Expect(t.Filter("Nvidia").Len()).To(Equal(0))
		Expect(t.Head(2).Len()).To(Equal(2))
		Expect(t.Head(0)).To(BeIdenticalTo(t))
		Expect(t.Head(100)).To(BeIdenticalTo(t))
	})

	It("should extract typed keys", func() {
		fseq, err := t.FloatKeys("close")
		Expect(err).NotTo(HaveOccurred())
		Expect(fseq.Keys).To(Equal([]float64{10, 12, 10, 9, 11}))
		Expect(fseq.IDs).To(Equal([]int{0, 1, 2, 3, 4}))

		iseq, err := t.IntKeys("Date")
		Expect(err).NotTo(HaveOccurred())
		Expect(iseq.Keys[0]).To(Equal(t.Records[0].Date.Unix()))

		sseq, err := t.StringKeys("company")
		Expect(err).NotTo(HaveOccurred())
		Expect(sseq.Keys).To(Equal([]string{"Tesla", "Apple", "Tesla", "Apple", "Tesla"}))

		_, err = t.IntKeys("Close")
		Expect(err).To(BeAssignableToTypeOf(&table.ErrKeyType{}))
	})

	DescribeTable("should sort by attribute stably",
		func(kind string) {
			recs, err := t.SortBy("close", &keysort.Algorithm{Kind: kind})
			Expect(err).NotTo(HaveOccurred())
			days := make([]int, 0, len(recs))
			for _, r := range recs {
				days = append(days, r.Date.Day())
			}
			Expect(days).To(Equal([]int{4, 1, 3, 5, 2}))

			recs, err = t.SortBy("Volume", &keysort.Algorithm{Kind: kind, Decreasing: true})
			Expect(err).NotTo(HaveOccurred())
			Expect(recs[0].Volume).To(Equal(int64(700)))
			Expect(recs[3].Date.Day()).To(Equal(2)) // tie on 100 keeps day 2 before day 4
			Expect(recs[4].Date.Day()).To(Equal(4))

			recs, err = t.SortBy("Company", &keysort.Algorithm{Kind: kind})
			Expect(err).NotTo(HaveOccurred())
			Expect(companiesOf(recs)).To(Equal([]string{"Apple", "Apple", "Tesla", "Tesla", "Tesla"}))
			Expect(recs[2].Date.Day()).To(Equal(1))
		},
		Entry("exchange", keysort.KindExchange),
		Entry("merge", keysort.KindMerge),
		Entry("partition", keysort.KindPartition),
	)

	It("should reject NaN keys", func() {
		t.Records[2].Open = math.NaN()
		_, err := t.SortBy("Open", &keysort.Algorithm{})
		Expect(keysort.IsErrPrecondition(err)).To(BeTrue())
	})

	It("should project positions", func() {
		recs, err := t.Project([]int{4, 0})
		Expect(err).NotTo(HaveOccurred())
		Expect(recs).To(Equal([]*table.Record{t.Records[4], t.Records[0]}))

		_, err = t.Project([]int{5})
		Expect(err).To(HaveOccurred())
	})

	It("should digest content in order", func() {
		d := t.Digest()
		Expect(table.New(t.Records).Digest()).To(Equal(d))
		Expect(t.Head(4).Digest()).NotTo(Equal(d))
	})

	It("should format values", func() {
		Expect(t.Records[0].Values()).To(Equal([]string{
			"2020-01-01", "9.0000", "11.0000", "8.0000", "10.0000", "500", "Tesla",
		}))
	})
})
