// Package table loads tabular stock records from CSV files, normalizes them, and
// exposes attribute columns as keyed sequences for sorting.
/*
 * Copyright (c) 2018-2026, NVIDIA CORPORATION. All rights reserved.
 */
package table_test

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/recsort/recsort/cmn/cos"
	"github.com/recsort/recsort/table"
)

const (
	tslaCSV = `date,open,high,low,close,adj close,volume
2020-01-03,88.1,90.8,87.38,88.6,88.6,88892500
2020-01-02,84.9,86.14,84.34,86.05,86.05,47660500
2020-01-06,88.09,90.31,88,90.31,90.31,50665000
`
	aaplCSV = ` Date , Open, High, Low, Close, Volume, Ticker
2020-01-02,74.06,75.15,73.8,75.09,135480400,Apple
2020-01-03,74.29,75.14,74.13,74.36,146322800,Apple
bad-date,1,1,1,1,1,Apple
2020-01-07,74.96,75.22,74.37,74.6,,Apple
2020-01-08,74.29,76.11,74.29,75.8,1.325e8,Apple
`
)

var _ = Describe("Load", func() {
	var dir string

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
	})

	It("should glob top-level files including lz4", func() {
		writeFile(dir, "TSLA.csv", tslaCSV)
		writeLz4(dir, "AAPL.csv.lz4", aaplCSV)
		writeFile(dir, "notes.txt", "x")
		Expect(os.Mkdir(filepath.Join(dir, "sub"), 0o755)).To(Succeed())
		writeFile(filepath.Join(dir, "sub"), "NESTED.csv", tslaCSV)

		paths, err := table.Glob(dir, "*.csv")
		Expect(err).NotTo(HaveOccurred())
		Expect(paths).To(Equal([]string{
			filepath.Join(dir, "AAPL.csv.lz4"),
			filepath.Join(dir, "TSLA.csv"),
		}))
	})

	It("should fail to glob a missing directory", func() {
		_, err := table.Glob(filepath.Join(dir, "nope"), "*.csv")
		Expect(cos.IsErrNotFound(err)).To(BeTrue())

		_, err = table.Glob(dir, "[")
		Expect(err).To(HaveOccurred())
	})

	It("should combine, normalize, and order by date", func() {
		tsla := writeFile(dir, "TSLA.csv", tslaCSV)
		aapl := writeLz4(dir, "AAPL.csv.lz4", aaplCSV)

		t, err := table.Load(context.Background(), []string{tsla, aapl}, 2)
		Expect(err).NotTo(HaveOccurred())
		Expect(t.Len()).To(Equal(6)) // two malformed rows dropped
		Expect(t.Sources).To(Equal([]string{tsla, aapl}))

		var (
			dates     []string
			companies []string
		)
		for _, rec := range t.Records {
			dates = append(dates, rec.Date.Format(time.DateOnly))
			companies = append(companies, rec.Company)
		}
		Expect(dates).To(Equal([]string{
			"2020-01-02", "2020-01-02", "2020-01-03", "2020-01-03", "2020-01-06", "2020-01-08",
		}))
		// equal dates keep input (file) order
		Expect(companies).To(Equal([]string{"TSLA", "Apple", "TSLA", "Apple", "TSLA", "Apple"}))

		last := t.Records[5]
		Expect(last.Volume).To(Equal(int64(132500000)))
		Expect(last.Close).To(Equal(75.8))
		Expect(last.Source).To(Equal(aapl))
	})

	It("should keep missing optional prices as NaN", func() {
		path := writeFile(dir, "x.csv", "Date,Close,Volume,Open\n2021-05-01,1.5,10,\n")
		recs, err := table.LoadFile(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(recs).To(HaveLen(1))
		Expect(math.IsNaN(recs[0].Open)).To(BeTrue())
		Expect(recs[0].Company).To(Equal("x"))
	})

	It("should accept currency-formatted prices and alternative headers", func() {
		path := writeFile(dir, "msft.csv", "Date,Close/Last,Volume,Symbol\n03/15/2024,\"$1,234.50\",\"2,000\",MSFT\n")
		recs, err := table.LoadFile(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(recs).To(HaveLen(1))
		Expect(recs[0].Close).To(Equal(1234.5))
		Expect(recs[0].Volume).To(Equal(int64(2000)))
		Expect(recs[0].Company).To(Equal("MSFT"))
		Expect(recs[0].Date.Format(time.DateOnly)).To(Equal("2024-03-15"))
	})

	It("should drop volumes outside the int64 range", func() {
		path := writeFile(dir, "big.csv", "Date,Close,Volume\n"+
			"2021-05-01,1,9223372036854775808\n"+
			"2021-05-02,2,-9223372036854775808\n"+
			"2021-05-03,3,1e19\n"+
			"2021-05-04,4,1e18\n")
		recs, err := table.LoadFile(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(recs).To(HaveLen(2))
		Expect(recs[0].Volume).To(Equal(int64(math.MinInt64)))
		Expect(recs[1].Volume).To(Equal(int64(1e18)))
	})

	It("should report missing required columns", func() {
		path := writeFile(dir, "bad.csv", "Date,Open\n2020-01-01,1\n")
		_, err := table.LoadFile(path)
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("Close, Volume"))
	})

	It("should collect errors from all failing files", func() {
		good := writeFile(dir, "good.csv", tslaCSV)
		_, err := table.Load(context.Background(), []string{
			good, filepath.Join(dir, "missing1.csv"), filepath.Join(dir, "missing2.csv"),
		}, 0)
		Expect(err).To(HaveOccurred())
		errs, ok := err.(*cos.Errs)
		Expect(ok).To(BeTrue())
		Expect(errs.Cnt()).To(Equal(2))
	})

	It("should fail without input files", func() {
		_, err := table.Load(context.Background(), nil, 1)
		Expect(err).To(HaveOccurred())
	})

	It("should stop when canceled", func() {
		path := writeFile(dir, "TSLA.csv", tslaCSV)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := table.Load(ctx, []string{path}, 1)
		Expect(err).To(MatchError(context.Canceled))
	})
})
