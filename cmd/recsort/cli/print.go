// Package cli implements the recsort commands.
/*
 * Copyright (c) 2018-2026, NVIDIA CORPORATION. All rights reserved.
 */
package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/recsort/recsort/bench"
	"github.com/recsort/recsort/table"
)

func newTabWriter(w io.Writer) *tabwriter.Writer { return tabwriter.NewWriter(w, 0, 8, 2, ' ', 0) }

func printRows(w io.Writer, header []string, rows [][]string) error {
	tw := newTabWriter(w)
	fmt.Fprintln(tw, strings.ToUpper(strings.Join(header, "\t")))
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}

func printRecords(w io.Writer, recs []*table.Record, top int) error {
	if top > 0 && len(recs) > top {
		recs = recs[:top]
	}
	rows := make([][]string, 0, len(recs))
	for _, rec := range recs {
		rows = append(rows, rec.Values())
	}
	return printRows(w, table.Attributes, rows)
}

func printCompanies(w io.Writer, counts []table.CompanyCount) error {
	rows := make([][]string, 0, len(counts))
	for _, cc := range counts {
		rows = append(rows, []string{cc.Name, strconv.Itoa(cc.Count)})
	}
	return printRows(w, []string{table.AttrCompany, "Rows"}, rows)
}

func printResults(w io.Writer, results []bench.Result) error {
	rows := make([][]string, 0, len(results))
	for i := range results {
		res := &results[i]
		rows = append(rows, []string{
			res.Algo, res.Attribute, strconv.Itoa(res.N), strconv.Itoa(res.Repeats),
			strconv.FormatFloat(res.Seconds, 'f', 6, 64),
		})
	}
	return printRows(w, []string{"Algo", "Attribute", "N", "Repeats", "Seconds"}, rows)
}
