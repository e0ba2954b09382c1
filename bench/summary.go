// Package bench measures sorting algorithms on table attributes and summarizes
// the results as per-size speedups.
/*
 * Copyright (c) 2018-2026, NVIDIA CORPORATION. All rights reserved.
 */
package bench

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/recsort/recsort/keysort"
)

// speedups are relative to this (quadratic) baseline
const baseline = keysort.KindExchange

type (
	// SummaryRow holds median seconds per algorithm for one (attribute, n) and
	// the speedup of each other algorithm over the baseline, when both are present.
	SummaryRow struct {
		Attribute string             `json:"attribute"`
		N         int                `json:"n"`
		Seconds   map[string]float64 `json:"seconds"`
		Speedups  map[string]float64 `json:"speedups,omitempty"`
	}
	groupKey struct {
		attribute string
		n         int
	}
)

func SpeedupColumn(algo string) string { return algo + "_speedup_vs_" + baseline }

// Summarize groups results by (attribute, algorithm, n), takes the median of each group,
// and pivots algorithms into columns. Algorithm aliases (e.g. "bubble", "quick") are
// resolved. Rows are ordered by attribute, then n.
func Summarize(results []Result) []SummaryRow {
	var (
		order   []groupKey
		samples = make(map[groupKey]map[string][]float64)
	)
	for i := range results {
		res := &results[i]
		algo := (&keysort.Algorithm{Kind: res.Algo}).Canonical()
		gk := groupKey{res.Attribute, res.N}
		byAlgo, ok := samples[gk]
		if !ok {
			byAlgo = make(map[string][]float64, 3)
			samples[gk] = byAlgo
			order = append(order, gk)
		}
		byAlgo[algo] = append(byAlgo[algo], res.Seconds)
	}

	order = keysort.MergeFunc(order, func(a, b groupKey) bool {
		if a.attribute != b.attribute {
			return a.attribute < b.attribute
		}
		return a.n < b.n
	})
	rows := make([]SummaryRow, 0, len(order))
	for _, gk := range order {
		row := SummaryRow{Attribute: gk.attribute, N: gk.n, Seconds: make(map[string]float64, 3)}
		for algo, secs := range samples[gk] {
			row.Seconds[algo] = median(secs)
		}
		if base, ok := row.Seconds[baseline]; ok {
			for algo, secs := range row.Seconds {
				if algo == baseline || secs <= 0 {
					continue
				}
				if row.Speedups == nil {
					row.Speedups = make(map[string]float64, 2)
				}
				row.Speedups[algo] = base / secs
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// WriteSummaryCSV writes one line per row: attribute, n, seconds per algorithm,
// then speedup columns. Columns are limited to algorithms present in `rows`;
// missing values are left empty.
func WriteSummaryCSV(w io.Writer, rows []SummaryRow) error {
	var algos, speedups []string
	for _, kind := range keysort.Kinds() {
		var hasSecs, hasSpeedup bool
		for i := range rows {
			_, ok := rows[i].Seconds[kind]
			hasSecs = hasSecs || ok
			_, ok = rows[i].Speedups[kind]
			hasSpeedup = hasSpeedup || ok
		}
		if hasSecs {
			algos = append(algos, kind)
		}
		if hasSpeedup {
			speedups = append(speedups, kind)
		}
	}

	cw := csv.NewWriter(w)
	hdr := append([]string{colAttribute, colN}, algos...)
	for _, algo := range speedups {
		hdr = append(hdr, SpeedupColumn(algo))
	}
	if err := cw.Write(hdr); err != nil {
		return err
	}
	for i := range rows {
		row := &rows[i]
		line := make([]string, 0, len(hdr))
		line = append(line, row.Attribute, strconv.Itoa(row.N))
		for _, algo := range algos {
			line = append(line, fmtOpt(row.Seconds, algo))
		}
		for _, algo := range speedups {
			line = append(line, fmtOpt(row.Speedups, algo))
		}
		if err := cw.Write(line); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func fmtOpt(m map[string]float64, key string) string {
	v, ok := m[key]
	if !ok {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
