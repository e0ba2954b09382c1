// Package table loads tabular stock records from CSV files, normalizes them, and
// exposes attribute columns as keyed sequences for sorting.
/*
 * Copyright (c) 2018-2026, NVIDIA CORPORATION. All rights reserved.
 */
package table

import (
	"math"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/pkg/errors"
)

var (
	// normalized header => attribute
	columnAliases = map[string]string{
		"Close/Last": AttrClose,
		"Ticker":     AttrCompany,
		"Symbol":     AttrCompany,
	}

	dateLayouts = []string{
		time.DateOnly,
		time.DateTime,
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05-07:00",
		"2006/01/02",
		"01/02/2006",
		"1/2/2006",
	}

	errEmpty = errors.New("empty value")
)

// titleCase trims and title-cases a column name: "  adj close" => "Adj Close".
func titleCase(s string) string {
	var (
		sb         strings.Builder
		prevLetter bool
	)
	s = strings.TrimSpace(s)
	sb.Grow(len(s))
	for _, r := range s {
		isLetter := unicode.IsLetter(r)
		switch {
		case isLetter && !prevLetter:
			sb.WriteRune(unicode.ToUpper(r))
		case isLetter:
			sb.WriteRune(unicode.ToLower(r))
		default:
			sb.WriteRune(r)
		}
		prevLetter = isLetter
	}
	return sb.String()
}

// columnAttr maps a raw CSV header to a known attribute; ok is false for
// columns that are not kept (e.g. "Adj Close").
func columnAttr(header string) (attr string, ok bool) {
	name := titleCase(header)
	if alias, ok := columnAliases[name]; ok {
		return alias, true
	}
	_, ok = attrTypes[name]
	return name, ok
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errEmpty
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.Errorf("unrecognized date %q", s)
}

// parseFloat accepts "$1,234.50"; NaN and infinities count as missing.
func parseFloat(s string) (float64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0, errEmpty
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errors.Errorf("non-finite value %q", s)
	}
	return f, nil
}

// parseVolume truncates fractional volumes ("1.5e6" => 1500000).
func parseVolume(s string) (int64, error) {
	f, err := parseFloat(s)
	if err != nil {
		return 0, err
	}
	// float64(math.MaxInt64) rounds up to 2^63
	if f >= 0x1p63 || f < -0x1p63 {
		return 0, errors.Errorf("volume %q out of range", s)
	}
	return int64(f), nil
}
