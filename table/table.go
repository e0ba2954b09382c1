// Package table loads tabular stock records from CSV files, normalizes them, and
// exposes attribute columns as keyed sequences for sorting.
/*
 * Copyright (c) 2018-2026, NVIDIA CORPORATION. All rights reserved.
 */
package table

import (
	"math"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/pkg/errors"

	"github.com/recsort/recsort/keysort"
)

// company filter value that selects everything
const AllCompanies = "All"

var nan = math.NaN()

type (
	// Table is an immutable, ordered collection of records. Record positions
	// (0..Len()-1) serve as identifiers in the keyed sequences it produces.
	Table struct {
		Records []*Record
		Sources []string
	}
	CompanyCount struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}
)

func New(recs []*Record, sources ...string) *Table {
	return &Table{Records: recs, Sources: sources}
}

func (t *Table) Len() int { return len(t.Records) }

// Companies returns distinct companies, most frequent first (ties by name).
func (t *Table) Companies() []CompanyCount {
	counts := make(map[string]int, 4)
	for _, rec := range t.Records {
		counts[rec.Company]++
	}
	out := make([]CompanyCount, 0, len(counts))
	for name, cnt := range counts {
		out = append(out, CompanyCount{Name: name, Count: cnt})
	}
	return keysort.MergeFunc(out, func(a, b CompanyCount) bool {
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.Name < b.Name
	})
}

// Filter selects records of a single company (case-insensitive);
// empty or "All" returns the table itself.
func (t *Table) Filter(company string) *Table {
	company = strings.TrimSpace(company)
	if company == "" || strings.EqualFold(company, AllCompanies) {
		return t
	}
	recs := make([]*Record, 0, len(t.Records)/2)
	for _, rec := range t.Records {
		if strings.EqualFold(rec.Company, company) {
			recs = append(recs, rec)
		}
	}
	return New(recs, t.Sources...)
}

// Head returns the first n records; n <= 0 or n >= Len() returns the table itself.
func (t *Table) Head(n int) *Table {
	if n <= 0 || n >= len(t.Records) {
		return t
	}
	return New(t.Records[:n], t.Sources...)
}

//
// keyed sequences
//

func (t *Table) FloatKeys(attr string) (seq keysort.KeyedSeq[float64, int], err error) {
	name, err := t.checkType(attr, KeyFloat)
	if err != nil {
		return seq, err
	}
	seq.Keys, seq.IDs = make([]float64, len(t.Records)), positions(len(t.Records))
	for i, rec := range t.Records {
		seq.Keys[i] = rec.floatKey(name)
	}
	return seq, nil
}

func (t *Table) IntKeys(attr string) (seq keysort.KeyedSeq[int64, int], err error) {
	name, err := t.checkType(attr, KeyInt)
	if err != nil {
		return seq, err
	}
	seq.Keys, seq.IDs = make([]int64, len(t.Records)), positions(len(t.Records))
	for i, rec := range t.Records {
		seq.Keys[i] = rec.intKey(name)
	}
	return seq, nil
}

func (t *Table) StringKeys(attr string) (seq keysort.KeyedSeq[string, int], err error) {
	if _, err = t.checkType(attr, KeyString); err != nil {
		return seq, err
	}
	seq.Keys, seq.IDs = make([]string, len(t.Records)), positions(len(t.Records))
	for i, rec := range t.Records {
		seq.Keys[i] = rec.Company
	}
	return seq, nil
}

func (*Table) checkType(attr, want string) (string, error) {
	name, err := NormalizeAttr(attr)
	if err != nil {
		return "", err
	}
	if have := attrTypes[name]; have != want {
		return "", &ErrKeyType{attr: name, have: have, want: want}
	}
	return name, nil
}

func positions(n int) []int {
	ids := make([]int, n)
	for i := range ids {
		ids[i] = i
	}
	return ids
}

// Project returns records in the given order of positions.
func (t *Table) Project(order []int) ([]*Record, error) {
	out := make([]*Record, len(order))
	for i, id := range order {
		if id < 0 || id >= len(t.Records) {
			return nil, errors.Errorf("record position %d out of range [0, %d)", id, len(t.Records))
		}
		out[i] = t.Records[id]
	}
	return out, nil
}

// SortBy orders records by one attribute using the given algorithm;
// records with equal keys keep their relative order.
func (t *Table) SortBy(attr string, algo *keysort.Algorithm) ([]*Record, error) {
	typ, err := KeyType(attr)
	if err != nil {
		return nil, err
	}
	var order []int
	switch typ {
	case KeyFloat:
		seq, err := t.FloatKeys(attr)
		if err != nil {
			return nil, err
		}
		order, err = keysort.SortAndRecover(seq, algo)
		if err != nil {
			return nil, errors.Wrapf(err, "sort by %s", attr)
		}
	case KeyInt:
		seq, err := t.IntKeys(attr)
		if err != nil {
			return nil, err
		}
		order, err = keysort.SortAndRecover(seq, algo)
		if err != nil {
			return nil, errors.Wrapf(err, "sort by %s", attr)
		}
	default:
		seq, err := t.StringKeys(attr)
		if err != nil {
			return nil, err
		}
		order, err = keysort.SortAndRecover(seq, algo)
		if err != nil {
			return nil, errors.Wrapf(err, "sort by %s", attr)
		}
	}
	return t.Project(order)
}

// Digest identifies table content (order-sensitive).
func (t *Table) Digest() uint64 {
	h := xxhash.New()
	for _, rec := range t.Records {
		h.WriteString(rec.String())
		h.WriteString("\n")
	}
	return h.Sum64()
}
