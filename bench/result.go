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

	"github.com/pkg/errors"
)

// CSV columns
const (
	colAlgo      = "algo"
	colAttribute = "attribute"
	colN         = "n"
	colRepeats   = "repeats"
	colSeconds   = "seconds"
)

var header = []string{colAlgo, colAttribute, colN, colRepeats, colSeconds}

// Result is a single measurement: median time to sort the first N keys of Attribute.
type Result struct {
	Algo      string  `json:"algo"`
	Attribute string  `json:"attribute"`
	N         int     `json:"n"`
	Repeats   int     `json:"repeats"`
	Seconds   float64 `json:"seconds"`
}

func (r *Result) values() []string {
	return []string{
		r.Algo,
		r.Attribute,
		strconv.Itoa(r.N),
		strconv.Itoa(r.Repeats),
		strconv.FormatFloat(r.Seconds, 'f', -1, 64),
	}
}

func WriteCSV(w io.Writer, results []Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for i := range results {
		if err := cw.Write(results[i].values()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV parses what WriteCSV writes; columns may come in any order.
func ReadCSV(r io.Reader) ([]Result, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	hdr, err := cr.Read()
	if err != nil {
		if err == io.EOF {
			return nil, errors.New("empty benchmark file (no header)")
		}
		return nil, err
	}
	idx := make(map[string]int, len(hdr))
	for i, h := range hdr {
		idx[h] = i
	}
	for _, col := range header {
		if _, ok := idx[col]; !ok {
			return nil, errors.Errorf("missing column %q", col)
		}
	}
	var results []Result
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		res := Result{Algo: row[idx[colAlgo]], Attribute: row[idx[colAttribute]]}
		if res.N, err = strconv.Atoi(row[idx[colN]]); err != nil {
			return nil, errors.Wrapf(err, "line %d: invalid %s", line, colN)
		}
		if res.Repeats, err = strconv.Atoi(row[idx[colRepeats]]); err != nil {
			return nil, errors.Wrapf(err, "line %d: invalid %s", line, colRepeats)
		}
		if res.Seconds, err = strconv.ParseFloat(row[idx[colSeconds]], 64); err != nil {
			return nil, errors.Wrapf(err, "line %d: invalid %s", line, colSeconds)
		}
		results = append(results, res)
	}
	return results, nil
}
