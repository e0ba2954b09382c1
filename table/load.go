// Package table loads tabular stock records from CSV files, normalizes them, and
// exposes attribute columns as keyed sequences for sorting.
/*
 * Copyright (c) 2018-2026, NVIDIA CORPORATION. All rights reserved.
 */
package table

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/karrick/godirwalk"
	"github.com/pierrec/lz4/v4"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/recsort/recsort/cmn/cos"
	"github.com/recsort/recsort/cmn/nlog"
	"github.com/recsort/recsort/keysort"
)

// compressed inputs: "AAPL.csv.lz4" matches "*.csv"
const extLz4 = ".lz4"

// required columns: a row without any of them is dropped
var required = []string{AttrDate, AttrClose, AttrVolume}

type (
	// top-level (non-recursive) directory scan
	globber struct {
		root    string
		pattern string
		matches []string
	}
	// attribute => column index (absent columns have no entry)
	layout map[string]int
)

/////////////
// globber //
/////////////

// Glob returns files directly under dir whose names (sans ".lz4") match pattern,
// in lexical order.
func Glob(dir, pattern string) ([]string, error) {
	if _, err := filepath.Match(pattern, ""); err != nil {
		return nil, errors.Wrapf(err, "invalid pattern %q", pattern)
	}
	finfo, err := os.Stat(dir)
	if err != nil {
		if cos.IsNotExist(err) {
			return nil, cos.NewErrNotFound(nil, "directory "+dir)
		}
		return nil, err
	}
	if !finfo.IsDir() {
		return nil, errors.Errorf("%q is not a directory", dir)
	}
	g := &globber{root: filepath.Clean(dir), pattern: pattern}
	err = godirwalk.Walk(g.root, &godirwalk.Options{
		Unsorted:      false,
		Callback:      g.Callback,
		ErrorCallback: g.ErrorCallback,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to scan %q", dir)
	}
	return g.matches, nil
}

func (g *globber) Callback(pathname string, de *godirwalk.Dirent) error {
	if de.IsDir() {
		if pathname != g.root {
			return filepath.SkipDir
		}
		return nil
	}
	name := strings.TrimSuffix(de.Name(), extLz4)
	if ok, _ := filepath.Match(g.pattern, name); ok {
		g.matches = append(g.matches, pathname)
	}
	return nil
}

func (*globber) ErrorCallback(pathname string, err error) godirwalk.ErrorAction {
	nlog.Warningf("error accessing %s: %v", pathname, err)
	return godirwalk.Halt
}

//////////
// load //
//////////

// Load reads all files in parallel (at most `concurrency` at a time), combines
// their rows in input order, and orders the result by date. Rows with equal dates
// keep their relative order. Per-file failures are collected and reported together.
func Load(ctx context.Context, paths []string, concurrency int) (*Table, error) {
	if len(paths) == 0 {
		return nil, errors.New("no input files")
	}
	var (
		parts   = make([][]*Record, len(paths))
		errs    = cos.NewErrs()
		g, gctx = errgroup.WithContext(ctx)
	)
	if concurrency > 0 {
		g.SetLimit(concurrency)
	}
	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			recs, err := LoadFile(path)
			if err != nil {
				errs.Add(err)
				return nil
			}
			parts[i] = recs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}

	var n int
	for _, recs := range parts {
		n += len(recs)
	}
	combined := make([]*Record, 0, n)
	for _, recs := range parts {
		combined = append(combined, recs...)
	}
	byDate := keysort.MergeFunc(combined, func(a, b *Record) bool { return a.Date.Before(b.Date) })
	return New(byDate, paths...), nil
}

// LoadFile parses a single CSV (optionally lz4-compressed) file.
func LoadFile(path string) ([]*Record, error) {
	fh, err := os.Open(path)
	if err != nil {
		if cos.IsNotExist(err) {
			return nil, cos.NewErrNotFound(nil, "file "+path)
		}
		return nil, err
	}
	defer fh.Close()

	var r io.Reader = fh
	if strings.HasSuffix(path, extLz4) {
		r = lz4.NewReader(fh)
	}
	recs, dropped, err := parse(r, stem(path), path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load %q", path)
	}
	if dropped > 0 {
		nlog.Warningf("%s: dropped %d row%s with missing or malformed %s", path, dropped, cos.Plural(dropped),
			strings.Join(required, "/"))
	}
	return recs, nil
}

// parse reads a header row followed by data rows; company defaults to `company`
// when the file has no company column.
func parse(r io.Reader, company, source string) (recs []*Record, dropped int, err error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err != nil {
		if err == io.EOF {
			return nil, 0, errors.New("empty file (no header)")
		}
		return nil, 0, err
	}
	lay := newLayout(header)
	if missing := lay.missing(); len(missing) > 0 {
		return nil, 0, errors.Errorf("missing required column%s: %s", cos.Plural(len(missing)),
			strings.Join(missing, ", "))
	}
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, err
		}
		rec, ok := lay.record(row, company)
		if !ok {
			dropped++
			continue
		}
		rec.Source = source
		recs = append(recs, rec)
	}
	return recs, dropped, nil
}

// "data/TSLA.csv.lz4" => "TSLA"
func stem(path string) string {
	name := strings.TrimSuffix(filepath.Base(path), extLz4)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

////////////
// layout //
////////////

func newLayout(header []string) layout {
	var (
		lay   = make(layout, len(attrTypes))
		exact = make(map[string]bool, len(attrTypes))
	)
	for i, h := range header {
		attr, ok := columnAttr(h)
		if !ok {
			continue
		}
		// first occurrence wins, except that an exact name (e.g. "Company") beats an alias ("Ticker")
		isExact := titleCase(h) == attr
		if _, dup := lay[attr]; dup && (exact[attr] || !isExact) {
			continue
		}
		lay[attr], exact[attr] = i, isExact
	}
	return lay
}

func (lay layout) missing() (names []string) {
	for _, attr := range required {
		if _, ok := lay[attr]; !ok {
			names = append(names, attr)
		}
	}
	return
}

func (lay layout) field(row []string, attr string) string {
	i, ok := lay[attr]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}

// record converts a row; ok is false when any required field is missing or malformed.
// Optional prices that fail to parse are kept as NaN.
func (lay layout) record(row []string, company string) (rec *Record, ok bool) {
	var err error
	rec = &Record{Company: company}
	if rec.Date, err = parseDate(lay.field(row, AttrDate)); err != nil {
		return nil, false
	}
	if rec.Close, err = parseFloat(lay.field(row, AttrClose)); err != nil {
		return nil, false
	}
	if rec.Volume, err = parseVolume(lay.field(row, AttrVolume)); err != nil {
		return nil, false
	}
	rec.Open = lay.optFloat(row, AttrOpen)
	rec.High = lay.optFloat(row, AttrHigh)
	rec.Low = lay.optFloat(row, AttrLow)
	if s := strings.TrimSpace(lay.field(row, AttrCompany)); s != "" {
		rec.Company = s
	}
	return rec, true
}

func (lay layout) optFloat(row []string, attr string) float64 {
	f, err := parseFloat(lay.field(row, attr))
	if err != nil {
		return nan
	}
	return f
}
