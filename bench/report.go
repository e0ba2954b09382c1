// Package bench measures sorting algorithms on table attributes and summarizes
// the results as per-size speedups.
/*
 * Copyright (c) 2018-2026, NVIDIA CORPORATION. All rights reserved.
 */
package bench

import (
	"strconv"
	"time"

	"github.com/pkg/errors"

	"github.com/recsort/recsort/cmn"
	"github.com/recsort/recsort/cmn/cos"
	"github.com/recsort/recsort/cmn/jsp"
	"github.com/recsort/recsort/table"
)

type (
	Dataset struct {
		Sources []string `json:"sources"`
		Rows    int      `json:"rows"`
		Digest  string   `json:"digest"` // table.Digest, hex
	}
	// Report is a persisted benchmark run.
	Report struct {
		ID       string        `json:"id"`
		Started  time.Time     `json:"started"`
		Elapsed  cos.Duration  `json:"elapsed"`
		Dataset  Dataset       `json:"dataset"`
		Config   cmn.BenchConf `json:"config"`
		Results  []Result      `json:"results"`
		Summary  []SummaryRow  `json:"summary,omitempty"`
		compress bool
	}
)

// interface guard
var _ jsp.Opts = (*Report)(nil)

func NewReport(t *table.Table, config cmn.BenchConf, started time.Time, results []Result) *Report {
	return &Report{
		ID:      cos.GenUUID(),
		Started: started,
		Elapsed: cos.Duration(time.Since(started)),
		Dataset: Dataset{
			Sources: t.Sources,
			Rows:    t.Len(),
			Digest:  strconv.FormatUint(t.Digest(), 16),
		},
		Config:  config,
		Results: results,
		Summary: Summarize(results),
	}
}

// signed and checksummed; lz4-compressed on request
func (rep *Report) JspOpts() jsp.Options {
	if rep.compress {
		return jsp.CCSign()
	}
	return jsp.CksumSign()
}

func SaveReport(fpath string, rep *Report, compress bool) error {
	rep.compress = compress
	if err := jsp.SaveMeta(fpath, rep); err != nil {
		return errors.Wrapf(err, "failed to save benchmark report %q", fpath)
	}
	return nil
}

// LoadReport reads a report saved with or without compression (the signature
// prefix carries the packing flags).
func LoadReport(fpath string) (*Report, error) {
	rep := &Report{}
	if err := jsp.LoadMeta(fpath, rep); err != nil {
		return nil, err
	}
	return rep, nil
}
