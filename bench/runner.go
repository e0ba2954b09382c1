// Package bench measures sorting algorithms on table attributes and summarizes
// the results as per-size speedups.
/*
 * Copyright (c) 2018-2026, NVIDIA CORPORATION. All rights reserved.
 */
package bench

import (
	"context"
	"slices"

	"github.com/pkg/errors"

	"github.com/recsort/recsort/cmn"
	"github.com/recsort/recsort/cmn/nlog"
	"github.com/recsort/recsort/keysort"
	"github.com/recsort/recsort/table"
)

type (
	// Case is a single planned measurement.
	Case struct {
		Algo      string
		Attribute string
		N         int
	}
	Runner struct {
		Config  cmn.BenchConf
		Algos   []string          // default: keysort.Kinds()
		Metrics *Metrics          // optional
		OnDone  func(res *Result) // optional progress callback
		OnSkip  func(c *Case)     // optional; called for each capped exchange case
	}

	// sorter binds a key column to an algorithm: the returned func sorts once
	sorter func(kind string) (func(), error)
)

func NewRunner(config cmn.BenchConf) *Runner {
	return &Runner{Config: config, Metrics: NewMetrics()}
}

func (r *Runner) algos() []string {
	if len(r.Algos) > 0 {
		return r.Algos
	}
	return keysort.Kinds()
}

// Plan lists measurements for a table of `rows` records, in execution order
// (attribute, then size, then algorithm). Sizes are clamped to `rows` and deduplicated.
// Exchange cases above the configured cap are left out; the second return counts them.
func (r *Runner) Plan(rows int) (plan []Case, skipped []Case) {
	sizes := make([]int, 0, len(r.Config.Sizes))
	for _, n := range r.Config.Sizes {
		n = min(n, rows)
		if n > 0 && !slices.Contains(sizes, n) {
			sizes = append(sizes, n)
		}
	}
	for _, attr := range r.Config.Attributes {
		for _, n := range sizes {
			for _, kind := range r.algos() {
				c := Case{Algo: (&keysort.Algorithm{Kind: kind}).Canonical(), Attribute: attr, N: n}
				if c.Algo == keysort.KindExchange && r.Config.ExchangeCap > 0 && n > r.Config.ExchangeCap {
					skipped = append(skipped, c)
					continue
				}
				plan = append(plan, c)
			}
		}
	}
	return plan, skipped
}

// Run measures every planned case (ascending order, median of Config.Repeats runs).
// On cancellation or timeout it returns the results collected so far with the context error.
func (r *Runner) Run(ctx context.Context, t *table.Table) ([]Result, error) {
	if err := r.Config.Validate(); err != nil {
		return nil, err
	}
	for _, kind := range r.algos() {
		if err := (&keysort.Algorithm{Kind: kind}).Validate(); err != nil {
			return nil, err
		}
	}
	if timeout := r.Config.Timeout.D(); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	plan, skipped := r.Plan(t.Len())
	for i := range skipped {
		c := &skipped[i]
		nlog.Infof("skipping %s on %s: n=%d exceeds cap %d", c.Algo, c.Attribute, c.N, r.Config.ExchangeCap)
		if r.Metrics != nil {
			r.Metrics.skip()
		}
		if r.OnSkip != nil {
			r.OnSkip(c)
		}
	}

	var (
		results = make([]Result, 0, len(plan))
		prev    Case
		srt     sorter
	)
	for i := range plan {
		c := &plan[i]
		if err := ctx.Err(); err != nil {
			return results, err
		}
		if srt == nil || c.Attribute != prev.Attribute || c.N != prev.N {
			var err error
			if srt, err = newSorter(t.Head(c.N), c.Attribute); err != nil {
				return results, err
			}
		}
		prev = *c

		fn, err := srt(c.Algo)
		if err != nil {
			return results, err
		}
		d := MedianTime(fn, r.Config.Repeats)
		res := Result{Algo: c.Algo, Attribute: c.Attribute, N: c.N, Repeats: r.Config.Repeats, Seconds: d.Seconds()}
		nlog.Infof("%-9s | %-7s | n=%6d | %.6fs", res.Algo, res.Attribute, res.N, res.Seconds)
		if r.Metrics != nil {
			r.Metrics.observe(&res)
		}
		if r.OnDone != nil {
			r.OnDone(&res)
		}
		results = append(results, res)
	}
	return results, nil
}

func newSorter(t *table.Table, attr string) (sorter, error) {
	typ, err := table.KeyType(attr)
	if err != nil {
		return nil, err
	}
	switch typ {
	case table.KeyFloat:
		seq, err := t.FloatKeys(attr)
		if err != nil {
			return nil, err
		}
		return bind(seq.Keys, attr)
	case table.KeyInt:
		seq, err := t.IntKeys(attr)
		if err != nil {
			return nil, err
		}
		return bind(seq.Keys, attr)
	default:
		seq, err := t.StringKeys(attr)
		if err != nil {
			return nil, err
		}
		return bind(seq.Keys, attr)
	}
}

// bind validates keys once (NaN is rejected) and returns the per-algorithm sorter.
func bind[K keysort.Key](keys []K, attr string) (sorter, error) {
	if err := keysort.CheckKeys(keys); err != nil {
		return nil, errors.WithMessage(err, attr)
	}
	return func(kind string) (func(), error) {
		fn, err := keysort.Lookup[K](kind)
		if err != nil {
			return nil, err
		}
		return func() { fn(keys, keysort.Ascending) }, nil
	}, nil
}
