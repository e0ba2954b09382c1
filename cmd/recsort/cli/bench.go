// Package cli implements the recsort commands.
/*
 * Copyright (c) 2018-2026, NVIDIA CORPORATION. All rights reserved.
 */
package cli

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"github.com/urfave/cli"
	"github.com/vbauerster/mpb/v4"
	"github.com/vbauerster/mpb/v4/decor"

	"github.com/recsort/recsort/bench"
	"github.com/recsort/recsort/cmn/nlog"
)

const (
	barWidth = 64
	barText  = "Measurements"

	stdio = "-"
)

var (
	benchCmd = cli.Command{
		Name:      "bench",
		Usage:     "measure median sorting time per algorithm, attribute, and input size",
		ArgsUsage: " ",
		Description: "Exchange sort is skipped for input sizes above the configured cap (bench.exchange_cap).\n" +
			"   e.g.: recsort bench --dir data --sizes 1000,5000,20000 --repeats 3 --report run.json --compress",
		Flags: []cli.Flag{
			dirFlag, patternFlag, sizesFlag, repeatsFlag, benchOutFlag,
			reportFlag, compressFlag, metricsFlag, noProgressFlag,
		},
		Action: benchHandler,
	}
	summarizeCmd = cli.Command{
		Name:      "summarize",
		Usage:     "summarize benchmark results: median seconds per algorithm and speedups over exchange sort",
		ArgsUsage: " ",
		Flags:     []cli.Flag{summaryInFlag, summaryOutFlag},
		Action:    summarizeHandler,
	}
)

func benchHandler(c *cli.Context) error {
	conf := cfg.Bench
	sizes, err := parseSizes(c)
	if err != nil {
		return err
	}
	if len(sizes) > 0 {
		conf.Sizes = sizes
	}
	if flagIsSet(c, repeatsFlag) {
		if conf.Repeats = parseIntFlag(c, repeatsFlag); conf.Repeats <= 0 {
			return incorrectUsageMsg(c, "--%s must be positive (got %d)", repeatsFlag.Name, conf.Repeats)
		}
	}
	if err := conf.Validate(); err != nil {
		return err
	}

	t, err := loadTable(c)
	if err != nil {
		return err
	}
	var (
		runner   = bench.NewRunner(conf)
		plan, _  = runner.Plan(t.Len())
		progress *mpb.Progress
		bar      *mpb.Bar
		started  = time.Now()
	)
	if !flagIsSet(c, noProgressFlag) && len(plan) > 0 {
		progress, bar = newBar(c.App.ErrWriter, int64(len(plan)))
		runner.OnDone = func(*bench.Result) { bar.Increment() }
	}
	results, err := runner.Run(rootCtx, t)
	if progress != nil {
		if err != nil {
			bar.Abort(false)
		}
		progress.Wait()
	}
	if err != nil {
		if len(results) == 0 {
			return err
		}
		nlog.Warningf("benchmark interrupted after %d measurement(s): %v", len(results), err)
		fmt.Fprintf(c.App.ErrWriter, "%s: %v (saving %d partial result(s))\n", fred("Interrupted"), err, len(results))
	}

	if err := writeResults(c, results); err != nil {
		return err
	}
	if fpath := parseStrFlag(c, reportFlag); fpath != "" {
		rep := bench.NewReport(t, conf, started, results)
		if err := bench.SaveReport(fpath, rep, flagIsSet(c, compressFlag)); err != nil {
			return err
		}
		fmt.Fprintf(c.App.Writer, "Saved report %s to %s\n", fcyan(rep.ID), fpath)
	}
	if fpath := parseStrFlag(c, metricsFlag); fpath != "" {
		if err := runner.Metrics.WriteTextfile(fpath); err != nil {
			return errors.Wrapf(err, "failed to write metrics %q", fpath)
		}
		fmt.Fprintf(c.App.Writer, "Saved metrics to %s\n", fpath)
	}
	return nil
}

func newBar(w io.Writer, total int64) (*mpb.Progress, *mpb.Bar) {
	progress := mpb.New(mpb.WithWidth(barWidth), mpb.WithOutput(w))
	bar := progress.AddBar(total,
		mpb.PrependDecorators(
			decor.Name(barText, decor.WC{W: len(barText) + 2, C: decor.DSyncWidthR}),
			decor.CountersNoUnit("%d/%d", decor.WCSyncWidth),
		),
		mpb.AppendDecorators(decor.Percentage(decor.WCSyncWidth)),
	)
	return progress, bar
}

func writeResults(c *cli.Context, results []bench.Result) error {
	out := parseStrFlag(c, benchOutFlag)
	if out == stdio {
		return bench.WriteCSV(c.App.Writer, results)
	}
	if err := printResults(c.App.Writer, results); err != nil {
		return err
	}
	if err := writeFileWith(out, func(w io.Writer) error { return bench.WriteCSV(w, results) }); err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "Saved %d result(s) to %s\n", len(results), out)
	return nil
}

func summarizeHandler(c *cli.Context) error {
	in := parseStrFlag(c, summaryInFlag)
	fh, err := os.Open(in)
	if err != nil {
		return err
	}
	results, err := bench.ReadCSV(fh)
	fh.Close()
	if err != nil {
		return errors.Wrapf(err, "failed to read %q", in)
	}
	rows := bench.Summarize(results)

	var buf bytes.Buffer
	if err := bench.WriteSummaryCSV(&buf, rows); err != nil {
		return err
	}
	out := parseStrFlag(c, summaryOutFlag)
	if out == stdio {
		_, err := c.App.Writer.Write(buf.Bytes())
		return err
	}
	if err := printSummary(c.App.Writer, buf.Bytes()); err != nil {
		return err
	}
	if err := writeFileWith(out, func(w io.Writer) error { _, err := w.Write(buf.Bytes()); return err }); err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "Saved: %s\n", out)
	return nil
}

// renders summary CSV as an aligned table
func printSummary(w io.Writer, b []byte) error {
	lines, err := csv.NewReader(bytes.NewReader(b)).ReadAll()
	if err != nil || len(lines) == 0 {
		return err
	}
	return printRows(w, lines[0], lines[1:])
}

func writeFileWith(fpath string, write func(w io.Writer) error) error {
	if dir := filepath.Dir(fpath); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	fh, err := os.Create(fpath)
	if err != nil {
		return err
	}
	if err := write(fh); err != nil {
		fh.Close()
		return errors.Wrapf(err, "failed to write %q", fpath)
	}
	return fh.Close()
}
