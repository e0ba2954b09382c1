// Package cli implements the recsort commands.
/*
 * Copyright (c) 2018-2026, NVIDIA CORPORATION. All rights reserved.
 */
package cli

import (
	"strconv"
	"strings"

	"github.com/urfave/cli"

	"github.com/recsort/recsort/cmn"
	"github.com/recsort/recsort/keysort"
	"github.com/recsort/recsort/table"
)

// global
var (
	configFlag = cli.StringFlag{
		Name:  "config, c",
		Usage: "configuration file (.json, .yaml, or .yml)",
	}
	noColorFlag = cli.BoolFlag{
		Name:  "no-color",
		Usage: "disable colored output",
	}
	logDirFlag = cli.StringFlag{
		Name:  "log-dir",
		Usage: "directory for log files (default: $TMPDIR/recsortlogs)",
	}
	logToStderrFlag = cli.BoolFlag{
		Name:  "logtostderr",
		Usage: "log to standard error instead of files",
	}
)

// input
var (
	dirFlag = cli.StringFlag{
		Name:  "dir, d",
		Usage: "directory containing CSV files (default: " + cmn.DefaultDataDir + ")",
	}
	patternFlag = cli.StringFlag{
		Name:  "pattern, p",
		Usage: "filename pattern (glob); '.lz4' files match without the suffix (default: " + cmn.DefaultPattern + ")",
	}
	companyFlag = cli.StringFlag{
		Name:  "company",
		Usage: "select a single company (case-insensitive)",
		Value: table.AllCompanies,
	}
)

// sort
var (
	algoFlag = cli.StringFlag{
		Name:  "algo, a",
		Usage: "sorting algorithm: " + strings.Join(keysort.Kinds(), ", ") + " (aliases: bubble, quick)",
	}
	attrFlag = cli.StringFlag{
		Name:  "attr",
		Usage: "attribute to sort by: " + strings.Join(table.Attributes, ", "),
		Value: table.AttrClose,
	}
	orderFlag = cli.StringFlag{
		Name:  "order",
		Usage: "ascending or descending",
	}
	countFlag = cli.IntFlag{
		Name:  "n",
		Usage: "input size: sort the first n (filtered) rows; 0 for all",
		Value: 2000,
	}
	topFlag = cli.IntFlag{
		Name:  "top",
		Usage: "number of sorted rows to show",
	}
	seedFlag = cli.StringFlag{
		Name:  "seed",
		Usage: "partition sort only: integer seed for reproducible pivot selection",
	}
)

// bench and summarize
var (
	sizesFlag = cli.StringFlag{
		Name:  "sizes",
		Usage: "comma-separated input sizes, e.g. '1000,5000,20000'",
	}
	repeatsFlag = cli.IntFlag{
		Name:  "repeats",
		Usage: "runs per measurement (the median is reported)",
	}
	benchOutFlag = cli.StringFlag{
		Name:  "out, o",
		Usage: "benchmark results CSV ('-' for standard output)",
		Value: "sort_benchmarks.csv",
	}
	reportFlag = cli.StringFlag{
		Name:  "report",
		Usage: "also save a signed and checksummed JSON report to this file",
	}
	compressFlag = cli.BoolFlag{
		Name:  "compress",
		Usage: "lz4-compress the report",
	}
	metricsFlag = cli.StringFlag{
		Name:  "metrics",
		Usage: "also write Prometheus metrics (text format) to this file",
	}
	noProgressFlag = cli.BoolFlag{
		Name:  "no-progress",
		Usage: "do not show progress bar",
	}
	summaryInFlag = cli.StringFlag{
		Name:  "in, i",
		Usage: "benchmark results CSV",
		Value: "sort_benchmarks.csv",
	}
	summaryOutFlag = cli.StringFlag{
		Name:  "out, o",
		Usage: "summary CSV ('-' for standard output only)",
		Value: "summary_speedups.csv",
	}
)

// take the first of multiple names
func fl1n(flagName string) string {
	if i := strings.IndexByte(flagName, ','); i >= 0 {
		return strings.TrimSpace(flagName[:i])
	}
	return flagName
}

func flagIsSet(c *cli.Context, flag cli.Flag) (v bool) {
	name := fl1n(flag.GetName())
	switch flag.(type) {
	case cli.BoolFlag:
		v = c.Bool(name) || c.GlobalBool(name)
	default:
		v = c.GlobalIsSet(name) || c.IsSet(name)
	}
	return
}

// Returns the value of a string flag (either parent or local scope)
func parseStrFlag(c *cli.Context, flag cli.Flag) string {
	flagName := fl1n(flag.GetName())
	if c.GlobalIsSet(flagName) {
		return c.GlobalString(flagName)
	}
	return c.String(flagName)
}

func parseIntFlag(c *cli.Context, flag cli.IntFlag) int {
	flagName := fl1n(flag.GetName())
	if c.GlobalIsSet(flagName) {
		return c.GlobalInt(flagName)
	}
	return c.Int(flagName)
}

func parseSizes(c *cli.Context) ([]int, error) {
	var sizes []int
	for s := range strings.SplitSeq(parseStrFlag(c, sizesFlag), ",") {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			return nil, incorrectUsageMsg(c, "invalid size %q in --%s", s, fl1n(sizesFlag.Name))
		}
		sizes = append(sizes, n)
	}
	return sizes, nil
}
