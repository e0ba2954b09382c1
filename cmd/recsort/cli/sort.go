// Package cli implements the recsort commands.
/*
 * Copyright (c) 2018-2026, NVIDIA CORPORATION. All rights reserved.
 */
package cli

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/recsort/recsort/cmn"
	"github.com/recsort/recsort/cmn/nlog"
	"github.com/recsort/recsort/keysort"
	"github.com/recsort/recsort/table"
)

var (
	sortCmd = cli.Command{
		Name:      "sort",
		Usage:     "sort records by one attribute and show the first rows of the result",
		ArgsUsage: " ",
		Description: "Records with equal keys keep their (date) order regardless of the algorithm.\n" +
			"   e.g.: recsort sort --dir data --attr volume --order desc --algo quick --company tesla --top 20",
		Flags: []cli.Flag{
			dirFlag, patternFlag, companyFlag, algoFlag, attrFlag, orderFlag, countFlag, topFlag, seedFlag,
		},
		Action: sortHandler,
	}
	companiesCmd = cli.Command{
		Name:      "companies",
		Usage:     "list companies and their row counts",
		ArgsUsage: " ",
		Flags:     []cli.Flag{dirFlag, patternFlag},
		Action:    companiesHandler,
	}
)

// ingests all files under --dir matching --pattern
func loadTable(c *cli.Context) (*table.Table, error) {
	conf := cfg.Ingest
	if flagIsSet(c, dirFlag) {
		conf.Dir = parseStrFlag(c, dirFlag)
	}
	if flagIsSet(c, patternFlag) {
		conf.Pattern = parseStrFlag(c, patternFlag)
	}
	paths, err := table.Glob(conf.Dir, conf.Pattern)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, errors.Errorf("no files matching %q in %q", conf.Pattern, conf.Dir)
	}
	started := time.Now()
	t, err := table.Load(rootCtx, paths, conf.Concurrency)
	if err != nil {
		return nil, err
	}
	nlog.Infof("loaded %d rows from %d file(s) in %v", t.Len(), len(paths), time.Since(started))
	return t, nil
}

// configured algorithm; see onBeforeCommand for validation
func confAlgorithm(conf *cmn.AlgoConf) keysort.Algorithm {
	return keysort.Algorithm{Kind: conf.Kind, Decreasing: conf.Decreasing, Seed: conf.Seed}
}

func checkConfAlgorithm(fpath string) error {
	algo := confAlgorithm(&cfg.Sort.Algorithm)
	if err := algo.Validate(); err != nil {
		return errors.Wrapf(err, "invalid config %q", fpath)
	}
	return nil
}

func sortAlgorithm(c *cli.Context) (*keysort.Algorithm, error) {
	algo := confAlgorithm(&cfg.Sort.Algorithm)
	if flagIsSet(c, algoFlag) {
		algo.Kind = parseStrFlag(c, algoFlag)
	}
	if flagIsSet(c, orderFlag) {
		dir, err := keysort.ParseDirection(parseStrFlag(c, orderFlag))
		if err != nil {
			return nil, incorrectUsageMsg(c, "%v", err)
		}
		algo.Decreasing = dir == keysort.Descending
	}
	if flagIsSet(c, seedFlag) {
		algo.Seed = parseStrFlag(c, seedFlag)
	}
	if err := algo.Validate(); err != nil {
		if keysort.IsErrUnknownAlgorithm(err) {
			return nil, incorrectUsageMsg(c, "%v", err)
		}
		return nil, err
	}
	return &algo, nil
}

func sortHandler(c *cli.Context) error {
	if c.NArg() > 0 {
		return incorrectUsageMsg(c, "unexpected argument %q", c.Args().First())
	}
	attr, err := table.NormalizeAttr(parseStrFlag(c, attrFlag))
	if err != nil {
		return incorrectUsageMsg(c, "%v", err)
	}
	algo, err := sortAlgorithm(c)
	if err != nil {
		return err
	}
	n := parseIntFlag(c, countFlag)
	if n < 0 {
		return incorrectUsageMsg(c, "--%s must be >= 0 (got %d)", countFlag.Name, n)
	}
	top := cfg.Sort.Top
	if flagIsSet(c, topFlag) {
		if top = parseIntFlag(c, topFlag); top <= 0 {
			return incorrectUsageMsg(c, "--%s must be positive (got %d)", topFlag.Name, top)
		}
	}

	t, err := loadTable(c)
	if err != nil {
		return err
	}
	company := parseStrFlag(c, companyFlag)
	sub := t.Filter(company).Head(n)
	if sub.Len() == 0 {
		return errors.Errorf("no rows for company %q (see 'recsort companies')", company)
	}

	started := time.Now()
	recs, err := sub.SortBy(attr, algo)
	if err != nil {
		return err
	}
	elapsed := time.Since(started)
	nlog.Infof("sorted %d rows by %s using %s in %v", sub.Len(), attr, algo, elapsed)

	fmt.Fprintf(c.App.Writer, "Loaded %s rows from %d file(s); sorted %s by %s using %s in %v\n",
		fbold(t.Len()), len(t.Sources), fbold(sub.Len()), fcyan(attr), fcyan(algo.String()), elapsed)
	return printRecords(c.App.Writer, recs, top)
}

func companiesHandler(c *cli.Context) error {
	t, err := loadTable(c)
	if err != nil {
		return err
	}
	counts := t.Companies()
	fmt.Fprintf(c.App.Writer, "%s companies detected in %d rows\n", fbold(len(counts)), t.Len())
	return printCompanies(c.App.Writer, counts)
}
