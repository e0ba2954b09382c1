// Package cli implements the recsort commands.
/*
 * Copyright (c) 2018-2026, NVIDIA CORPORATION. All rights reserved.
 */
package cli

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/urfave/cli"

	"github.com/recsort/recsort/cmn"
	"github.com/recsort/recsort/cmn/nlog"
)

const (
	Version = "1.0"

	cliName  = "recsort"
	cliDescr = `Loads stock price CSV files (optionally .lz4-compressed) from a directory,
   sorts records by a single attribute using exchange, merge, or partition sort,
   and benchmarks the algorithms against each other.`
)

type acli struct {
	app       *cli.App
	outWriter io.Writer
	errWriter io.Writer
}

var (
	cfg       *cmn.Config
	rootCtx   = context.Background()
	buildTime string
)

// color
var (
	fred, fcyan, fbold func(a ...any) string
)

// main method
func Run(ctx context.Context, version, buildtime string, args []string) error {
	return run(ctx, version, buildtime, args, os.Stdout, os.Stderr)
}

func run(ctx context.Context, version, buildtime string, args []string, out, errw io.Writer) error {
	a := acli{app: cli.NewApp(), outWriter: out, errWriter: errw}
	rootCtx, buildTime = ctx, buildtime
	a.init(version)
	err := a.app.Run(args)
	nlog.Flush()
	return a.formatErr(err)
}

func redErr(err error) error {
	msg := strings.TrimRight(err.Error(), "\n")
	return errors.New(fred("Error: ") + msg)
}

// Formats error message
func (*acli) formatErr(err error) error {
	if err == nil {
		return nil
	}
	switch err.(type) {
	case *errUsage:
		return err
	default:
		return redErr(err)
	}
}

// loads configuration and sets up logging; global flags override the config
func onBeforeCommand(c *cli.Context) (err error) {
	// the color library disables itself when stdout is not a terminal; never force-enable
	if flagIsSet(c, noColorFlag) {
		color.NoColor = true
	}
	if fpath := parseStrFlag(c, configFlag); fpath != "" {
		if cfg, err = cmn.LoadConfig(fpath); err != nil {
			return err
		}
		if err := checkConfAlgorithm(fpath); err != nil {
			return err
		}
	} else {
		cfg = cmn.DefaultConfig()
	}
	if flagIsSet(c, logDirFlag) {
		cfg.Log.Dir = parseStrFlag(c, logDirFlag)
	}
	if flagIsSet(c, logToStderrFlag) {
		cfg.Log.ToStderr = true
	}
	if cfg.Log.MaxSize > 0 {
		nlog.MaxSize = cfg.Log.MaxSize
	}
	nlog.Setup(cfg.Log.Dir, cfg.Log.ToStderr, false)
	nlog.SetTitle(cliName + " " + c.App.Version)
	return nil
}

func (a *acli) init(version string) {
	app := a.app

	fcyan = color.New(color.FgHiCyan).SprintFunc()
	fred = color.New(color.FgHiRed).SprintFunc()
	fbold = color.New(color.Bold).SprintFunc()

	app.Name = cliName
	app.Usage = "sort and benchmark-sort stock records"
	app.Version = version
	app.HideHelp = true
	app.Flags = []cli.Flag{cli.HelpFlag, configFlag, noColorFlag, logDirFlag, logToStderrFlag}
	app.CommandNotFound = commandNotFoundHandler
	app.OnUsageError = incorrectUsageHandler
	app.Writer = a.outWriter
	app.ErrWriter = a.errWriter
	app.Before = onBeforeCommand
	app.Description = cliDescr
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version, V",
		Usage: "print only the version",
	}
	a.setupCommands()
}

func (a *acli) setupCommands() {
	// order of commands below is the order shown in "recsort help"
	a.app.Commands = []cli.Command{
		sortCmd,
		companiesCmd,
		benchCmd,
		summarizeCmd,
	}
	for i := range a.app.Commands {
		cmd := &a.app.Commands[i]
		cmd.Flags = append(cmd.Flags, cli.HelpFlag)
		cmd.OnUsageError = incorrectUsageHandler
	}
}
