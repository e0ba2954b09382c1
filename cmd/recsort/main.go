// Package main is the recsort command-line tool: sort stock records by attribute
// with a selectable algorithm, list companies, and benchmark the algorithms.
/*
 * Copyright (c) 2018-2026, NVIDIA CORPORATION. All rights reserved.
 */
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/recsort/recsort/cmd/recsort/cli"
	"github.com/recsort/recsort/cmn/nlog"
)

var (
	build     string
	buildtime string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := cli.Run(ctx, cli.Version+"."+build, buildtime, os.Args)
	stop()
	nlog.FlushExit()
	if err != nil {
		exitf("%v", err)
	}
}

func exitf(f string, a ...any) {
	fmt.Fprintf(os.Stderr, f+"\n", a...)
	os.Exit(1)
}
