// Package cli implements the recsort commands.
/*
 * Copyright (c) 2018-2026, NVIDIA CORPORATION. All rights reserved.
 */
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli"
)

type errUsage struct {
	context *cli.Context
	message string
}

func (e *errUsage) Error() string {
	var sb strings.Builder
	sb.WriteString("Incorrect usage of \"")
	sb.WriteString(e.context.App.Name)
	if name := e.context.Command.Name; name != "" {
		sb.WriteString(" " + name)
	}
	sb.WriteString("\": ")
	sb.WriteString(e.message)
	sb.WriteString(".\nSee '--help' for more information.")
	return sb.String()
}

func incorrectUsageMsg(c *cli.Context, format string, args ...any) *errUsage {
	return &errUsage{context: c, message: fmt.Sprintf(format, args...)}
}

func incorrectUsageHandler(c *cli.Context, err error, _ bool) error {
	return incorrectUsageMsg(c, "%v", err)
}

func commandNotFoundHandler(c *cli.Context, cmd string) {
	if cmd == "version" {
		fmt.Fprintf(c.App.Writer, "version %s (build %s)\n", c.App.Version, buildTime)
		return
	}
	err := incorrectUsageMsg(c, "unknown command %q", cmd)
	fmt.Fprintln(c.App.ErrWriter, err.Error())
	os.Exit(1)
}
