// Package main is the entry point for the kate-sync bootstrap tool.
//
// All behavior lives in internal/cli. Build-time variables (version, commit,
// date) are injected via ldflags and default to "dev", "none", and
// "unknown" during development.
package main

import (
	"github.com/shinji-kodama/kate-sync/internal/cli"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.Version = version
	cli.Commit = commit
	cli.Date = date

	rootCmd := cli.NewRootCommand()
	cli.Execute(rootCmd)
}
