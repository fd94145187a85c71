// Package main is the entry point for the hdx CLI.
//
// hdx provisions and manages remote compute clusters against the cluster
// resource-management service, and maintains the local configuration files
// used to stage cluster-creation parameters.
//
// Commands: cluster, config, login, version, completion.
//
// For detailed usage information, run:
//
//	hdx --help
package main

import (
	"fmt"
	"os"

	"github.com/openbda/hdx/cmd/hdx/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
