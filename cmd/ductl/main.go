// Package main is the entry point for the ductl CLI.
//
// ductl is a command-line companion to the oai-du-operator. It creates and
// validates DistributedUnit manifests, renders the workload configuration
// offline, installs the Multus prerequisite and watches a unit's status.
//
// For detailed usage information, run:
//
//	ductl --help
package main

import (
	"fmt"
	"os"

	"github.com/ranstack/oai-du-operator/cmd/ductl/commands"
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
