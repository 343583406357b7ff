package main

import (
	"os"

	"github.com/avckr/jsonpane/internal/cli"
)

// Build-time variables (set via ldflags).
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	if err := cli.NewRootCmd(version, commit, buildDate).Execute(); err != nil {
		os.Exit(1)
	}
}
