package main

import (
	"os"

	"github.com/trebuchet-org/barista/internal/cli"
	"github.com/trebuchet-org/barista/internal/config"
)

// Set by -ldflags "-X main.version=... -X main.commit=... -X main.date=..."
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	config.SetBuildFlags(version, commit, date)
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
