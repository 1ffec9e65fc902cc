package main

import (
	"fmt"
	"os"

	"cxxdecl/cmd"
)

// Build metadata for the version command, set with -ldflags "-X main.version=..."
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cmd.SetVersionInfo(version, commit, date)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "cxxdecl: %v\n", err)
		os.Exit(1)
	}
}
