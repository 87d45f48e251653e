// Package main provides the entry point for the skinforge CLI tool.
package main

import (
	"github.com/riftworks/skinforge/cmd/skinforge/cmd"
)

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
	builtBy = "unknown"
)

func main() {
	cmd.Execute(version, commit, date, builtBy)
}
