// Package main is the entry point for the nullfill CLI application.
package main

import (
	"github.com/dbmrq/nullfill/cmd/nullfill/cmd"
)

// Version information - set by build flags:
//
//	go build -ldflags "-X main.version=1.0.0 -X main.commit=$(git rev-parse --short HEAD) -X main.date=$(date -u +%Y-%m-%d)"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cmd.Version = version
	cmd.Commit = commit
	cmd.Date = date
	cmd.Execute()
}
