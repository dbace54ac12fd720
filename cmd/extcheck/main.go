// Package main provides the entry point for the extcheck CLI tool.
package main

import (
	"context"
	"os"

	"github.com/agentstation/extcheck/cmd/extcheck/app"
)

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
	builtBy = "unknown"
)

func main() {
	application, err := app.New(version, commit, date, builtBy)
	if err != nil {
		app.ExitOnError(err)
	}

	ctx, cancel := app.ContextWithSignals(context.Background())
	code := application.Run(ctx, os.Args[1:])
	cancel()

	os.Exit(code)
}
