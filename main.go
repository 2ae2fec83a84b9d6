// Package main is the entry point for the poetic CLI application.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/eykd/poetic-source-go/cmd"
)

func main() {
	// Create a context that is cancelled on SIGINT (Ctrl+C).
	// This enables graceful shutdown for long-running operations.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	code := cmd.Main(ctx, os.Args[1:])
	cancel()
	os.Exit(code)
}
