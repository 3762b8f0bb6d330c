// Package main is the entry point for the leadline CLI/TUI.
package main

import (
	"os"

	"github.com/leadline-io/leadline/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
