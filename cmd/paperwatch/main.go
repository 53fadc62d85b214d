// Package main is the entry point for the paperwatch CLI/TUI.
package main

import (
	"os"

	"github.com/paperwatch/paperwatch/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
