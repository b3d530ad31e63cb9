// Package main is the entry point for the journal CLI.
package main

import (
	"os"

	"github.com/f3rmion/journal/cmd/journal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
