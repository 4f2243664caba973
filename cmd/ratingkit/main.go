package main

import (
	"os"

	"github.com/quantfold/ratingkit/cmd/ratingkit/commands"
)

// main is the entry point for the ratingkit CLI
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
