// Package main is the entry point for the stack-analyzer CLI.
package main

import (
	"os"

	"saasStackAnalyzer/cmd/stack-analyzer/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
