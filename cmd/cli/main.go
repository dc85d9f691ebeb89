// Package main is the entry point for finops-calc CLI.
package main

import (
	"os"

	"finops-calc/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
