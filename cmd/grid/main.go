// Package main provides the grid CLI.
package main

import (
	"os"

	"github.com/modelkit/grid/cmd/grid/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
