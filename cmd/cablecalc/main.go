package main

import (
	"os"

	"github.com/rfoley/cablecalc/pkg/interfaces/cli/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
