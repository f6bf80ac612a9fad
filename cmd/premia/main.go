package main

import (
	"os"

	"github.com/wonny/premia/cmd/premia/commands"
)

// main is the entry point for the premia CLI
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
