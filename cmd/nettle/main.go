package main

import (
	"os"

	"github.com/nettle-lang/nettle/internal/cli/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
