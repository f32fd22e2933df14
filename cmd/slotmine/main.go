package main

import (
	"os"

	"github.com/katalvlaran/slotmine/cmd/slotmine/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
