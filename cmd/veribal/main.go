package main

import (
	"os"

	"github.com/veribal-dev/veribal/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
