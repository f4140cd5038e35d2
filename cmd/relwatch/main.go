package main

import (
	"os"

	"github.com/valksor/go-relwatch/cmd/relwatch/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
