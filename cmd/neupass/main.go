package main

import (
	"os"

	"github.com/neucn/neupass/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
