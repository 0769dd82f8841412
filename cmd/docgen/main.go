package main

import (
	"os"

	"github.com/fjglira/docgen/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
