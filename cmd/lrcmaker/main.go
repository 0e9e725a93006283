package main

import (
	"os"

	"github.com/michael140711/enhanced-lrc-maker/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
