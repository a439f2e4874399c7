package main

import (
	"os"

	"github.com/martijn/trainhub/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
