package main

import (
	"os"

	"github.com/repoagent/repoagent/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
