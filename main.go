package main

import (
	"os"

	"github.com/TechIfat/mlsecops-threat-model/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
