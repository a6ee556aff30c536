package main

import (
	"os"

	"github.com/AgileCatalystDV/ai-threat-model/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
