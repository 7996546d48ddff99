package main

import (
	"os"

	"github.com/sestinj/crho/cmd/crho/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
