package main

import (
	"os"

	"github.com/preplab/biosched/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
