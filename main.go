package main

import (
	"os"

	"github.com/roadprep/roadprep/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
