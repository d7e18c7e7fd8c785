package main

import (
	"os"

	"github.com/data-apis/bakegen/src/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
