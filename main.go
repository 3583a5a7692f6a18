package main

import (
	"os"

	"github.com/hlecates/artifact-ijcar26-luna/cmd"
)

func main() {
	if err := cmd.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
