package main

import (
	"os"

	"github.com/pybake-dev/pybake/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
