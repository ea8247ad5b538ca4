package main

import (
	"os"

	"github.com/Cassandrat897/keepy-app/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
