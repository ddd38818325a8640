package main

import (
	"os"

	"github.com/nhle/omnifocus-cli/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
