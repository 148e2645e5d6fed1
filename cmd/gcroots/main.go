package main

import (
	"os"

	"github.com/arthur-debert/gcroots/internal/cli"
)

func main() {
	if err := cli.Execute(cli.NewRootCmd()); err != nil {
		os.Exit(1)
	}
}
