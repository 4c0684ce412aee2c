package main

import (
	"fmt"
	"os"

	"github.com/rshade/empdash/internal/cli"
	"github.com/rshade/empdash/pkg/version"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.ExitCode(err))
	}
}

func run() error {
	root := cli.NewRootCmd(version.GetVersion())
	return root.Execute()
}
