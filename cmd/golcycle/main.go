package main

import (
	"fmt"
	"os"

	"gol-cycle/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "golcycle:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
