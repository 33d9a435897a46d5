// Command stepviz animates classic algorithms step by step in the terminal.
package main

import (
	"os"

	"github.com/katalvlaran/stepviz/internal/cli"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.SetVersion(version, commit, date)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
