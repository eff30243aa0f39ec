package main

import (
	"fmt"
	"os"

	"github.com/sdejongh/configdiff/internal/cli"
	"github.com/sdejongh/configdiff/pkg/models"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.Version = version
	cli.Commit = commit
	cli.BuildDate = date

	rootCmd := cli.NewRootCommand()
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(models.StatusError.ExitCode())
	}
}
