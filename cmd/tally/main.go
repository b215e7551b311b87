package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/tally/internal/cli"
	"github.com/example/tally/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "tally",
		Short:   "tally - class record tracker",
		Version: version.String(),
		Long: `tally is a CLI tool for managing a class roster: students, tasks,
attendance sessions, and graded-test results. Input fields are
validated on entry and stored in canonical form.`,
	}

	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.StudentCmd())
	rootCmd.AddCommand(cli.TaskCmd())
	rootCmd.AddCommand(cli.SessionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
