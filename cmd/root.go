package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Personal portfolio site with a contact form",
	Long: `portfolio serves a single-page portfolio: hero, about, skills, projects
and a contact form that forwards messages through EmailJS. Submitted
messages and privacy-friendly visitor counts are kept in SQLite and shown
on a small admin dashboard.

Configuration is read from the environment and from a .env file in the
working directory.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func exitOnError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
