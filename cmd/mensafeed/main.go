package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagConfig  string
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "mensafeed",
	Short: "Scrape the cafeteria week menu into a feed",
	Long: `mensafeed fetches the cafeteria's weekly menu page, extracts the
per-day meals and writes them as a feed (OpenMensa XML or iCalendar).

Usage:
  mensafeed generate [flags]
  mensafeed preview [flags]`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "path to config.yaml (defaults to the built-in akbild setup)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "dump the effective configuration")
}
