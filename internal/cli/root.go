// Package cli provides the command-line interface for wordrank.
package cli

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"

	"github.com/raphaelgruber/wordrank/internal/config"
	"github.com/raphaelgruber/wordrank/internal/corpus"
	"github.com/raphaelgruber/wordrank/internal/rank"
	"github.com/spf13/cobra"
)

// Version is set at build time.
var Version = "0.1.0"

// minPrintLen is the exclusive length threshold: only words longer than
// this many characters are printed.
const minPrintLen = 3

// logCleanup closes the log file after the command finishes.
var logCleanup func() error

// rootCmd represents the base command when called without any subcommands.
// Running it with no arguments is the whole program: load the table, rank
// it, print the long words.
var rootCmd = &cobra.Command{
	Use:   "wordrank",
	Short: "Print common words from a frequency table",
	Long: `Wordrank reads the word-frequency table wordfreq-en-25000-log.json
from the working directory, ranks its entries by descending frequency, and
prints every word longer than three characters, one per line.

The table is a JSON array of [word, frequency] pairs. Frequency is treated
as an opaque rank value; only its ordering matters.`,
	Version:       Version,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg := config.Load()
		logger, cleanup := config.SetupLogger(cfg.LogFile, cfg.LogLevel)
		slog.SetDefault(logger)
		logCleanup = cleanup
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logCleanup != nil {
			if err := logCleanup(); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to close log file: %v\n", err)
			}
		}
	},
	RunE: runPrint,
}

func runPrint(cmd *cobra.Command, args []string) error {
	c, err := corpus.Load(corpus.DefaultFilename)
	if err != nil {
		return err
	}
	slog.Debug("corpus loaded", "entries", len(c))

	rank.ByFrequencyDesc(c)

	// Loading and sorting are both done before the first line goes out,
	// so a failure cannot leave partial output behind.
	w := bufio.NewWriter(cmd.OutOrStdout())
	keep := rank.LongerThan(minPrintLen)
	for _, e := range c {
		if !keep(e) {
			continue
		}
		if _, err := fmt.Fprintln(w, e.Word); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// Execute adds all child commands to the root command and runs it.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
