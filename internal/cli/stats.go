package cli

import (
	"fmt"

	"github.com/raphaelgruber/wordrank/internal/corpus"
	"github.com/raphaelgruber/wordrank/internal/rank"
	"github.com/spf13/cobra"
)

var statsTop int

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize the frequency table",
	Long: `Show a summary of the frequency table: how many entries it holds, how
many words the default run would print, and the highest-ranked entries.

Examples:
  wordrank stats
  wordrank stats --top 25`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().IntVar(&statsTop, "top", 10, "number of top entries to show")
}

func runStats(cmd *cobra.Command, args []string) error {
	c, err := corpus.Load(corpus.DefaultFilename)
	if err != nil {
		return err
	}
	rank.ByFrequencyDesc(c)

	printable := 0
	keep := rank.LongerThan(minPrintLen)
	for _, e := range c {
		if keep(e) {
			printable++
		}
	}

	out := cmd.OutOrStdout()
	theme := defaultTheme
	fmt.Fprintln(out, theme.titleStyle().Render(corpus.DefaultFilename))
	fmt.Fprintf(out, "%s %d\n", theme.labelStyle().Render("entries:"), len(c))
	fmt.Fprintf(out, "%s %d\n", theme.labelStyle().Render("printable words:"), printable)

	top := rank.Top(c, statsTop)
	if len(top) == 0 {
		return nil
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, theme.labelStyle().Render("top entries"))
	width := 0
	for _, e := range top {
		width = max(width, len(e.Word))
	}
	for i, e := range top {
		freq := theme.hintStyle().Render(fmt.Sprintf("%.3f", e.Frequency))
		fmt.Fprintf(out, "%3d. %-*s  %s\n", i+1, width, e.Word, freq)
	}

	return nil
}
