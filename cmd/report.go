package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"incomelens/date"
	"incomelens/renderer"
)

type reportCmd struct {
	endDate string
	workers int
	asJSON  bool
}

func (*reportCmd) Name() string { return "report" }
func (*reportCmd) Synopsis() string {
	return "analyze the configured funds and print the total-return report"
}
func (*reportCmd) Usage() string {
	return `ilens report [-d <end_date>] [-workers <n>] [-json]

  Runs the full analysis: for every configured fund the start and current
  prices are fetched and cross-validated, the dividend history is
  accumulated, and the total-return figures are derived. The report keeps
  the configured fund order and labels every price with its verification
  confidence.

Usage Examples:
# Analyze up to today with the default configuration file.
$ ilens report

# Analyze as of a past date, machine readable.
$ ilens report -d 2025-06-30 -json
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.endDate, "d", "", "End date for the analysis (defaults to today)")
	f.IntVar(&c.workers, "workers", 0, "Number of funds analyzed concurrently")
	f.BoolVar(&c.asJSON, "json", false, "Emit the raw positions as JSON instead of the rendered report")
}

func (c *reportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	analyzer, err := newAnalyzer()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	analyzer.Workers = c.workers

	if c.endDate != "" {
		end, err := date.Parse(c.endDate)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing end date: %v\n", err)
			return subcommands.ExitUsageError
		}
		analyzer.Now = end
	}

	report, err := analyzer.Run(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running analysis: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding report: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.AnalysisMarkdown(report))
	return subcommands.ExitSuccess
}
