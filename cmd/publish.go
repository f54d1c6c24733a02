package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"incomelens/date"
	"incomelens/renderer"
)

type publishCmd struct {
	outputFile string
	title      string
	endDate    string
}

func (*publishCmd) Name() string     { return "publish" }
func (*publishCmd) Synopsis() string { return "generate the HTML report for the portfolio" }
func (*publishCmd) Usage() string {
	return `ilens publish [-o <file>] [-title <title>] [-d <end_date>]

  Runs the full analysis and writes a standalone, styled HTML report,
  suitable for sharing or archiving. The HTML layer performs no financial
  computation, only formatting.
`
}

func (c *publishCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.outputFile, "o", "income_report.html", "Output file for the HTML report")
	f.StringVar(&c.title, "title", "Income Portfolio Analysis", "Title of the HTML page")
	f.StringVar(&c.endDate, "d", "", "End date for the analysis (defaults to today)")
}

func (c *publishCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	analyzer, err := newAnalyzer()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
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

	page, err := renderer.HTMLPage(c.title, renderer.AnalysisMarkdown(report))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering HTML: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := os.WriteFile(c.outputFile, []byte(page), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing report %q: %v\n", c.outputFile, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Report saved to %s\n", c.outputFile)
	return subcommands.ExitSuccess
}
