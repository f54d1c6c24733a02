package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"incomelens"
	"incomelens/date"
	"incomelens/eodhd"
	"incomelens/renderer"
	"incomelens/yahoo"
)

type verifyCmd struct {
	onDate string
}

func (*verifyCmd) Name() string { return "verify" }
func (*verifyCmd) Synopsis() string {
	return "cross-validate a fund's price across all quote sources"
}
func (*verifyCmd) Usage() string {
	return `ilens verify [-d <date>] <symbol>...

  Queries every quote source for the given symbols and shows each
  observation next to the final trusted quote and its confidence label.
  Useful to investigate a 🟡 ALT SOURCE or 🔴 NO DATA entry in a report.
`
}

func (c *verifyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.onDate, "d", "", "Date to verify (defaults to the latest available price)")
}

func (c *verifyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "verify requires at least one symbol")
		return subcommands.ExitUsageError
	}

	var on date.Date
	if c.onDate != "" {
		var err error
		on, err = date.Parse(c.onDate)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	all := []incomelens.QuoteSource{eodhd.New(), yahoo.New()}
	verifier := incomelens.NewVerifier(all...)

	for _, symbol := range f.Args() {
		var observations []incomelens.Observation
		var failures []error
		for _, src := range all {
			obs, err := src.Price(ctx, symbol, on)
			if err != nil {
				failures = append(failures, fmt.Errorf("%s: %w", src.Name(), err))
				continue
			}
			observations = append(observations, obs)
		}
		quote := verifier.Verify(ctx, symbol, on)
		printMarkdown(renderer.VerificationMarkdown(symbol, observations, failures, quote))
	}
	return subcommands.ExitSuccess
}
