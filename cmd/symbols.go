package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"incomelens/renderer"
)

type symbolsCmd struct{}

func (*symbolsCmd) Name() string     { return "symbols" }
func (*symbolsCmd) Synopsis() string { return "list the configured funds and their categories" }
func (*symbolsCmd) Usage() string {
	return `ilens symbols

  Lists the funds of the configured portfolio in analysis order, with the
  category each one belongs to.
`
}

func (*symbolsCmd) SetFlags(_ *flag.FlagSet) {}

func (c *symbolsCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.SymbolsMarkdown(cfg))
	return subcommands.ExitSuccess
}
