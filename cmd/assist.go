package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"google.golang.org/genai"

	"incomelens"
	"incomelens/agent"
)

type assistCmd struct{}

func (*assistCmd) Name() string { return "assist" }
func (*assistCmd) Synopsis() string {
	return "start an interactive session with the AI assistant"
}
func (*assistCmd) Usage() string {
	return `ilens assist [<initial prompt>]

  Starts an interactive session with an AI analyst that can read the
  portfolio analysis (positions, confidence labels, totals) and answer
  questions about it. Requires Gemini API credentials in the environment.
`
}

func (*assistCmd) SetFlags(_ *flag.FlagSet) {}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	initialPrompt := ""
	if f.NArg() > 0 {
		initialPrompt = strings.Join(f.Args(), " ")
	}

	analyzer, err := newAnalyzer()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	// The analysis runs lazily on the analyst's first tool call, so the
	// session starts immediately.
	analyst := agent.NewAnalyst(func(ctx context.Context) (*incomelens.Report, error) {
		return analyzer.Run(ctx)
	})
	a := agent.New(os.Stdout, os.Stdin, analyst, agent.NewTrader())

	if err := a.Run(ctx, client, initialPrompt); err != nil {
		fmt.Fprintln(os.Stderr, "Agent failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
