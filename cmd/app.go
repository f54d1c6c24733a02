// Package cmd implements the CLI application to analyze an income portfolio.
package cmd

import (
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"incomelens"
	"incomelens/eodhd"
	"incomelens/yahoo"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to
// use global flags.

var configFile = flag.String("config", "portfolio.json", "Path to the portfolio configuration file (JSON)")

// Commands lists the subcommands of the application. A main package
// registers them on a Commander and executes the user-selected one.
var Commands = []subcommands.Command{
	subcommands.HelpCommand(),
	subcommands.FlagsCommand(),
	subcommands.CommandsCommand(),
	&reportCmd{},
	&publishCmd{},
	&verifyCmd{},
	&symbolsCmd{},
	&assistCmd{},
}

// LoadConfig reads the portfolio configuration from the app config file.
func LoadConfig() (incomelens.Config, error) {
	cfg, err := incomelens.DecodeConfig(*configFile)
	if err != nil {
		return incomelens.Config{}, fmt.Errorf("could not load configuration: %w", err)
	}
	return cfg, nil
}

// sources returns the ordered quote sources (primary first) and the dividend
// source used by every analysis.
func sources() (*incomelens.Verifier, incomelens.DividendSource) {
	primary := eodhd.New()
	return incomelens.NewVerifier(primary, yahoo.New()), primary
}

// newAnalyzer assembles an Analyzer from the app configuration.
func newAnalyzer() (*incomelens.Analyzer, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	verifier, dividends := sources()
	return incomelens.NewAnalyzer(cfg, verifier, dividends), nil
}
