package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"incomelens/cmd"
)

// completion describes the CLI for bash/zsh completion. It is consulted
// before flag parsing and is a no-op outside a completion request.
var completion = &complete.Command{
	Sub: map[string]*complete.Command{
		"report": {Flags: map[string]complete.Predictor{
			"d":       predict.Nothing,
			"workers": predict.Nothing,
			"json":    predict.Nothing,
		}},
		"publish": {Flags: map[string]complete.Predictor{
			"o":     predict.Files("*.html"),
			"title": predict.Nothing,
			"d":     predict.Nothing,
		}},
		"verify": {Flags: map[string]complete.Predictor{
			"d": predict.Nothing,
		}},
		"symbols": {},
		"assist":  {},
	},
	Flags: map[string]complete.Predictor{
		"config": predict.Files("*.json"),
	},
}

func main() {
	completion.Complete("ilens")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
