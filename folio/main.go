// Command folio computes the portfolio of tokens recorded in a CSV ledger.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
	"github.com/tokenledger/portfolio/cmd"
)

// completion describes the command line for shell completion.
var completion = &complete.Command{
	Flags: map[string]complete.Predictor{
		"ledger-file": predict.Files("*.csv"),
		"env-file":    predict.Files("*"),
		"c":           predict.Set{"USD", "EUR", "GBP", "JPY", "CHF"},
		"api-key":     predict.Something,
		"v":           predict.Nothing,
	},
	Sub: map[string]*complete.Command{
		"portfolio": {
			Flags: map[string]complete.Predictor{
				"t":        predict.Something,
				"token":    predict.Something,
				"d":        predict.Something,
				"date":     predict.Something,
				"strict":   predict.Nothing,
				"format":   predict.Set{"text", "md", "html", "json"},
				"j":        predict.Something,
				"no-cache": predict.Nothing,
				"price":    predict.Something,
			},
		},
		"check": {Flags: map[string]complete.Predictor{"strict": predict.Nothing}},
		"topic": {
			Flags: map[string]complete.Predictor{"raw": predict.Nothing},
			Args:  predict.Set{"ledger", "portfolio", "config"},
		},
		"version": {},
	},
}

func main() {
	// answers the shell and exits when invoked for completion.
	completion.Complete(path.Base(os.Args[0]))

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
