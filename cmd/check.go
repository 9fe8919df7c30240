package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/subcommands"
	"github.com/tokenledger/portfolio"
)

type checkCmd struct {
	strict bool

	out io.Writer // os.Stdout if nil
}

func (*checkCmd) Name() string { return "check" }
func (*checkCmd) Synopsis() string {
	return "validates the ledger file and reports malformed records"
}
func (*checkCmd) Usage() string {
	return `folio check [-strict]

  Reads the whole ledger without fetching any price, and reports the number
  of records, the tokens found, and every record that cannot be summed
  (malformed amount, missing token or timestamp).
  Exits with a failure status if any record is malformed.

`
}

func (c *checkCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.strict, "strict", false, "stop at the first malformed record")
}

func (c *checkCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error in configuration: %v\n", err)
		return subcommands.ExitUsageError
	}
	ledger, closer, err := OpenLedger(cfg.LedgerFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closer.Close()

	policy := portfolio.SkipMalformed
	if c.strict {
		policy = portfolio.FailOnMalformed
	}
	// warnings are reported below, not logged.
	holdings, stats, err := portfolio.Aggregator{Policy: policy}.Aggregate(ctx, ledger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %q: %v\n", cfg.LedgerFile, err)
		return subcommands.ExitFailure
	}

	w := output(c.out)
	fmt.Fprintf(w, "%s: %d record(s), %d token(s) in %v\n", cfg.LedgerFile, stats.Read, holdings.Len(), stats.Elapsed.Round(time.Millisecond))
	for _, t := range holdings.Tokens() {
		q, _ := holdings.Balance(t)
		fmt.Fprintf(w, "  %s\t%s\n", t, q)
	}
	if len(stats.Malformed) == 0 {
		return subcommands.ExitSuccess
	}
	fmt.Fprintf(w, "%d malformed record(s):\n", len(stats.Malformed))
	for _, err := range stats.Malformed {
		fmt.Fprintf(w, "  %v\n", err)
	}
	return subcommands.ExitFailure
}
