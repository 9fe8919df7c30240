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
	"github.com/tokenledger/portfolio/date"
	"github.com/tokenledger/portfolio/renderer"
)

// portfolioCmd holds the flags for the 'portfolio' subcommand.
type portfolioCmd struct {
	token   string
	day     string
	strict  bool
	format  string
	jobs    int
	noCache bool
	prices  portfolio.StaticPrices

	out io.Writer // os.Stdout if nil
}

func (*portfolioCmd) Name() string { return "portfolio" }
func (*portfolioCmd) Synopsis() string {
	return "list the portfolio of the tokens, valued in the reference currency"
}
func (*portfolioCmd) Usage() string {
	return `folio portfolio [-t <token>] [-d <YYYY-MM-DD>] [-strict] [-format text|md|html|json]

  Sums the deposits and withdrawals of the ledger, per token, and values each
  balance at its current price in the reference currency (-c).

  With -t only the given token is considered, with -d only the transactions
  of that day in the local timezone.

Usage Examples:
$ folio portfolio
$ folio portfolio -t BTC -d 2024-01-15
$ folio -c EUR portfolio -price BTC=60000 -price ETH=3000

`
}

func (c *portfolioCmd) SetFlags(f *flag.FlagSet) {
	c.prices = make(portfolio.StaticPrices)
	f.StringVar(&c.token, "t", "", "Token name, only this token is listed.")
	f.StringVar(&c.token, "token", "", "alias for -t")
	f.StringVar(&c.day, "d", "", "Date in YYYY-MM-DD format, only transactions of that day are summed.")
	f.StringVar(&c.day, "date", "", "alias for -d")
	f.BoolVar(&c.strict, "strict", false, "fail on the first malformed record instead of skipping it")
	f.StringVar(&c.format, "format", string(renderer.Text), "Output format: text, md, html or json.")
	f.IntVar(&c.jobs, "j", 0, "Number of concurrent price lookups. Defaults to $"+portfolio.EnvConcurrency+" or 4.")
	f.BoolVar(&c.noCache, "no-cache", false, "always fetch live prices")
	f.Var(c.prices, "price", "Fixed TOKEN=PRICE, can be repeated. When set, no live price is fetched.")
}

func (c *portfolioCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	set := visited(f)
	if (set["t"] || set["token"]) && c.token == "" {
		fmt.Fprintln(os.Stderr, "Error: enter token name")
		return subcommands.ExitUsageError
	}
	var day *date.Date
	if set["d"] || set["date"] {
		if c.day == "" {
			fmt.Fprintln(os.Stderr, "Error: enter date")
			return subcommands.ExitUsageError
		}
		on, err := date.Parse(c.day)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: enter valid date in YYYY-MM-DD format: %v\n", err)
			return subcommands.ExitUsageError
		}
		day = &on
	}
	format, err := renderer.ParseFormat(c.format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error in configuration: %v\n", err)
		return subcommands.ExitUsageError
	}
	if c.jobs > 0 {
		cfg.Concurrency = c.jobs
	}
	if c.noCache {
		cfg.CacheWindow = 0
	}

	ctx = withLogger(ctx)
	criteria := portfolio.NewCriteria(c.token, day, time.Local)
	policy := portfolio.SkipMalformed
	if c.strict {
		policy = portfolio.FailOnMalformed
	}

	ledger, closer, err := OpenLedger(cfg.LedgerFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closer.Close()

	holdings, stats, err := portfolio.Aggregator{Criteria: criteria, Policy: policy}.Aggregate(ctx, ledger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading ledger %q: %v\n", cfg.LedgerFile, err)
		return subcommands.ExitFailure
	}
	if n := len(stats.Malformed); n > 0 {
		fmt.Fprintf(os.Stderr, "Warning: %d malformed record(s) skipped, run 'folio check' for details.\n", n)
	}

	w := output(c.out)
	if d, ok := portfolio.Classify(holdings, criteria); !ok {
		if format == renderer.Text {
			fmt.Fprintln(w, d)
			return subcommands.ExitSuccess
		}
		s, err := renderer.Render(format, renderer.DiagnosticMarkdown(d), d)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error rendering: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Fprint(w, s)
		return subcommands.ExitSuccess
	}

	var source portfolio.PriceSource = cfg.PriceSource()
	if len(c.prices) > 0 {
		source = c.prices
	}
	valuation, err := portfolio.Value(ctx, holdings, source, cfg.Currency, portfolio.ValueOptions{Concurrency: cfg.Concurrency})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error valuing portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	s, err := renderer.Render(format, renderer.ValuationMarkdown(valuation), valuation)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprint(w, s)
	return subcommands.ExitSuccess
}
