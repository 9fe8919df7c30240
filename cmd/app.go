// Package cmd implements the CLI application to compute a token portfolio.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"
	"github.com/tokenledger/portfolio"
	"github.com/tokenledger/portfolio/logging"
)

// Commands are the subcommands of the application, in help order.
var Commands = []subcommands.Command{
	&portfolioCmd{},
	&checkCmd{},
	&topicCmd{},
	&versionCmd{},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, cmd := range Commands {
		c.Register(cmd, "")
	}
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerFile = flag.String("ledger-file", "", "Path to the CSV ledger. Defaults to $"+portfolio.EnvLedgerFile+" or \"transactions.csv\".")
var currency = flag.String("c", "", "Reference currency for valuations. Defaults to $"+portfolio.EnvCurrency+" or \"USD\".")
var apiKey = flag.String("api-key", "", "CryptoCompare API key. If missing it will read the environment variable \""+portfolio.EnvAPIKey+"\".")
var envFile = flag.String("env-file", ".env", "Optional file of environment variables to load before reading the configuration.")

// Verbose enables debug logs on stderr.
var Verbose = flag.Bool("v", false, "verbose logs")

// LoadConfig reads the configuration and applies the global flags over it.
func LoadConfig() (portfolio.Config, error) {
	cfg, err := portfolio.LoadConfig(*envFile)
	if err != nil {
		return cfg, err
	}
	if *ledgerFile != "" {
		cfg.LedgerFile = *ledgerFile
	}
	if *currency != "" {
		cfg.Currency = *currency
	}
	if *apiKey != "" {
		cfg.APIKey = *apiKey
	}
	return cfg, cfg.Validate()
}

// withLogger returns ctx carrying the application logger, writing to stderr.
func withLogger(ctx context.Context) context.Context {
	return logging.WithContext(ctx, logging.New(os.Stderr, *Verbose))
}

// OpenLedger opens the ledger file for streaming.
// The caller must close the returned file.
func OpenLedger(filename string) (*portfolio.LedgerReader, io.Closer, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, nil, err
	}
	r, err := portfolio.NewLedgerReader(f)
	if err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("%s: %w", filename, err)
	}
	return r, f, nil
}

// visited returns the names of the flags that were set on the command line.
func visited(f *flag.FlagSet) map[string]bool {
	set := make(map[string]bool)
	f.Visit(func(fl *flag.Flag) { set[fl.Name] = true })
	return set
}

func output(w io.Writer) io.Writer {
	if w == nil {
		return os.Stdout
	}
	return w
}
