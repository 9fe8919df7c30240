package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/tokenledger/portfolio/docs"
	"github.com/tokenledger/portfolio/renderer"
)

type topicCmd struct {
	raw bool

	out io.Writer // os.Stdout if nil
}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "display a topic of the user manual" }
func (*topicCmd) Usage() string {
	return `folio topic [-raw] [<topic>...]

  Displays the user manual topics, or the list of topics when none is given.

`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.raw, "raw", false, "print markdown instead of styling it for the terminal")
}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	topics := f.Args()
	if len(topics) == 0 {
		topics = []string{"readme"}
	}
	md, err := docs.GetTopics(topics...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		all, _ := docs.GetAllTopics()
		fmt.Fprintf(os.Stderr, "available topics: %s\n", strings.Join(all, ", "))
		return subcommands.ExitUsageError
	}
	if !c.raw {
		if md, err = renderer.Terminal(md); err != nil {
			fmt.Fprintf(os.Stderr, "Error rendering: %v\n", err)
			return subcommands.ExitFailure
		}
	}
	fmt.Fprint(output(c.out), md)
	return subcommands.ExitSuccess
}
