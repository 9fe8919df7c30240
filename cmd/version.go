package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"runtime"

	"github.com/google/subcommands"
)

// Version is the application version, set at build time with
// -ldflags "-X github.com/tokenledger/portfolio/cmd.Version=1.2.3".
var Version = "dev"

type versionCmd struct {
	out io.Writer // os.Stdout if nil
}

func (*versionCmd) Name() string             { return "version" }
func (*versionCmd) Synopsis() string         { return "display the application version" }
func (*versionCmd) Usage() string            { return "folio version\n" }
func (*versionCmd) SetFlags(_ *flag.FlagSet) {}

func (c *versionCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	fmt.Fprintf(output(c.out), "folio %s (%s)\n", Version, runtime.Version())
	return subcommands.ExitSuccess
}
