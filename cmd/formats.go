package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/adnanhakim/process-transactions-script/renderer"
	"github.com/google/subcommands"
)

type formatsCmd struct{}

func (*formatsCmd) Name() string     { return "formats" }
func (*formatsCmd) Synopsis() string { return "list the known source formats" }
func (*formatsCmd) Usage() string {
	return `pts formats

  Lists the built-in source formats and any extra formats declared in the
  -formats-file.
`
}

func (c *formatsCmd) SetFlags(f *flag.FlagSet) {}

func (c *formatsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	formats, err := Formats()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.FormatsMarkdown(formats))
	return subcommands.ExitSuccess
}
