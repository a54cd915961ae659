package cmd

import (
	"context"
	"flag"

	"github.com/adnanhakim/process-transactions-script/renderer"
	"github.com/google/subcommands"
)

type showCmd struct {
	input string
}

func (*showCmd) Name() string { return "show" }
func (*showCmd) Synopsis() string {
	return "process a source sheet and print the booked records without writing a file"
}
func (*showCmd) Usage() string {
	return `pts show <source> -i <input.xlsx>

  Runs the same FIFO booking as 'process' but only prints the resulting
  table and summary, leaving no output file behind. Useful to inspect an
  export before committing to an output workbook.
`
}

func (p *showCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.input, "i", "", "Input file name of the transactions sheet.")
}

func (p *showCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	records, summary, _, ok := run(f, p.input)
	if !ok {
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.ReportMarkdown(records, summary))
	return subcommands.ExitSuccess
}
