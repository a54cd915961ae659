package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	transactions "github.com/adnanhakim/process-transactions-script"
	"github.com/google/subcommands"
)

type exportCmd struct {
	input  string
	output string
}

func (*exportCmd) Name() string { return "export" }
func (*exportCmd) Synopsis() string {
	return "process a source sheet and export the booked records as JSONL"
}
func (*exportCmd) Usage() string {
	return `pts export <source> -i <input.xlsx> [-o <records.jsonl>]

  Runs the same FIFO booking as 'process' but writes the records in the
  JSONL interchange format, one record per line, to the output file or to
  stdout. The format is human readable and diffs cleanly.
`
}

func (p *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.input, "i", "", "Input file name of the transactions sheet.")
	f.StringVar(&p.output, "o", "", "Output file name. Defaults to stdout.")
}

func (p *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	records, _, _, ok := run(f, p.input)
	if !ok {
		return subcommands.ExitFailure
	}

	out := os.Stdout
	if p.output != "" {
		file, err := os.Create(p.output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", p.output, err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		out = file
	}

	if err := transactions.EncodeRecords(out, records); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if p.output != "" {
		fmt.Printf("Successfully exported %d records to %s\n", len(records), p.output)
	}
	return subcommands.ExitSuccess
}
