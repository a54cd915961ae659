package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	transactions "github.com/adnanhakim/process-transactions-script"
	"github.com/adnanhakim/process-transactions-script/renderer"
	"github.com/adnanhakim/process-transactions-script/sheet"
	"github.com/google/subcommands"
)

type processCmd struct {
	input  string
	output string
}

func (*processCmd) Name() string { return "process" }
func (*processCmd) Synopsis() string {
	return "process buy and sell transactions from a source sheet into booked records"
}
func (*processCmd) Usage() string {
	return `pts process <source> -i <input.xlsx> [-o <output.xlsx>]

  Reads the transaction sheet exported by the named source (cams, kfintech,
  zerodha, or a format from -formats-file), books sells against buys using
  FIFO matching, writes the resulting records to an output workbook, and
  prints the processed table with a summary.

Usage Examples:
# Process a CAMS export into cams_output_<HHMMSS>.xlsx
$ pts process cams -i transactions.xlsx

`
}

func (p *processCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.input, "i", "", "Input file name of the transactions sheet.")
	f.StringVar(&p.output, "o", "", "Output file name. Defaults to <source>_output_<HHMMSS>.xlsx.")
}

func (p *processCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	records, summary, format, ok := run(f, p.input)
	if !ok {
		return subcommands.ExitFailure
	}

	output := p.output
	if output == "" {
		output = format.DefaultOutput()
	}

	cells := [][]string{transactions.Header}
	for _, r := range records {
		cells = append(cells, r.Columns())
	}
	if err := sheet.Write(output, format.Asset.SheetName(), cells); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.ReportMarkdown(records, summary))
	fmt.Printf("Successfully wrote %d records to %s\n", len(records), output)
	return subcommands.ExitSuccess
}

// run executes the shared part of the processing pipeline: resolve the
// source format from the first positional argument, read the input sheet,
// and book the transactions. ok is false when an error was already reported.
func run(f *flag.FlagSet, input string) (records []transactions.Record, summary transactions.Summary, format transactions.Format, ok bool) {
	source := f.Arg(0)
	if source == "" {
		fmt.Fprintln(os.Stderr, "Error: missing source format name (e.g. cams, kfintech, zerodha)")
		return records, summary, format, false
	}
	if input == "" {
		fmt.Fprintln(os.Stderr, "Error: missing input file name (-i)")
		return records, summary, format, false
	}

	extras, err := ExtraFormats()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return records, summary, format, false
	}
	format, err = transactions.LookupFormat(source, extras)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return records, summary, format, false
	}

	cells, err := sheet.Read(input)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return records, summary, format, false
	}

	rows, err := transactions.RowsFromSheet(cells, format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %q as a %s sheet: %v\n", input, format.Name, err)
		return records, summary, format, false
	}

	records, summary = transactions.Process(rows, format)
	return records, summary, format, true
}
