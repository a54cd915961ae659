// Package cmd implements the CLI application to process transaction sheets.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	transactions "github.com/adnanhakim/process-transactions-script"
	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&processCmd{}, "transactions")
	c.Register(&showCmd{}, "transactions")
	c.Register(&exportCmd{}, "transactions")

	c.Register(&formatsCmd{}, "configuration")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var formatsFile = flag.String("formats-file", "", "Path to an optional YAML file declaring extra source formats")
var verbose = flag.Bool("v", false, "Verbose mode for detailed logging")

// SetupLogging applies the -v flag to the standard logger. Call after flag.Parse.
func SetupLogging() {
	if !*verbose {
		log.SetOutput(io.Discard)
	}
}

// Formats returns the known source formats: built-ins plus the ones from
// the -formats-file, which take precedence.
func Formats() ([]transactions.Format, error) {
	extras, err := ExtraFormats()
	if err != nil {
		return nil, err
	}
	return append(extras, transactions.BuiltinFormats()...), nil
}

// ExtraFormats loads the formats declared in the -formats-file, if any.
func ExtraFormats() ([]transactions.Format, error) {
	if *formatsFile == "" {
		return nil, nil
	}
	f, err := os.Open(*formatsFile)
	if err != nil {
		return nil, fmt.Errorf("cannot open formats file %q: %w", *formatsFile, err)
	}
	defer f.Close()
	return transactions.LoadFormats(f)
}

// printMarkdown renders markdown for the terminal and prints it. On
// rendering errors the raw markdown is printed instead.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
