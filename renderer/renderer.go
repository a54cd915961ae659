// Package renderer turns processing results into markdown for the terminal.
package renderer

import (
	"fmt"
	"strings"

	transactions "github.com/adnanhakim/process-transactions-script"
)

// RecordsMarkdown renders the final match records as a markdown table, one
// row per record, in the exact column order of the output sheet.
func RecordsMarkdown(records []transactions.Record) string {
	var b strings.Builder

	fmt.Fprintf(&b, "| %s |\n", strings.Join(transactions.Header, " | "))
	fmt.Fprintln(&b, "|:---|:---|---:|:---|---:|:---|---:|")
	for _, r := range records {
		fmt.Fprintf(&b, "| %s |\n", strings.Join(r.Columns(), " | "))
	}

	return b.String()
}

// SummaryMarkdown renders the run summary.
func SummaryMarkdown(s transactions.Summary) string {
	var b strings.Builder

	fmt.Fprint(&b, "## Summary\n\n")
	fmt.Fprintln(&b, "| | Quantity | Amount |")
	fmt.Fprintln(&b, "|:---|---:|---:|")
	fmt.Fprintf(&b, "| Held | %s | %s |\n", s.Held, s.Invested)
	fmt.Fprintf(&b, "| Booked | %s | %s |\n", s.Booked, s.Realized)
	fmt.Fprintf(&b, "\nTotal records: %d\n", s.Records)

	return b.String()
}

// ReportMarkdown renders the full processing report: the records table
// followed by the summary.
func ReportMarkdown(records []transactions.Record, s transactions.Summary) string {
	var b strings.Builder

	fmt.Fprint(&b, "# Processed Transactions\n\n")
	b.WriteString(RecordsMarkdown(records))
	b.WriteString("\n")
	b.WriteString(SummaryMarkdown(s))

	return b.String()
}

// FormatsMarkdown renders the known source formats as a markdown table.
func FormatsMarkdown(formats []transactions.Format) string {
	var b strings.Builder

	fmt.Fprint(&b, "# Source Formats\n\n")
	fmt.Fprintln(&b, "| Name | Asset | Date Layout | Side | Aggregates |")
	fmt.Fprintln(&b, "|:---|:---|:---|:---|:---|")
	for _, f := range formats {
		side := "sign of quantity"
		if f.Sided() {
			side = fmt.Sprintf("column %d", f.SideCol)
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %v |\n",
			f.Name, f.Asset, f.DateLayout, side, f.Aggregate)
	}

	return b.String()
}
