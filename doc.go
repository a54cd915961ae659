// Package transactions reconciles a chronological ledger of buy/sell events
// for financial instruments into realized and still-open position records,
// using strict first-in-first-out (FIFO) lot matching with exact decimal
// arithmetic.
//
// The core pipeline is:
//   - AggregateRows: optional pre-pass merging consecutive same-day partial
//     fills into one event (needed by some broker exports).
//   - ClassifyRows: splitting an instrument's rows into buy and sell events,
//     from an explicit side field or from the sign of the quantity.
//   - BookRows: the FIFO consumption algorithm, applying sells against the
//     oldest open buy lots and splitting lots on partial fills.
//   - Process: driving the pipeline per instrument and producing the final
//     globally sorted reporting sequence with a run summary.
//
// Reading rows out of a spreadsheet and writing results back belong to the
// sheet package; per-source column layouts are plain Format configuration.
//
// This package serves as the foundational logic for the `pts` command-line
// tool.
package transactions
