// Package tracker provides the types to aggregate a personal stock portfolio
// from a fixed table of predefined prices.
//
// The core functionalities include:
//   - Price Table: the immutable list of symbols that can be held and their
//     unit price, either built-in, configured, or imported from a JSON document.
//   - Portfolio: the in-memory aggregation of the stocks added by the user,
//     keyed by symbol, in insertion order, with a running total value.
//   - Import/Export: encoding the portfolio summary to CSV, and reading it back.
//
// Amounts and quantities are exact decimals, so that totals always equal the
// sum of their parts.
//
// This package serves as the foundational logic for the `pst` command-line
// tool. Presentation lives in the renderer package, user interaction in the
// session package.
package tracker
