// Package incomelens computes total-return performance for a fixed-size
// portfolio of income-oriented exchange-traded funds, combining price
// appreciation with accumulated dividend income.
//
// Every reported price is cross-validated before it is trusted: a quote is
// fetched from a primary market-data source and, when that fails, from an
// alternate source. The resulting quote carries a confidence label
// (VERIFIED, ALT SOURCE or NO DATA) so a reader can always judge how much
// corroboration a figure received. The engine never substitutes a default
// value (zero, previous price) for missing data.
//
// The core functionalities include:
//   - Price Verification: reconciling observations from an ordered list of
//     quote sources into a single trusted quote with a confidence label.
//   - Dividend Aggregation: summing per-share dividend payouts over the
//     holding period, with an explicit "incomplete" flag when the history
//     could not be retrieved.
//   - Return Calculation: deriving shares held, portfolio value, dividends
//     collected, price gain/loss and total return from trusted quotes using
//     exact decimal arithmetic.
//   - Orchestration: running the analysis for a configured symbol list and
//     assembling the ordered result set consumed by the report renderers.
//
// This package serves as the foundational logic for the `ilens` command-line
// tool.
package incomelens
