// Package dataview implements the pure data-view pipeline: the transformations
// that take an immutable dataset.Table snapshot and an explicit view request
// and produce the numeric series, normalized matrices, and aggregated pivots
// a host renders.
//
// # Architecture
//
// The package is organized around four transformations:
//
// 1. Selector: maps a coarse user selection (display labels or a calendar
// month) to row positions in the full table
// 2. Projector: extracts single-column or all-numeric-column views over a
// selection, with min-max normalization in the all-columns case
// 3. Sparkline: per-column descriptive statistics plus a compact sub-series
// for the first calendar month
// 4. Aggregator: pivoted sums over externally supplied grouped records
//
// Every transformation is a pure function of its inputs. Per-value failures
// (numeric coercion) are absorbed as NaN missing markers; per-request failures
// (selection, empty projection) surface as typed errors the caller branches on.
package dataview
