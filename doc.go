// Package finsight provides the core types and functions for tracking a
// watch-list of stock symbols and projecting retirement savings. It is
// designed to be local-first and auditable: the watch-list lives in a
// plain JSON file the user owns, and the projection engine is a pure
// function that works without any network access.
//
// The core functionalities include:
//   - Retirement Projection: a deterministic engine computing the
//     month-by-month growth of a savings plan and the sustainable
//     monthly pension it can fund under a fixed safe-withdrawal rule.
//   - Watch-list Management: an ordered list of stock symbols with the
//     quantity held for each, persisted in a human-readable JSON file.
//   - Valuation: combining held quantities with per-symbol prices to
//     value the watch-list in a single reporting currency.
//
// AI-backed market analysis of the watch-list lives in the advisor
// subpackage. This package performs no I/O of its own beyond the
// explicit Encode/Decode functions.
//
// This package serves as the foundational logic for the `fin`
// command-line tool, ensuring that all operations are consistent and
// based on a single source of truth.
package finsight
