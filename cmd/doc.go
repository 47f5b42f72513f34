// Package cmd implements the command-line interface for the fastobj codec
// library. It provides a small hierarchical command structure around the
// in-process tooling that ships with the library.
//
// The package is organized into several subpackages:
//
//   - bench: Commands for measuring codec throughput and stream sizes
//   - util: Shared utilities for command-line processing and configuration (internal use)
//
// See fastobj -help for a list of all commands.
package cmd
