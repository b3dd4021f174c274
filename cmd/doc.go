// Package cmd implements the command-line interface for kvload. It provides
// a hierarchical command structure for running the load generator against
// the different storage backends.
//
// The package is organized into subpackages:
//
//   - run: Commands for driving a backend under load (memory, xmem, file)
//   - util: Shared utilities for command-line processing and configuration (internal use)
//
// See kvload -help for a list of all commands.
package cmd
