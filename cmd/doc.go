// Package cmd implements the command-line interface for snowreminder.
//
// This package provides the following commands:
//   - check: Run one reminder check and exit (the default command)
//   - serve: Run the check on a cron schedule with metrics and health endpoints
//   - version: Display version information
package cmd
