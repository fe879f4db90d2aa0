// Package logging provides structured logging utilities for the snowreminder
// application.
//
// This package centralizes logging patterns to ensure consistent, structured
// logging throughout the codebase using the standard library's slog package:
// a single Setup entry point for handler and level selection, plus attribute
// helpers with shared key constants so log lines stay greppable.
package logging
