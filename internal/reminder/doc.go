// Package reminder implements the snowboarding reminder pipeline: filter
// calendar events by keyword and weekend day, check the 7-day window, and
// trigger the notification.
//
// The pipeline takes its dependencies (event source, notifier, clock)
// explicitly, and classifies failures with a Kind tag so the caller can tell
// recoverable per-calendar fetch errors apart from fatal ones.
package reminder
