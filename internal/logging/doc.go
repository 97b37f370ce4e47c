// Package logging assembles the structured slog loggers used across
// coursebuild commands.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and exposes a component-tagging helper so command code emits log
// lines with a consistent shape. A no-op logger is provided for tests and
// wiring code that cannot fail.
package logging
