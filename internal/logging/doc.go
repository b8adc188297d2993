// Package logging assembles the structured slog loggers used by the CLI.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and provides a no-op logger for tests. Prefer these constructors
// over hand-rolled slog setup so every command emits records with the same
// shape.
package logging
