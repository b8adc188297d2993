// Package main hosts the tabular CLI entrypoint and command graph.
//
// The Cobra-based command tree translates terminal invocations into workflow
// calls: JSON to CSV conversion, CSV to JSON conversion, round-trip
// verification, and configuration scaffolding. It centralizes configuration
// resolution and structured logging setup so subcommands can focus on user
// experience instead of wiring.
//
// Keep this package lean: add new functionality to the internal packages
// first, then surface it through dedicated commands or flags here.
package main
