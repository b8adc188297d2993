// Package workflow implements the file-level conversion operations behind
// the CLI commands: JSON to CSV, CSV to JSON, and in-memory round-trip
// verification.
//
// The Runner owns every filesystem concern the pure codec layer avoids:
// input existence and UTF-8 checks, the overwrite guard, parent directory
// creation, advisory write locking, and atomic output writes. Errors come
// back tagged with the errs sentinels so the CLI can map them to exit codes
// without inspecting messages.
package workflow
