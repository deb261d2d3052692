// Package internal contains the core implementation packages for termkit.
//
// This package follows Go's internal package convention, making these
// packages unavailable for import by external modules while providing
// all the core functionality for the termkit CLI tool.
//
// # Package Organization
//
// The internal packages are organized by functional domain:
//
//   - splitter: quote- and marker-aware term splitting with grouping
//   - normalize: case folding, Unicode normal forms, accents, slugs
//   - coerce: web-form input coercion to booleans, numbers, and lists
//   - config: configuration management with profiles and validation
//   - errors: structured error types with categories and stable codes
//   - logging: structured logging for the command layer
//   - version: build metadata
//
// # Design Principles
//
// The splitter and normalize packages are pure: a compiled splitter is
// immutable and safe for concurrent use, every split is a function of
// (configuration, input) alone, and no library path logs or performs I/O.
// Failures surface as returned errors; caller-supplied normalizer errors
// propagate unchanged.
package internal
