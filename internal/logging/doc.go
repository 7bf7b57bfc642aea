// Package logging constructs the slog loggers used across collator.
//
// It provides a compact console handler for interactive runs, a JSON handler
// for machine-readable output, attribute helper constructors, and component
// loggers so every subsystem tags its records consistently.
package logging
