// Package config loads, normalizes, and validates collator configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours the COLLATOR_LIBRARY_DIR
// environment fallback for the library root. Obtain settings through this
// package so downstream code receives sanitized paths and clear validation
// errors.
package config
