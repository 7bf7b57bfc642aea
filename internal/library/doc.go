// Package library implements the scan core: per-file descriptors that carry a
// content hash, embedded tags, and path-derived identity, plus the recursive
// scanner that partitions a directory tree into audio and unknown entries.
package library
