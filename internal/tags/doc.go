// Package tags extracts title/artist/album metadata from audio containers.
//
// It wraps the dhowden/tag reader (ID3v1, ID3v2, MP4 atoms). A file with no
// tag container, or with a corrupt one, is a normal state: extraction yields
// zero values, never an error.
package tags
