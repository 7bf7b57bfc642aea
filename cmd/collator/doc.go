// Command collator scans a music library tree, fingerprints every file by
// content, reads embedded tags, and reports identified audio files, unknown
// entries, duplicate content, and path-vs-tag mismatches.
package main
