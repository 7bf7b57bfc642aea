// Package testsupport provides helpers for building throwaway library trees
// in tests, including minimal tagged MP3 payloads that need no binary
// fixtures.
package testsupport

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

// ID3v1 holds the fields written into a synthetic ID3v1 trailer. Empty fields
// stay zeroed, which tag readers report as absent.
type ID3v1 struct {
	Title  string
	Artist string
	Album  string
}

// WriteFile writes content to path, creating parent directories as needed.
func WriteFile(t testing.TB, path string, content []byte) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// WriteMP3 writes payload followed by an ID3v1 trailer to path. The payload
// carries arbitrary bytes; only the trailer matters to tag extraction.
func WriteMP3(t testing.TB, path string, payload []byte, tags ID3v1) {
	t.Helper()

	WriteFile(t, path, append(append([]byte{}, payload...), id3v1Trailer(tags)...))
}

// WriteUntaggedMP3 writes payload with no tag container at all.
func WriteUntaggedMP3(t testing.TB, path string, payload []byte) {
	t.Helper()

	WriteFile(t, path, payload)
}

// id3v1Trailer builds the fixed 128-byte ID3v1 block: "TAG", then 30-byte
// title, artist, and album fields, a 4-byte year, a 30-byte comment, and a
// genre byte.
func id3v1Trailer(tags ID3v1) []byte {
	trailer := make([]byte, 128)
	copy(trailer[0:3], "TAG")
	copyField(trailer[3:33], tags.Title)
	copyField(trailer[33:63], tags.Artist)
	copyField(trailer[63:93], tags.Album)
	trailer[127] = 0xFF
	return trailer
}

func copyField(dst []byte, value string) {
	src := []byte(value)
	if len(src) > len(dst) {
		src = src[:len(dst)]
	}
	copy(dst, src)
}

// Payload returns deterministic filler bytes for file content, long enough to
// exercise streaming hash reads when size exceeds one block.
func Payload(size int) []byte {
	return bytes.Repeat([]byte{0x42}, size)
}
