package library

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"collator/internal/tags"
)

// hashBlockSize is the read granularity for content hashing. Purely a memory
// bound; the digest is identical for any block size.
const hashBlockSize = 64 * 1024

var audioFilePattern = regexp.MustCompile(`(?i)^.+\.(mp3|m4a)$`)

// Layout describes which slash-separated path segments hold the artist and
// album directory names.
type Layout struct {
	ArtistIndex int
	AlbumIndex  int
}

// DefaultLayout matches a library rooted four levels deep, e.g.
// /home/user/music/library/Artist/Album/track.mp3.
var DefaultLayout = Layout{ArtistIndex: 4, AlbumIndex: 5}

// Descriptor represents one filesystem file. The content hash is computed
// exactly once at construction and never recomputed; embedded tags are read
// best-effort and absence is a normal state.
type Descriptor struct {
	path   string
	hash   string
	tags   tags.Tags
	layout Layout
}

// NewDescriptor opens, fully reads, and hashes the file at path, then
// attempts tag extraction from the same handle. It fails only on I/O errors;
// a file without parseable tags still constructs.
func NewDescriptor(path string, layout Layout) (*Descriptor, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	hasher := sha1.New()
	if _, err := io.CopyBuffer(hasher, file, make([]byte, hashBlockSize)); err != nil {
		return nil, fmt.Errorf("hash %s: %w", path, err)
	}

	d := &Descriptor{
		path:   path,
		hash:   hex.EncodeToString(hasher.Sum(nil)),
		layout: layout,
	}

	if _, err := file.Seek(0, io.SeekStart); err == nil {
		d.tags = tags.Read(file)
	}

	return d, nil
}

// Path returns the filesystem path the descriptor was built from.
func (d *Descriptor) Path() string { return d.path }

// ContentHash returns the SHA-1 hex digest of the file's full content.
func (d *Descriptor) ContentHash() string { return d.hash }

// IsAudioFile reports whether the base filename carries a recognized audio
// extension. Extension is the sole classification signal; content is never
// sniffed.
func (d *Descriptor) IsAudioFile() bool {
	return IsAudioFile(d.path)
}

// IsAudioFile reports whether the base of path names an mp3 or m4a file,
// case-insensitively.
func IsAudioFile(path string) bool {
	return audioFilePattern.MatchString(filepath.Base(path))
}

// TitleTag returns the embedded title, or "" when absent.
func (d *Descriptor) TitleTag() string { return d.tags.Title }

// ArtistTag returns the embedded artist, or "" when absent.
func (d *Descriptor) ArtistTag() string { return d.tags.Artist }

// AlbumTag returns the embedded album, or "" when absent.
func (d *Descriptor) AlbumTag() string { return d.tags.Album }

// Tags returns the full embedded tag set.
func (d *Descriptor) Tags() tags.Tags { return d.tags }

// PathArtist returns the artist directory name taken from the configured path
// segment. Paths shallower than the layout fail with ErrShallowPath.
func (d *Descriptor) PathArtist() (string, error) {
	return d.pathSegment(d.layout.ArtistIndex)
}

// PathAlbum returns the album directory name taken from the configured path
// segment. Paths shallower than the layout fail with ErrShallowPath.
func (d *Descriptor) PathAlbum() (string, error) {
	return d.pathSegment(d.layout.AlbumIndex)
}

func (d *Descriptor) pathSegment(index int) (string, error) {
	segments := strings.Split(filepath.ToSlash(d.path), "/")
	if index >= len(segments) {
		return "", shallowPathError(d.path, index, len(segments))
	}
	return segments[index], nil
}
