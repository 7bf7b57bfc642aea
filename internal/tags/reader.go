package tags

import (
	"io"
	"os"

	"github.com/dhowden/tag"
)

// Tags holds the embedded metadata fields collator cares about. Each field is
// independently present-or-absent; absent fields are empty strings.
type Tags struct {
	Title  string
	Artist string
	Album  string
}

// Empty reports whether no field carries a value.
func (t Tags) Empty() bool {
	return t.Title == "" && t.Artist == "" && t.Album == ""
}

// Read extracts tags from an open audio stream. Missing or unparseable tag
// containers yield zero Tags.
func Read(r io.ReadSeeker) Tags {
	meta, err := tag.ReadFrom(r)
	if err != nil {
		return Tags{}
	}
	return Tags{
		Title:  meta.Title(),
		Artist: meta.Artist(),
		Album:  meta.Album(),
	}
}

// ReadFile extracts tags from the file at path. Only the open can fail; tag
// parsing problems are reported as empty Tags.
func ReadFile(path string) (Tags, error) {
	file, err := os.Open(path)
	if err != nil {
		return Tags{}, err
	}
	defer file.Close()
	return Read(file), nil
}
