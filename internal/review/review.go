// Package review cross-checks the two identity sources a scan produces: the
// artist/album encoded in a track's directory position and the artist/album
// embedded in its tags. Disagreements usually mean a misfiled track or a
// sloppy rip.
package review

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"collator/internal/library"
)

// Finding records one disagreement between path-derived and tag-derived
// identity for a single file.
type Finding struct {
	Path      string
	Field     string // "artist" or "album"
	PathValue string
	TagValue  string
	Suggested string
}

var titleCaser = cases.Title(language.Und)

// Compare inspects every audio descriptor and reports fields where the tag
// value disagrees with the directory name. Comparison ignores case and
// surrounding whitespace; files missing either side of a field are skipped,
// as are files whose paths are too shallow for the layout (the scanner
// already reports those).
func Compare(audio []*library.Descriptor) []Finding {
	findings := make([]Finding, 0)

	for _, d := range audio {
		pathArtist, err := d.PathArtist()
		if err != nil {
			continue
		}
		pathAlbum, err := d.PathAlbum()
		if err != nil {
			continue
		}

		if f, ok := compareField(d.Path(), "artist", pathArtist, d.ArtistTag()); ok {
			findings = append(findings, f)
		}
		if f, ok := compareField(d.Path(), "album", pathAlbum, d.AlbumTag()); ok {
			findings = append(findings, f)
		}
	}

	return findings
}

func compareField(path, field, pathValue, tagValue string) (Finding, bool) {
	pathValue = strings.TrimSpace(pathValue)
	tagValue = strings.TrimSpace(tagValue)
	if pathValue == "" || tagValue == "" {
		return Finding{}, false
	}
	if strings.EqualFold(pathValue, tagValue) {
		return Finding{}, false
	}
	return Finding{
		Path:      path,
		Field:     field,
		PathValue: pathValue,
		TagValue:  tagValue,
		Suggested: titleCaser.String(pathValue),
	}, true
}
