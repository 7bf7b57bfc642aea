// Package dupes groups scanned audio files by content hash so identical
// tracks surface together even when filed or named differently. Detection
// only; nothing is merged, renamed, or deleted.
package dupes

import (
	"sort"

	"collator/internal/library"
)

// Group is a set of paths whose files share one content hash.
type Group struct {
	Hash  string
	Paths []string
}

// Groups buckets descriptors by content hash and returns only the buckets
// holding two or more files. Groups are hash-sorted for deterministic output;
// paths keep traversal order.
func Groups(audio []*library.Descriptor) []Group {
	byHash := make(map[string][]string)
	for _, d := range audio {
		byHash[d.ContentHash()] = append(byHash[d.ContentHash()], d.Path())
	}

	groups := make([]Group, 0)
	for hash, paths := range byHash {
		if len(paths) < 2 {
			continue
		}
		groups = append(groups, Group{Hash: hash, Paths: paths})
	}

	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Hash < groups[j].Hash
	})

	return groups
}
