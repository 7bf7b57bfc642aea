package library

import (
	"errors"
	"fmt"
)

// ErrShallowPath marks a path with fewer segments than the configured layout
// expects. It signals a structural mismatch between the library tree and the
// layout indices, not a transient failure.
var ErrShallowPath = errors.New("path shallower than configured layout")

func shallowPathError(path string, index, segments int) error {
	return fmt.Errorf("%w: %s has %d segments, layout expects index %d", ErrShallowPath, path, segments, index)
}
