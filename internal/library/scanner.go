package library

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"collator/internal/logging"
)

// Failure records a per-file error collected during a lenient scan.
type Failure struct {
	Path string
	Err  error
}

// Result aggregates one traversal. Audio and Unknown follow encounter order;
// Failures is populated only in lenient mode.
type Result struct {
	Audio    []*Descriptor
	Unknown  []string
	Failures []Failure
}

// Options configures a Scanner.
type Options struct {
	Layout Layout
	// Lenient keeps walking past per-file errors and records them in
	// Result.Failures. The default aborts the whole traversal on the
	// first error.
	Lenient bool
	Logger  *slog.Logger
}

// Scanner walks a directory tree and classifies every entry.
type Scanner struct {
	layout  Layout
	lenient bool
	logger  *slog.Logger
}

// NewScanner constructs a scanner. A zero Layout falls back to DefaultLayout.
func NewScanner(opts Options) *Scanner {
	layout := opts.Layout
	if layout == (Layout{}) {
		layout = DefaultLayout
	}
	return &Scanner{
		layout:  layout,
		lenient: opts.Lenient,
		logger:  logging.NewComponentLogger(opts.Logger, "scanner"),
	}
}

// BuildLibrary recursively scans root, partitioning entries into audio
// descriptors and unknown paths. Directories (including symlinks to
// directories) are descended depth-first; regular files are classified by
// extension; anything else lands in the unknown collection without being
// opened.
func (s *Scanner) BuildLibrary(root string) (*Result, error) {
	result := &Result{}
	if err := s.walk(root, result); err != nil {
		return nil, err
	}

	s.logger.Debug("scan finished",
		logging.String("root", root),
		logging.Int("audio_count", len(result.Audio)),
		logging.Int("unknown_count", len(result.Unknown)),
		logging.Int("failure_count", len(result.Failures)))

	return result, nil
}

func (s *Scanner) walk(dir string, result *Result) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("list %s: %w", dir, err)
	}

	s.logger.Debug("scanning directory", logging.String("path", dir))

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())

		info, err := os.Stat(path)
		if err != nil {
			// Broken symlinks and the like: not a file, not a
			// directory, so unknown.
			result.Unknown = append(result.Unknown, path)
			continue
		}

		switch {
		case info.IsDir():
			if err := s.walk(path, result); err != nil {
				return err
			}
		case info.Mode().IsRegular():
			if err := s.classifyFile(path, result); err != nil {
				if !s.lenient {
					return err
				}
				result.Failures = append(result.Failures, Failure{Path: path, Err: err})
				s.logger.Warn("skipping file after error",
					logging.String(logging.FieldEventType, "scan_file_failed"),
					logging.String("path", path),
					logging.Error(err))
			}
		default:
			result.Unknown = append(result.Unknown, path)
		}
	}

	return nil
}

func (s *Scanner) classifyFile(path string, result *Result) error {
	descriptor, err := NewDescriptor(path, s.layout)
	if err != nil {
		return err
	}

	if !descriptor.IsAudioFile() {
		result.Unknown = append(result.Unknown, path)
		return nil
	}

	// Surface structural layout mismatches during traversal rather than at
	// report time.
	if _, err := descriptor.PathArtist(); err != nil {
		return err
	}
	if _, err := descriptor.PathAlbum(); err != nil {
		return err
	}

	result.Audio = append(result.Audio, descriptor)
	return nil
}
