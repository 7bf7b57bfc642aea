package config

import (
	"errors"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateLayout(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if strings.TrimSpace(c.Paths.LibraryDir) == "" {
		return errors.New("paths.library_dir must be set (or export COLLATOR_LIBRARY_DIR)")
	}
	return nil
}

func (c *Config) validateLayout() error {
	if c.Layout.ArtistIndex < 0 {
		return errors.New("layout.artist_index must be >= 0")
	}
	if c.Layout.AlbumIndex <= c.Layout.ArtistIndex {
		return errors.New("layout.album_index must be greater than layout.artist_index")
	}
	return nil
}
