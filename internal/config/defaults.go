package config

const (
	defaultLibraryDir  = "~/music"
	defaultLogDir      = "~/.local/share/collator/logs"
	defaultLogFormat   = "console"
	defaultLogLevel    = "info"
	defaultArtistIndex = 4
	defaultAlbumIndex  = 5
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LibraryDir: defaultLibraryDir,
			LogDir:     defaultLogDir,
		},
		Layout: Layout{
			ArtistIndex: defaultArtistIndex,
			AlbumIndex:  defaultAlbumIndex,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
