package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultLayoutIndices(t *testing.T) {
	cfg := Default()
	if cfg.Layout.ArtistIndex != 4 {
		t.Errorf("default artist index: got %d, want 4", cfg.Layout.ArtistIndex)
	}
	if cfg.Layout.AlbumIndex != 5 {
		t.Errorf("default album index: got %d, want 5", cfg.Layout.AlbumIndex)
	}
	if cfg.Scan.Lenient {
		t.Error("strict mode should be the default")
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("COLLATOR_LIBRARY_DIR", "")
	path := filepath.Join(t.TempDir(), "nope.toml")

	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if exists {
		t.Error("exists should be false for a missing file")
	}
	if resolved != path {
		t.Errorf("resolved path mismatch: got %s, want %s", resolved, path)
	}
	if cfg.Logging.Format != "console" {
		t.Errorf("default log format: got %q", cfg.Logging.Format)
	}
}

func TestLoadParsesFile(t *testing.T) {
	t.Setenv("COLLATOR_LIBRARY_DIR", "")
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := strings.Join([]string{
		"[paths]",
		`library_dir = "` + dir + `"`,
		`log_dir = "` + dir + `"`,
		"[layout]",
		"artist_index = 2",
		"album_index = 3",
		"[scan]",
		"lenient = true",
		"[logging]",
		`format = "JSON"`,
		`level = "Debug"`,
	}, "\n")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !exists {
		t.Fatal("exists should be true")
	}
	if cfg.Paths.LibraryDir != dir {
		t.Errorf("library_dir: got %q, want %q", cfg.Paths.LibraryDir, dir)
	}
	if cfg.Layout.ArtistIndex != 2 || cfg.Layout.AlbumIndex != 3 {
		t.Errorf("layout: got %d/%d, want 2/3", cfg.Layout.ArtistIndex, cfg.Layout.AlbumIndex)
	}
	if !cfg.Scan.Lenient {
		t.Error("lenient should be true")
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Errorf("logging should be lowercased: got %q/%q", cfg.Logging.Format, cfg.Logging.Level)
	}
}

func TestEnvOverridesLibraryDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("COLLATOR_LIBRARY_DIR", dir)

	cfg, _, _, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Paths.LibraryDir != dir {
		t.Errorf("env override ignored: got %q, want %q", cfg.Paths.LibraryDir, dir)
	}
}

func TestValidateRejectsBadLayout(t *testing.T) {
	cfg := Default()
	cfg.Layout.ArtistIndex = 5
	cfg.Layout.AlbumIndex = 5
	if err := cfg.Validate(); err == nil {
		t.Error("album_index equal to artist_index should be rejected")
	}

	cfg = Default()
	cfg.Layout.ArtistIndex = -1
	if err := cfg.Validate(); err == nil {
		t.Error("negative artist_index should be rejected")
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	t.Setenv("COLLATOR_LIBRARY_DIR", "")
	path := filepath.Join(t.TempDir(), "sub", "config.toml")
	if err := CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}

	cfg, _, exists, err := Load(path)
	if err != nil {
		t.Fatalf("sample config should load cleanly: %v", err)
	}
	if !exists {
		t.Fatal("sample config should exist")
	}
	if cfg.Layout.ArtistIndex != defaultArtistIndex {
		t.Errorf("sample artist_index: got %d", cfg.Layout.ArtistIndex)
	}
}
