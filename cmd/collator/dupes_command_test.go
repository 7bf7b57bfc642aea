package main

import (
	"path/filepath"
	"strings"
	"testing"

	"collator/internal/testsupport"
)

func TestDupesCommandFindsCopies(t *testing.T) {
	t.Setenv("COLLATOR_LIBRARY_DIR", "")
	root := t.TempDir()
	payload := testsupport.Payload(1024)
	testsupport.WriteUntaggedMP3(t, filepath.Join(root, "ARTISTX", "ALBUMY", "track.mp3"), payload)
	testsupport.WriteUntaggedMP3(t, filepath.Join(root, "ARTISTZ", "ALBUMW", "copy.mp3"), payload)

	cfgPath := writeTestConfig(t, root)
	output, err := runCommand(t, "--config", cfgPath, "dupes")
	if err != nil {
		t.Fatalf("dupes failed: %v\n%s", err, output)
	}

	if !strings.Contains(output, "1 duplicate group(s)") {
		t.Errorf("expected one duplicate group:\n%s", output)
	}
	if !strings.Contains(output, "track.mp3") || !strings.Contains(output, "copy.mp3") {
		t.Errorf("both copies should be listed:\n%s", output)
	}
}

func TestDupesCommandCleanLibrary(t *testing.T) {
	t.Setenv("COLLATOR_LIBRARY_DIR", "")
	root := t.TempDir()
	testsupport.WriteUntaggedMP3(t, filepath.Join(root, "ARTISTX", "ALBUMY", "one.mp3"), testsupport.Payload(10))
	testsupport.WriteUntaggedMP3(t, filepath.Join(root, "ARTISTX", "ALBUMY", "two.mp3"), testsupport.Payload(20))

	cfgPath := writeTestConfig(t, root)
	output, err := runCommand(t, "--config", cfgPath, "dupes")
	if err != nil {
		t.Fatalf("dupes failed: %v\n%s", err, output)
	}
	if !strings.Contains(output, "No duplicate content found.") {
		t.Errorf("clean library should report no duplicates:\n%s", output)
	}
}

func TestMismatchesCommand(t *testing.T) {
	t.Setenv("COLLATOR_LIBRARY_DIR", "")
	root := t.TempDir()
	testsupport.WriteMP3(t, filepath.Join(root, "wrong artist", "Album", "track.mp3"),
		testsupport.Payload(128), testsupport.ID3v1{Artist: "Right Artist", Album: "Album"})

	cfgPath := writeTestConfig(t, root)
	output, err := runCommand(t, "--config", cfgPath, "mismatches")
	if err != nil {
		t.Fatalf("mismatches failed: %v\n%s", err, output)
	}

	if !strings.Contains(output, "1 mismatch(es)") {
		t.Errorf("expected one mismatch:\n%s", output)
	}
	if !strings.Contains(output, "Right Artist") || !strings.Contains(output, "wrong artist") {
		t.Errorf("both identity sources should be shown:\n%s", output)
	}
}
