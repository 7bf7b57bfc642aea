package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfigInitWritesSample(t *testing.T) {
	target := filepath.Join(t.TempDir(), "collator", "config.toml")

	output, err := runCommand(t, "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init failed: %v\n%s", err, output)
	}

	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("sample config not written: %v", err)
	}
	if !strings.Contains(string(data), "artist_index") {
		t.Errorf("sample config missing layout section:\n%s", data)
	}
}

func TestConfigInitRefusesOverwrite(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(target, []byte("# existing"), 0o644); err != nil {
		t.Fatalf("seed config: %v", err)
	}

	if output, err := runCommand(t, "config", "init", "--path", target); err == nil {
		t.Fatalf("init should refuse to overwrite without --overwrite\n%s", output)
	}

	output, err := runCommand(t, "config", "init", "--path", target, "--overwrite")
	if err != nil {
		t.Fatalf("init --overwrite failed: %v\n%s", err, output)
	}
}

func TestConfigValidateReportsPath(t *testing.T) {
	t.Setenv("COLLATOR_LIBRARY_DIR", "")
	root := t.TempDir()
	cfgPath := writeTestConfig(t, root)

	output, err := runCommand(t, "config", "validate", "--path", cfgPath)
	if err != nil {
		t.Fatalf("config validate failed: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Configuration valid") {
		t.Errorf("missing validation confirmation:\n%s", output)
	}
	if !strings.Contains(output, root) {
		t.Errorf("library root should be echoed:\n%s", output)
	}
}
