package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestNewJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "info", Format: "json", Writer: &buf})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	logger.Info("scan complete", Int("audio_count", 3))

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}
	if record["msg"] != "scan complete" {
		t.Errorf("msg mismatch: got %v", record["msg"])
	}
	if record["level"] != "info" {
		t.Errorf("level should be lowercased, got %v", record["level"])
	}
	if record["audio_count"] != float64(3) {
		t.Errorf("audio_count mismatch: got %v", record["audio_count"])
	}
}

func TestNewConsoleComponentPrefix(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "debug", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	NewComponentLogger(logger, "scanner").Debug("walking", String("path", "/music"))

	line := buf.String()
	if !strings.Contains(line, "DEBUG scanner: walking") {
		t.Errorf("expected component prefix in output, got %q", line)
	}
	if !strings.Contains(line, "path=/music") {
		t.Errorf("expected path attribute in output, got %q", line)
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if _, err := New(Options{Format: "xml", Writer: &buf}); err == nil {
		t.Fatal("New should reject unknown formats")
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "warn", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	logger.Info("hidden")
	logger.Warn("visible")

	if strings.Contains(buf.String(), "hidden") {
		t.Error("info record should be filtered at warn level")
	}
	if !strings.Contains(buf.String(), "visible") {
		t.Error("warn record should pass at warn level")
	}
}

func TestNewNopDiscards(t *testing.T) {
	logger := NewNop()
	if logger.Enabled(context.Background(), slog.LevelError) {
		t.Error("nop logger should report disabled at every level")
	}
}
