package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"yyccgen/internal/config"
	"yyccgen/internal/logging"
)

func TestConsoleOutputIsPlainForBuffers(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Format: "console", Output: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger = logging.NewComponentLogger(logger, "enctable")
	logger = logging.WithRunID(logger, "run-123")
	logger.Warn("ambiguous encoding table entry", logging.String("key", "chinese"), logging.String("note", "two words"))
	logger.Debug("hidden")

	out := buf.String()
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("expected no ANSI codes, got %q", out)
	}
	if !strings.Contains(out, " WARN enctable: ambiguous encoding table entry key=chinese note=\"two words\"\n") {
		t.Fatalf("unexpected console line %q", out)
	}
	if strings.Contains(out, "run-123") {
		t.Fatalf("run id leaked into console output: %q", out)
	}
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug record emitted at info level: %q", out)
	}
}

func TestConsoleColorCanBeForced(t *testing.T) {
	var buf bytes.Buffer
	color := true
	logger, err := logging.New(logging.Options{Output: &buf, Color: &color})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Error("boom")
	if !strings.Contains(buf.String(), "\x1b[31mERROR\x1b[0m") {
		t.Fatalf("expected coloured level label, got %q", buf.String())
	}
}

func TestJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logging.WithRunID(logger, "run-123").Info("generated", logging.Int(logging.FieldRows, 3))

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("decode %q: %v", buf.String(), err)
	}
	if _, ok := record["ts"]; !ok {
		t.Fatalf("expected ts key, got %v", record)
	}
	if record["level"] != "info" {
		t.Fatalf("expected lowercase level, got %v", record["level"])
	}
	if record[logging.FieldRunID] != "run-123" {
		t.Fatalf("expected run id, got %v", record[logging.FieldRunID])
	}
	if record[logging.FieldRows] != float64(3) {
		t.Fatalf("expected rows=3, got %v", record[logging.FieldRows])
	}
}

func TestFileReceivesJSONAlongsideConsole(t *testing.T) {
	var console, file bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "console", Output: &console, File: &file})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logging.NewComponentLogger(logger, "buildscript").Info("build script generated")

	if !strings.Contains(console.String(), "buildscript: build script generated") {
		t.Fatalf("unexpected console output %q", console.String())
	}
	var record map[string]any
	if err := json.Unmarshal(file.Bytes(), &record); err != nil {
		t.Fatalf("decode file output %q: %v", file.String(), err)
	}
	if record[logging.FieldComponent] != "buildscript" {
		t.Fatalf("expected component in file output, got %v", record)
	}
}

func TestNewRejectsUnknownValues(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unknown format")
	}
	if _, err := logging.New(logging.Options{Level: "loud"}); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestNewFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Logging.Format = "json"
	cfg.Logging.Level = "warn"

	var buf bytes.Buffer
	logger, err := logging.NewFromConfig(&cfg, &buf, nil)
	if err != nil {
		t.Fatalf("NewFromConfig: %v", err)
	}
	logger.Info("quiet")
	logger.Warn("loud")
	out := buf.String()
	if strings.Contains(out, "quiet") || !strings.Contains(out, `"msg":"loud"`) {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestNopLogger(t *testing.T) {
	logger := logging.NewComponentLogger(nil, "enctable")
	if logger.Enabled(context.Background(), slog.LevelError) {
		t.Fatal("expected no-op logger to be disabled")
	}
}
