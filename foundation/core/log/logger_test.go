// File: logger_test.go
// Title: Logger Tests
// Description: Tests for logger configuration, context propagation,
//              formatters, error logging and timers.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	mdwerror "github.com/msto63/textbox/foundation/core/error"
)

func TestNew(t *testing.T) {
	logger := New()

	if logger == nil {
		t.Fatal("New() should not return nil")
	}
	if logger.GetLevel() != DefaultLevel() {
		t.Errorf("New() level = %v, want %v", logger.GetLevel(), DefaultLevel())
	}
	if logger.contextFields == nil {
		t.Error("New() should initialize context fields")
	}
}

func TestNewWithConfig(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{
		Level:  LevelError,
		Format: FormatText,
		Output: &buf,
		Name:   "test-logger",
	})

	if logger.GetLevel() != LevelError {
		t.Errorf("NewWithConfig() level = %v, want %v", logger.GetLevel(), LevelError)
	}
	if logger.name != "test-logger" {
		t.Errorf("NewWithConfig() name = %v, want test-logger", logger.name)
	}
	if logger.output != &buf {
		t.Error("NewWithConfig() should set custom output")
	}
}

func TestWithMethodsReturnCopies(t *testing.T) {
	logger := New()
	debug := logger.WithLevel(LevelDebug).WithField("recipe", "slug")

	if debug == logger {
		t.Error("WithLevel() should return a new logger instance")
	}
	if logger.GetLevel() != DefaultLevel() {
		t.Error("WithLevel() should not modify original logger")
	}
	if _, ok := logger.contextFields["recipe"]; ok {
		t.Error("WithField() should not modify original logger")
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Level: LevelWarn, Format: FormatText, Output: &buf})

	logger.Debug("hidden")
	logger.Info("hidden too")
	logger.Warn("visible")
	logger.Audit("always")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("output contains filtered messages: %q", out)
	}
	if !strings.Contains(out, "visible") || !strings.Contains(out, "always") {
		t.Errorf("output misses messages: %q", out)
	}
}

func TestJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Level: LevelDebug, Format: FormatJSON, Output: &buf, Name: "textbox"}).
		WithCorrelationID("run-1").
		WithField("recipe", "slug")

	logger.Debug("step applied", Fields{"op": "replace", "err": errors.New("boom")})

	var data map[string]interface{}
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &data); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}

	want := map[string]interface{}{
		"level":          "debug",
		"message":        "step applied",
		"logger":         "textbox",
		"correlation_id": "run-1",
		"recipe":         "slug",
		"op":             "replace",
		"err":            "boom",
	}
	for k, v := range want {
		if data[k] != v {
			t.Errorf("%s = %v, want %v", k, data[k], v)
		}
	}
}

func TestLogfmtOutputIsSorted(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Level: LevelInfo, Format: FormatLogfmt, Output: &buf})

	logger.Info("done", Fields{"b": 2, "a": "x"})

	out := buf.String()
	if !strings.Contains(out, `message="done"`) {
		t.Errorf("missing message: %q", out)
	}
	if strings.Index(out, `a="x"`) > strings.Index(out, "b=2") {
		t.Errorf("fields not sorted: %q", out)
	}
}

func TestLogError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantLevel string
	}{
		{"low severity", mdwerror.New("bad json").WithCode(mdwerror.CodeBadStructuredData), "info"},
		{"medium severity", mdwerror.New("odd"), "warn"},
		{"high severity", mdwerror.New("cfg").WithCode(mdwerror.CodeInvalidConfig), "error"},
		{"plain error", errors.New("plain"), "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewWithConfig(Config{Level: LevelTrace, Format: FormatJSON, Output: &buf})
			logger.LogError(tt.err)

			var data map[string]interface{}
			if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &data); err != nil {
				t.Fatalf("invalid JSON: %v", err)
			}
			if data["level"] != tt.wantLevel {
				t.Errorf("level = %v, want %v", data["level"], tt.wantLevel)
			}
		})
	}

	var buf bytes.Buffer
	NewWithConfig(Config{Output: &buf}).LogError(nil)
	if buf.Len() != 0 {
		t.Error("LogError(nil) should not write")
	}
}

func TestTimer(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Level: LevelDebug, Format: FormatText, Output: &buf})

	timer := logger.StartTimer("recipe").WithField("steps", 3)
	if timer.Stop() < 0 {
		t.Error("Stop() returned negative duration")
	}
	if timer.Stop() != 0 {
		t.Error("second Stop() should return 0")
	}

	out := buf.String()
	if !strings.Contains(out, "recipe completed") || !strings.Contains(out, "steps=3") {
		t.Errorf("unexpected timer output: %q", out)
	}

	buf.Reset()
	logger.StartTimer("parse").StopWithError(errors.New("eof"))
	if !strings.Contains(buf.String(), "parse failed") || !strings.Contains(buf.String(), "success=false") {
		t.Errorf("unexpected timer output: %q", buf.String())
	}
}

func TestParseLevelAndFormat(t *testing.T) {
	if lvl, err := ParseLevel(" WARNING "); err != nil || lvl != LevelWarn {
		t.Errorf("ParseLevel() = %v, %v", lvl, err)
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Error("ParseLevel() should reject unknown levels")
	}
	if f, err := ParseFormat("logfmt"); err != nil || f != FormatLogfmt {
		t.Errorf("ParseFormat() = %v, %v", f, err)
	}
	var perr *ParseError
	if _, err := ParseFormat("xml"); !errors.As(err, &perr) || perr.Type != "format" {
		t.Errorf("ParseFormat() error = %v", err)
	}
}

func TestDefaultLogger(t *testing.T) {
	original := GetDefault()
	defer SetDefault(original)

	var buf bytes.Buffer
	SetDefault(NewWithConfig(Config{Level: LevelDebug, Format: FormatText, Output: &buf}))
	Debug("via default")

	if !strings.Contains(buf.String(), "via default") {
		t.Errorf("default logger not used: %q", buf.String())
	}
}
