// File: logger_test.go
// Title: Core Logger Tests
// Description: Tests for logger construction, the immutable With*
//              derivation, level filtering, and structured output.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-15
// Modified: 2025-08-15
//
// Change History:
// - 2025-08-15 v0.1.0: Initial implementation

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"

	fregeerror "github.com/msto63/frege/core/error"
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
		t.Error("NewWithConfig() should set the custom output")
	}
}

func TestNewWithConfigNilOutput(t *testing.T) {
	logger := NewWithConfig(Config{Level: LevelInfo})
	if logger.output == nil {
		t.Error("NewWithConfig() should fall back to a default output")
	}
}

func TestLoggerWithLevel(t *testing.T) {
	logger := New()
	derived := logger.WithLevel(LevelDebug)

	if derived == logger {
		t.Error("WithLevel() should return a new logger instance")
	}
	if derived.GetLevel() != LevelDebug {
		t.Errorf("WithLevel() level = %v, want %v", derived.GetLevel(), LevelDebug)
	}
	if logger.GetLevel() != DefaultLevel() {
		t.Error("WithLevel() must not change the original logger")
	}
}

func TestLoggerWithName(t *testing.T) {
	logger := New().WithName("parser")
	if logger.name != "parser" {
		t.Errorf("WithName() name = %v, want parser", logger.name)
	}
}

func TestLoggerWithField(t *testing.T) {
	logger := New()
	derived := logger.WithField("component", "lexer")

	if derived.contextFields["component"] != "lexer" {
		t.Error("WithField() should store the context field")
	}
	if _, ok := logger.contextFields["component"]; ok {
		t.Error("WithField() must not change the original logger")
	}
}

func TestLoggerWithFields(t *testing.T) {
	logger := New().WithFields(Fields{"a": 1, "b": 2})
	if logger.contextFields["a"] != 1 || logger.contextFields["b"] != 2 {
		t.Errorf("WithFields() context = %v, want a=1 b=2", logger.contextFields)
	}
}

func TestLoggerWithRequestID(t *testing.T) {
	logger := New().WithRequestID("req-7")
	if logger.requestID != "req-7" {
		t.Errorf("WithRequestID() = %v, want req-7", logger.requestID)
	}
}

func TestLoggerLogLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Level: LevelTrace, Format: FormatJSON, Output: &buf})

	logger.Trace("trace message")
	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 log lines, got %d:\n%s", len(lines), buf.String())
	}

	wantLevels := []string{"trace", "debug", "info", "warn", "error"}
	for i, line := range lines {
		var decoded map[string]interface{}
		if err := json.Unmarshal([]byte(line), &decoded); err != nil {
			t.Fatalf("line %d is not valid JSON: %v", i, err)
		}
		if decoded["level"] != wantLevels[i] {
			t.Errorf("line %d level = %v, want %v", i, decoded["level"], wantLevels[i])
		}
	}
}

func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Level: LevelWarn, Format: FormatJSON, Output: &buf})

	logger.Debug("dropped")
	logger.Info("dropped")
	logger.Warn("kept")
	logger.Error("kept")

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Errorf("messages below the minimum level leaked into the output:\n%s", out)
	}
	if strings.Count(out, "kept") != 2 {
		t.Errorf("expected 2 kept messages:\n%s", out)
	}
}

func TestLoggerContextFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Level: LevelDebug, Format: FormatJSON, Output: &buf}).
		WithField("component", "parser").
		WithRequestID("req-1")

	logger.Info("with context", Fields{"extra": true})

	var decoded map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded["component"] != "parser" {
		t.Errorf("component = %v, want parser", decoded["component"])
	}
	if decoded["request_id"] != "req-1" {
		t.Errorf("request_id = %v, want req-1", decoded["request_id"])
	}
	if decoded["extra"] != true {
		t.Errorf("extra = %v, want true", decoded["extra"])
	}
}

func TestLoggerCallFieldsWinOverContext(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Level: LevelDebug, Format: FormatJSON, Output: &buf}).
		WithField("key", "context")

	logger.Info("clash", Fields{"key": "call"})

	var decoded map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded["key"] != "call" {
		t.Errorf("key = %v, want the per-call value", decoded["key"])
	}
}

func TestLoggerErrorWithErr(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Level: LevelDebug, Format: FormatJSON, Output: &buf})

	logger.ErrorWithErr("operation failed", errors.New("underlying cause"))

	var decoded map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded["level"] != "error" {
		t.Errorf("level = %v, want error", decoded["level"])
	}
	if decoded["error"] != "underlying cause" {
		t.Errorf("error = %v, want underlying cause", decoded["error"])
	}
}

func TestLoggerLogError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantLevel string
	}{
		{
			name:      "nil error logs nothing",
			err:       nil,
			wantLevel: "",
		},
		{
			name:      "standard error logs at error level",
			err:       errors.New("plain"),
			wantLevel: "error",
		},
		{
			name:      "low severity logs at info level",
			err:       fregeerror.New("syntax").WithCode(fregeerror.CodeParseSyntax),
			wantLevel: "info",
		},
		{
			name:      "medium severity logs at warn level",
			err:       fregeerror.New("config").WithCode(fregeerror.CodeConfigError),
			wantLevel: "warn",
		},
		{
			name:      "high severity logs at error level",
			err:       fregeerror.New("internal").WithCode(fregeerror.CodeInternal),
			wantLevel: "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewWithConfig(Config{Level: LevelTrace, Format: FormatJSON, Output: &buf})

			logger.LogError(tt.err)

			if tt.wantLevel == "" {
				if buf.Len() != 0 {
					t.Errorf("LogError(nil) should log nothing, got %q", buf.String())
				}
				return
			}

			var decoded map[string]interface{}
			if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
				t.Fatalf("output is not valid JSON: %v", err)
			}
			if decoded["level"] != tt.wantLevel {
				t.Errorf("level = %v, want %v", decoded["level"], tt.wantLevel)
			}
		})
	}
}

func TestLoggerLogErrorFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Level: LevelTrace, Format: FormatJSON, Output: &buf})

	logger.LogError(fregeerror.New("store broken").
		WithCode(fregeerror.CodeStoreError).
		WithOperation("append").
		WithDetail("path", "history.db"))

	var decoded map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded["error_code"] != "STORE_ERROR" {
		t.Errorf("error_code = %v", decoded["error_code"])
	}
	if decoded["error_severity"] != "medium" {
		t.Errorf("error_severity = %v", decoded["error_severity"])
	}
	if decoded["error_operation"] != "append" {
		t.Errorf("error_operation = %v", decoded["error_operation"])
	}
	if decoded["error_path"] != "history.db" {
		t.Errorf("error_path = %v", decoded["error_path"])
	}
}

func TestLoggerIsLevelEnabled(t *testing.T) {
	logger := New().WithLevel(LevelWarn)

	if logger.IsLevelEnabled(LevelDebug) {
		t.Error("debug should be disabled at warn level")
	}
	if !logger.IsLevelEnabled(LevelError) {
		t.Error("error should be enabled at warn level")
	}
}

func TestLoggerSetLevel(t *testing.T) {
	logger := New()
	logger.SetLevel(LevelTrace)
	if logger.GetLevel() != LevelTrace {
		t.Errorf("SetLevel() = %v, want %v", logger.GetLevel(), LevelTrace)
	}
}

func TestGlobalLoggerFunctions(t *testing.T) {
	original := GetDefault()
	defer SetDefault(original)

	var buf bytes.Buffer
	SetDefault(NewWithConfig(Config{Level: LevelDebug, Format: FormatJSON, Output: &buf}))

	Debug("global debug")
	Info("global info")
	Warn("global warn")
	Error("global error")

	out := buf.String()
	for _, want := range []string{"global debug", "global info", "global warn", "global error"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in output:\n%s", want, out)
		}
	}
}

func TestSetDefaultIgnoresNil(t *testing.T) {
	original := GetDefault()
	SetDefault(nil)
	if GetDefault() != original {
		t.Error("SetDefault(nil) should keep the current default")
	}
}

func BenchmarkLoggerInfo(b *testing.B) {
	logger := NewWithConfig(Config{Level: LevelInfo, Format: FormatJSON, Output: io.Discard})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Info("benchmark message")
	}
}

func BenchmarkLoggerWithFields(b *testing.B) {
	logger := NewWithConfig(Config{Level: LevelInfo, Format: FormatJSON, Output: io.Discard})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Info("benchmark message", Fields{"index": i, "component": "bench"})
	}
}

func BenchmarkLoggerFiltered(b *testing.B) {
	logger := NewWithConfig(Config{Level: LevelError, Format: FormatJSON, Output: io.Discard})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Debug("filtered out")
	}
}
