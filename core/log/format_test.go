// File: format_test.go
// Title: Log Format Tests
// Description: Tests for the JSON, text, and console formatters and the
//              format parsing helpers.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-15
// Modified: 2025-08-15
//
// Change History:
// - 2025-08-15 v0.1.0: Initial implementation

package log

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

// testEntry builds a fully populated entry with a fixed timestamp so
// formatter output is deterministic
func testEntry() *Entry {
	return &Entry{
		Timestamp: time.Date(2025, 8, 15, 14, 30, 5, 0, time.UTC),
		Level:     LevelInfo,
		Message:   "parse done",
		Logger:    "parser",
		RequestID: "r1",
		Fields:    Fields{"b": 2, "a": 1},
		Error:     errors.New("boom"),
		Duration:  1500 * time.Microsecond,
	}
}

func TestFormatString(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{FormatJSON, "json"},
		{FormatText, "text"},
		{FormatConsole, "console"},
		{Format(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.format.String(); got != tt.want {
				t.Errorf("Format.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{"JSON", FormatJSON, false},
		{"text", FormatText, false},
		{"console", FormatConsole, false},
		{" console ", FormatConsole, false},
		{"xml", FormatJSON, true},
		{"", FormatJSON, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestJSONFormatterFormat(t *testing.T) {
	formatter := NewJSONFormatter()
	data, err := formatter.Format(testEntry())
	if err != nil {
		t.Fatalf("Format() failed: %v", err)
	}
	if !strings.HasSuffix(string(data), "\n") {
		t.Error("JSON output should end with a newline")
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if decoded["timestamp"] != "2025-08-15T14:30:05Z" {
		t.Errorf("timestamp = %v", decoded["timestamp"])
	}
	if decoded["level"] != "info" {
		t.Errorf("level = %v, want info", decoded["level"])
	}
	if decoded["message"] != "parse done" {
		t.Errorf("message = %v", decoded["message"])
	}
	if decoded["logger"] != "parser" {
		t.Errorf("logger = %v", decoded["logger"])
	}
	if decoded["request_id"] != "r1" {
		t.Errorf("request_id = %v", decoded["request_id"])
	}
	if decoded["a"] != float64(1) || decoded["b"] != float64(2) {
		t.Errorf("custom fields missing: %v", decoded)
	}
	if decoded["error"] != "boom" {
		t.Errorf("error = %v", decoded["error"])
	}
	if decoded["duration_ms"] != 1.5 {
		t.Errorf("duration_ms = %v, want 1.5", decoded["duration_ms"])
	}
}

func TestJSONFormatterOmitsEmpty(t *testing.T) {
	formatter := NewJSONFormatter()
	data, err := formatter.Format(NewEntry(LevelDebug, "minimal"))
	if err != nil {
		t.Fatalf("Format() failed: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	for _, key := range []string{"logger", "request_id", "error", "duration_ms"} {
		if _, ok := decoded[key]; ok {
			t.Errorf("key %q should be omitted for an empty value", key)
		}
	}
}

func TestJSONFormatterPrettyPrint(t *testing.T) {
	formatter := &JSONFormatter{PrettyPrint: true, TimestampFormat: time.RFC3339}
	data, err := formatter.Format(NewEntry(LevelInfo, "pretty"))
	if err != nil {
		t.Fatalf("Format() failed: %v", err)
	}
	if !strings.Contains(string(data), "\n  ") {
		t.Error("pretty printed output should be indented")
	}
}

func TestTextFormatterFormat(t *testing.T) {
	formatter := NewTextFormatter()
	data, err := formatter.Format(testEntry())
	if err != nil {
		t.Fatalf("Format() failed: %v", err)
	}

	want := "14:30:05 [INF] {parser} (req=r1) parse done [a=1 b=2] error=\"boom\" duration=1.5ms\n"
	if string(data) != want {
		t.Errorf("Format() = %q, want %q", string(data), want)
	}
}

func TestTextFormatterOptions(t *testing.T) {
	entry := testEntry()

	formatter := &TextFormatter{DisableTimestamp: true}
	data, err := formatter.Format(entry)
	if err != nil {
		t.Fatalf("Format() failed: %v", err)
	}
	if !strings.HasPrefix(string(data), "[INF]") {
		t.Errorf("without timestamp the line should start with the level tag, got %q", string(data))
	}

	formatter = &TextFormatter{FullTimestamp: true}
	data, err = formatter.Format(entry)
	if err != nil {
		t.Fatalf("Format() failed: %v", err)
	}
	if !strings.HasPrefix(string(data), "2025-08-15T14:30:05Z") {
		t.Errorf("full timestamp should be RFC3339, got %q", string(data))
	}
}

func TestConsoleFormatterFormat(t *testing.T) {
	formatter := NewConsoleFormatter()
	data, err := formatter.Format(testEntry())
	if err != nil {
		t.Fatalf("Format() failed: %v", err)
	}

	s := string(data)
	if !strings.HasPrefix(s, LevelInfo.Color()) {
		t.Errorf("console output should start with the level color, got %q", s)
	}
	if !strings.HasSuffix(s, "\033[0m\n") {
		t.Errorf("console output should end with a color reset, got %q", s)
	}
}

func TestConsoleFormatterDisableColors(t *testing.T) {
	formatter := &ConsoleFormatter{DisableColors: true, TextFormatter: NewTextFormatter()}
	data, err := formatter.Format(testEntry())
	if err != nil {
		t.Fatalf("Format() failed: %v", err)
	}
	if strings.Contains(string(data), "\033[") {
		t.Errorf("colors should be disabled, got %q", string(data))
	}
}

func TestGetFormatter(t *testing.T) {
	if _, ok := GetFormatter(FormatJSON).(*JSONFormatter); !ok {
		t.Error("GetFormatter(FormatJSON) should return a JSONFormatter")
	}
	if _, ok := GetFormatter(FormatText).(*TextFormatter); !ok {
		t.Error("GetFormatter(FormatText) should return a TextFormatter")
	}
	if _, ok := GetFormatter(FormatConsole).(*ConsoleFormatter); !ok {
		t.Error("GetFormatter(FormatConsole) should return a ConsoleFormatter")
	}
	if _, ok := GetFormatter(Format(99)).(*JSONFormatter); !ok {
		t.Error("GetFormatter should fall back to JSON")
	}
}
