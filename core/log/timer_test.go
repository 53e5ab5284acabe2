// File: timer_test.go
// Title: Performance Timer Tests
// Description: Tests for timer lifecycle, completion logging, and
//              checkpoint output.
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
	"strings"
	"testing"
	"time"
)

func newTimerTestLogger() (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Level: LevelTrace, Format: FormatJSON, Output: &buf})
	return logger, &buf
}

func TestNewTimer(t *testing.T) {
	logger, _ := newTimerTestLogger()
	timer := NewTimer(logger, "parse")

	if timer == nil {
		t.Fatal("NewTimer() returned nil")
	}
	if !timer.IsRunning() {
		t.Error("a new timer should be running")
	}
	if timer.operation != "parse" {
		t.Errorf("operation = %q, want parse", timer.operation)
	}
	if timer.level != LevelDebug {
		t.Errorf("default level = %v, want %v", timer.level, LevelDebug)
	}
}

func TestTimerElapsed(t *testing.T) {
	timer := NewTimer(nil, "op")
	time.Sleep(5 * time.Millisecond)

	if timer.Elapsed() < 5*time.Millisecond {
		t.Errorf("Elapsed() = %v, want at least 5ms", timer.Elapsed())
	}
}

func TestTimerStop(t *testing.T) {
	logger, buf := newTimerTestLogger()
	timer := logger.StartTimer("parse")

	elapsed := timer.Stop()
	if elapsed <= 0 {
		t.Errorf("Stop() = %v, want a positive duration", elapsed)
	}
	if timer.IsRunning() {
		t.Error("a stopped timer should not be running")
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded["message"] != "parse completed" {
		t.Errorf("message = %v, want parse completed", decoded["message"])
	}
	if decoded["operation"] != "parse" {
		t.Errorf("operation = %v, want parse", decoded["operation"])
	}
	if _, ok := decoded["duration_ms"]; !ok {
		t.Error("duration_ms field missing")
	}

	// A second Stop must not log again
	buf.Reset()
	if got := timer.Stop(); got != 0 {
		t.Errorf("second Stop() = %v, want 0", got)
	}
	if buf.Len() != 0 {
		t.Errorf("second Stop() logged: %q", buf.String())
	}
}

func TestTimerStopWithError(t *testing.T) {
	logger, buf := newTimerTestLogger()
	timer := logger.StartTimer("append")

	timer.StopWithError(errors.New("disk full"))

	var decoded map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded["message"] != "append failed" {
		t.Errorf("message = %v, want append failed", decoded["message"])
	}
	if decoded["level"] != "error" {
		t.Errorf("level = %v, want error", decoded["level"])
	}
	if decoded["success"] != false {
		t.Errorf("success = %v, want false", decoded["success"])
	}
	if decoded["error"] != "disk full" {
		t.Errorf("error = %v, want disk full", decoded["error"])
	}
}

func TestTimerWithLevel(t *testing.T) {
	logger, buf := newTimerTestLogger()

	logger.StartTimer("parse").WithLevel(LevelInfo).Stop()

	var decoded map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded["level"] != "info" {
		t.Errorf("level = %v, want info", decoded["level"])
	}
}

func TestTimerWithFields(t *testing.T) {
	logger, buf := newTimerTestLogger()

	logger.StartTimer("parse").
		WithField("items", 3).
		WithFields(Fields{"source": "stdin"}).
		Stop()

	var decoded map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded["items"] != float64(3) {
		t.Errorf("items = %v, want 3", decoded["items"])
	}
	if decoded["source"] != "stdin" {
		t.Errorf("source = %v, want stdin", decoded["source"])
	}
}

func TestTimerCheckpoint(t *testing.T) {
	logger, buf := newTimerTestLogger()
	timer := logger.StartTimer("parse")

	timer.Checkpoint("lexing done", Fields{"tokens": 42})

	if !strings.Contains(buf.String(), "parse checkpoint: lexing done") {
		t.Errorf("checkpoint message missing:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), "\"tokens\":42") {
		t.Errorf("checkpoint fields missing:\n%s", buf.String())
	}
	if !timer.IsRunning() {
		t.Error("Checkpoint() must not stop the timer")
	}

	// Checkpoints after Stop are dropped
	timer.Stop()
	buf.Reset()
	timer.Checkpoint("too late")
	if buf.Len() != 0 {
		t.Errorf("checkpoint after Stop logged: %q", buf.String())
	}
}

func TestTimerCancel(t *testing.T) {
	logger, buf := newTimerTestLogger()
	timer := logger.StartTimer("parse")

	timer.Cancel()

	if timer.IsRunning() {
		t.Error("a cancelled timer should not be running")
	}
	if buf.Len() != 0 {
		t.Errorf("Cancel() logged: %q", buf.String())
	}
	if got := timer.Stop(); got != 0 {
		t.Errorf("Stop() after Cancel() = %v, want 0", got)
	}
}

func TestTimerNilLogger(t *testing.T) {
	timer := NewTimer(nil, "op")
	if elapsed := timer.Stop(); elapsed <= 0 {
		t.Errorf("Stop() with nil logger = %v, want positive elapsed time", elapsed)
	}
}
