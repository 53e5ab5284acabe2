// File: timer.go
// Title: Performance Timer
// Description: Provides operation timing that logs elapsed durations
//              through the structured logger, used to measure parse and
//              store operations.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-15
// Modified: 2025-08-15
//
// Change History:
// - 2025-08-15 v0.1.0: Initial implementation

package log

import (
	"time"
)

// Timer measures the duration of one operation
type Timer struct {
	logger    *Logger
	operation string
	startTime time.Time
	fields    Fields
	level     Level
	stopped   bool
}

// NewTimer creates and starts a timer for the given operation
func NewTimer(logger *Logger, operation string) *Timer {
	return &Timer{
		logger:    logger,
		operation: operation,
		startTime: time.Now(),
		fields:    make(Fields),
		level:     LevelDebug,
	}
}

// WithLevel sets the level of the completion message
func (t *Timer) WithLevel(level Level) *Timer {
	t.level = level
	return t
}

// WithField adds a field to the completion message
func (t *Timer) WithField(key string, value interface{}) *Timer {
	if t.fields == nil {
		t.fields = make(Fields)
	}
	t.fields[key] = value
	return t
}

// WithFields adds fields to the completion message
func (t *Timer) WithFields(fields Fields) *Timer {
	if t.fields == nil {
		t.fields = make(Fields)
	}
	for k, v := range fields {
		t.fields[k] = v
	}
	return t
}

// Elapsed returns the time since the timer started
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.startTime)
}

// Stop stops the timer and logs the elapsed time
func (t *Timer) Stop() time.Duration {
	if t.stopped {
		return 0
	}
	elapsed := t.Elapsed()
	t.stopped = true

	if t.logger == nil {
		return elapsed
	}

	fields := t.completionFields(elapsed)
	message := t.operation + " completed"

	switch t.level {
	case LevelTrace:
		t.logger.Trace(message, fields)
	case LevelInfo:
		t.logger.Info(message, fields)
	case LevelWarn:
		t.logger.Warn(message, fields)
	case LevelError:
		t.logger.Error(message, fields)
	default:
		t.logger.Debug(message, fields)
	}

	return elapsed
}

// StopWithError stops the timer and logs a failure with the elapsed time
func (t *Timer) StopWithError(err error) time.Duration {
	if t.stopped {
		return 0
	}
	elapsed := t.Elapsed()
	t.stopped = true

	if t.logger == nil {
		return elapsed
	}

	fields := t.completionFields(elapsed)
	fields["success"] = false
	t.logger.ErrorWithErr(t.operation+" failed", err, fields)

	return elapsed
}

// Checkpoint logs an intermediate timing point without stopping
func (t *Timer) Checkpoint(name string, fields ...Fields) {
	if t.stopped || t.logger == nil {
		return
	}

	elapsed := t.Elapsed()
	combined := t.fields.Merge(Fields{
		"operation":  t.operation,
		"checkpoint": name,
		"elapsed_ms": float64(elapsed.Nanoseconds()) / 1e6,
	})
	for _, f := range fields {
		combined = combined.Merge(f)
	}

	t.logger.Debug(t.operation+" checkpoint: "+name, combined)
}

// Cancel stops the timer without logging
func (t *Timer) Cancel() {
	t.stopped = true
}

// IsRunning returns true until the timer is stopped or cancelled
func (t *Timer) IsRunning() bool {
	return !t.stopped
}

// completionFields assembles the standard timing fields
func (t *Timer) completionFields(elapsed time.Duration) Fields {
	fields := t.fields.Clone()
	if fields == nil {
		fields = make(Fields)
	}
	fields["operation"] = t.operation
	fields["duration_ms"] = float64(elapsed.Nanoseconds()) / 1e6
	fields["duration"] = elapsed.String()
	return fields
}
