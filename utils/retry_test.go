package utils

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
)

func TestRetryUntilValid(t *testing.T) {
	r := &RetryConfig{}
	calls := 0
	err := r.Do("answer", func() error {
		calls++
		if calls < 4 {
			return fmt.Errorf("%w: try %d", ErrInvalidInput, calls)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	if calls != 4 {
		t.Errorf("calls: got %d, want 4", calls)
	}
}

func TestRetryStopsOnOtherErrors(t *testing.T) {
	r := &RetryConfig{}
	calls := 0
	err := r.Do("answer", func() error {
		calls++
		return io.EOF
	})
	if !errors.Is(err, io.EOF) {
		t.Errorf("got %v, want io.EOF", err)
	}
	if calls != 1 {
		t.Errorf("calls: got %d, want 1", calls)
	}
}

func TestRetryMaxAttempts(t *testing.T) {
	var buf bytes.Buffer
	r := &RetryConfig{MaxAttempts: 3, Logger: NewLoggerTo(&buf, LevelDebug)}
	calls := 0
	err := r.Do("answer", func() error {
		calls++
		return ErrInvalidInput
	})
	if !errors.Is(err, ErrTooManyAttempts) {
		t.Errorf("got %v, want ErrTooManyAttempts", err)
	}
	if calls != 3 {
		t.Errorf("calls: got %d, want 3", calls)
	}
	if n := strings.Count(buf.String(), "DEBUG"); n != 2 {
		t.Errorf("debug lines: got %d, want 2", n)
	}
}

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerTo(&buf, ParseLevel("warn"))
	l.Debug("hidden debug")
	l.Info("hidden info")
	l.Warn("shown %d", 1)
	l.Error("shown %d", 2)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("messages below warn were logged:\n%s", out)
	}
	if !strings.Contains(out, "shown 1") || !strings.Contains(out, "shown 2") {
		t.Errorf("warn/error messages missing:\n%s", out)
	}
}
