// Package testutil provides utilities for testing.
package testutil

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

// CaptureStdout runs f with os.Stdout redirected to a pipe and returns what
// was written along with f's error. A panic in f is recovered and returned
// as an error.
//
// Usage:
//
//	out, err := CaptureStdout(func() error {
//	    return runCover(nil, []string{"TITLE"})
//	})
func CaptureStdout(f func() error) (string, error) {
	return capture(&os.Stdout, f)
}

// CaptureStderr is CaptureStdout for os.Stderr.
func CaptureStderr(f func() error) (string, error) {
	return capture(&os.Stderr, f)
}

// CaptureStdoutFunc captures stdout from a function that doesn't return an error.
func CaptureStdoutFunc(f func()) (string, error) {
	return CaptureStdout(func() error {
		f()
		return nil
	})
}

func capture(target **os.File, f func() error) (string, error) {
	old := *target
	r, w, err := os.Pipe()
	if err != nil {
		return "", fmt.Errorf("capture: failed to create pipe: %w", err)
	}

	// Drain concurrently so large outputs don't block the writer.
	done := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		_ = r.Close()
		done <- buf.String()
	}()

	*target = w
	fErr := run(f)
	_ = w.Close()
	*target = old

	return <-done, fErr
}

func run(f func() error) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("capture: f() panicked: %v", rec)
		}
	}()
	return f()
}
