// Package testutil captures the standard streams of code under test.
package testutil

import (
	"bytes"
	"io"
	"os"
)

// StdoutOutputForFunc runs f and returns what it wrote to os.Stdout.
func StdoutOutputForFunc(f func()) string {
	return captureOutput(&os.Stdout, f)
}

// StderrOutputForFunc runs f and returns what it wrote to os.Stderr.
func StderrOutputForFunc(f func()) string {
	return captureOutput(&os.Stderr, f)
}

func captureOutput(stream **os.File, f func()) string {
	old := *stream

	r, w, err := os.Pipe()
	if err != nil {
		return ""
	}

	*stream = w

	done := make(chan string)

	go func() {
		var buf bytes.Buffer

		_, _ = io.Copy(&buf, r)
		done <- buf.String()
	}()

	defer func() {
		*stream = old
	}()

	f()

	_ = w.Close()

	return <-done
}
