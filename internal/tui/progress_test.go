package tui

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaptureOutputLargerThanPipeBuffer(t *testing.T) {
	// Package installs and image pulls write well past the 64 KiB kernel
	// pipe buffer; the capture must keep draining while the step runs or
	// the writer blocks and the step never returns.
	payload := strings.Repeat("pulling layer sha256:0123456789abcdef\n", 64*1024)
	require.Greater(t, len(payload), 1<<20)

	out, err := captureOutput(func() error {
		n, werr := fmt.Fprint(os.Stdout, payload)
		require.NoError(t, werr)
		require.Equal(t, len(payload), n)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, payload, out)
}

func TestCaptureOutputRestoresStreamsAndError(t *testing.T) {
	oldOut, oldErr := os.Stdout, os.Stderr
	boom := errors.New("boom")

	out, err := captureOutput(func() error {
		fmt.Fprintln(os.Stderr, "tool stderr line")
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, out, "tool stderr line")
	assert.Same(t, oldOut, os.Stdout)
	assert.Same(t, oldErr, os.Stderr)
}

func TestOutputTail(t *testing.T) {
	t.Parallel()

	out := "one\n\ntwo\nthree\nfour\n\n"
	assert.Equal(t, []string{"three", "four"}, outputTail(out, 2))
	assert.Equal(t, []string{"one", "two", "three", "four"}, outputTail(out, 10))
	assert.Empty(t, outputTail("\n\n", 3))
	assert.Empty(t, outputTail("", 3))
}
