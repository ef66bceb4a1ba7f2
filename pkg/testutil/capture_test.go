package testutil

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaptureStdout(t *testing.T) {
	out, err := CaptureStdout(func() error {
		fmt.Println("====== TITLE =======")
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "====== TITLE =======\n", out)
}

func TestCaptureStdout_ReturnsError(t *testing.T) {
	sentinel := errors.New("boom")
	out, err := CaptureStdout(func() error {
		fmt.Print("partial")
		return sentinel
	})
	assert.ErrorIs(t, err, sentinel)
	assert.Equal(t, "partial", out)
}

func TestCaptureStdout_RecoversPanic(t *testing.T) {
	stdout := os.Stdout
	_, err := CaptureStdoutFunc(func() {
		panic("bad")
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "panicked: bad")
	assert.Equal(t, stdout, os.Stdout)
}

func TestCaptureStdout_LargeOutput(t *testing.T) {
	line := strings.Repeat("=", 1024)
	out, err := CaptureStdoutFunc(func() {
		for i := 0; i < 256; i++ {
			fmt.Println(line)
		}
	})
	require.NoError(t, err)
	assert.Len(t, out, 256*1025)
}

func TestCaptureStderr(t *testing.T) {
	out, err := CaptureStderr(func() error {
		fmt.Fprint(os.Stderr, "warning")
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "warning", out)
}
