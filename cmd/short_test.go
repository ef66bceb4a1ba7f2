package cmd

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/kazuma-desu/banner/pkg/config"
	"github.com/kazuma-desu/banner/pkg/exit"
	"github.com/kazuma-desu/banner/pkg/testutil"
	"github.com/kazuma-desu/banner/pkg/text"
)

func TestRunShort(t *testing.T) {
	tests := []struct {
		name  string
		input string
		flags map[string]string
		want  string
	}{
		{name: "truncated", input: "hello world", flags: map[string]string{"length": "5"}, want: "hello"},
		{name: "shorter than length", input: "hi", flags: map[string]string{"length": "5"}, want: "hi"},
		{name: "equal to length", input: "hello", flags: map[string]string{"length": "5"}, want: "hello"},
		{name: "zero length", input: "hello", flags: map[string]string{"length": "0"}, want: ""},
		{name: "counts characters not bytes", input: "héllo wörld", flags: map[string]string{"length": "4"}, want: "héll"},
		{name: "default length", input: "0123456789012345678901234567890123456789", want: "01234567890123456789012345678901"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useTempConfig(t)
			setFlags(t, shortCmd, tt.flags)

			out, err := testutil.CaptureStdout(func() error {
				return runShort(shortCmd, []string{tt.input})
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want+"\n", out)
		})
	}
}

func TestRunShort_UsesConfigMaxLength(t *testing.T) {
	useTempConfig(t)
	writeConfig(t, &config.Config{MaxLength: 3})

	out, err := testutil.CaptureStdout(func() error {
		return runShort(shortCmd, []string{"abcdef"})
	})
	require.NoError(t, err)
	assert.Equal(t, "abc\n", out)
}

func TestRunShort_StructuredOutput(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		useTempConfig(t)
		outputFormat = "json"
		setFlags(t, shortCmd, map[string]string{"length": "5"})

		out, err := testutil.CaptureStdout(func() error {
			return runShort(shortCmd, []string{"hello world"})
		})
		require.NoError(t, err)

		var got shortResult
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.Equal(t, shortResult{Text: "hello world", Length: 5, Truncated: true, Result: "hello"}, got)
	})

	t.Run("yaml from config default", func(t *testing.T) {
		useTempConfig(t)
		writeConfig(t, &config.Config{DefaultFormat: "yaml"})
		setFlags(t, shortCmd, map[string]string{"length": "5"})

		out, err := testutil.CaptureStdout(func() error {
			return runShort(shortCmd, []string{"hi"})
		})
		require.NoError(t, err)

		var got map[string]any
		require.NoError(t, yaml.Unmarshal([]byte(out), &got))
		assert.Equal(t, "hi", got["result"])
		assert.Equal(t, false, got["truncated"])
	})
}

func TestRunShort_NegativeLength(t *testing.T) {
	useTempConfig(t)
	setFlags(t, shortCmd, map[string]string{"length": "-1"})

	_, err := testutil.CaptureStdout(func() error {
		return runShort(shortCmd, []string{"hello"})
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, text.ErrNegativeLength)
	assert.Equal(t, exit.ValidationError, exitCode(err))
}
