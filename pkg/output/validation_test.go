package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kazuma-desu/banner/pkg/testutil"
	"github.com/kazuma-desu/banner/pkg/validator"
)

func TestPrintValidationResult(t *testing.T) {
	t.Run("no issues", func(t *testing.T) {
		result := &validator.ValidationResult{Valid: true, Issues: []validator.ValidationIssue{}}
		out, err := testutil.CaptureStdoutFunc(func() {
			PrintValidationResult(result, false)
		})
		require.NoError(t, err)
		assert.Contains(t, out, "Validation passed - no issues found")
	})

	t.Run("errors and warnings", func(t *testing.T) {
		result := &validator.ValidationResult{
			Valid: false,
			Issues: []validator.ValidationIssue{
				{Level: validator.LevelError, Key: "width", Message: "width must not be negative (got -1)"},
				{Level: validator.LevelWarning, Key: "title", Message: "title is empty"},
			},
		}
		out, err := testutil.CaptureStdoutFunc(func() {
			PrintValidationResult(result, false)
		})
		require.NoError(t, err)
		assert.Contains(t, out, "✗ 1 error(s), ⚠ 1 warning(s)")
		assert.Contains(t, out, "✗ width: width must not be negative (got -1)")
		assert.Contains(t, out, "⚠ title: title is empty")
		assert.Contains(t, out, "✗ Validation failed")
	})

	t.Run("strict warnings", func(t *testing.T) {
		result := &validator.ValidationResult{
			Valid:  false,
			Issues: []validator.ValidationIssue{{Level: validator.LevelWarning, Key: "title", Message: "title is empty"}},
		}
		out, err := testutil.CaptureStdoutFunc(func() {
			PrintValidationResult(result, true)
		})
		require.NoError(t, err)
		assert.Contains(t, out, "strict mode: warnings treated as errors")
	})

	t.Run("warnings only passes", func(t *testing.T) {
		result := &validator.ValidationResult{
			Valid:  true,
			Issues: []validator.ValidationIssue{{Level: validator.LevelWarning, Key: "title", Message: "title is empty"}},
		}
		out, err := testutil.CaptureStdoutFunc(func() {
			PrintValidationResult(result, false)
		})
		require.NoError(t, err)
		assert.Contains(t, out, "✓ Validation passed")
	})
}
