package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kazuma-desu/banner/pkg/validator"
)

// PrintValidationResult prints validation results with styling
func PrintValidationResult(result *validator.ValidationResult, strict bool) {
	if len(result.Issues) == 0 {
		msg := "✓ Validation passed - no issues found"
		if IsTerminal() {
			fmt.Println(successPanelStyle.Render(successStyle.Render(msg)))
		} else {
			fmt.Println(msg)
		}
		return
	}

	errorCount, warningCount := result.Counts()

	var parts []string
	if errorCount > 0 {
		parts = append(parts, StyleIfTerminal(errorStyle, fmt.Sprintf("✗ %d error(s)", errorCount)))
	}
	if warningCount > 0 {
		parts = append(parts, StyleIfTerminal(warningStyle, fmt.Sprintf("⚠ %d warning(s)", warningCount)))
	}
	summary := strings.Join(parts, ", ")
	if IsTerminal() {
		summary = infoPanelStyle.Render(summary)
	}
	fmt.Println(summary)
	fmt.Println()

	for _, issue := range result.Issues {
		prefix, style := "⚠", warningStyle
		if issue.Level == validator.LevelError {
			prefix, style = "✗", errorStyle
		}
		fmt.Println(renderIssue(prefix, style, issue))
	}
	fmt.Println()

	switch {
	case result.Valid:
		fmt.Println(StyleIfTerminal(successStyle, "✓ Validation passed"))
	case strict && warningCount > 0 && errorCount == 0:
		fmt.Println(StyleIfTerminal(errorStyle, "✗ Validation failed (strict mode: warnings treated as errors)"))
	default:
		fmt.Println(StyleIfTerminal(errorStyle, "✗ Validation failed"))
	}
}

func renderIssue(prefix string, style lipgloss.Style, issue validator.ValidationIssue) string {
	if !IsTerminal() {
		return fmt.Sprintf("%s %s: %s", prefix, issue.Key, issue.Message)
	}
	return style.Render(fmt.Sprintf("%s %s: %s", prefix, keyStyle.Render(issue.Key), issue.Message))
}
