// Package validator checks report documents before they are rendered.
package validator

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/kazuma-desu/banner/pkg/models"
	"github.com/kazuma-desu/banner/pkg/text"
)

// Issue levels.
const (
	LevelError   = "error"
	LevelWarning = "warning"
)

// ValidationIssue represents a single validation issue
type ValidationIssue struct {
	Key     string `json:"key" yaml:"key"`
	Message string `json:"message" yaml:"message"`
	Level   string `json:"level" yaml:"level"`
}

// ValidationResult contains the results of validation
type ValidationResult struct {
	Issues []ValidationIssue `json:"issues" yaml:"issues"`
	Valid  bool              `json:"valid" yaml:"valid"`
}

// HasErrors returns true if there are any error-level issues
func (v *ValidationResult) HasErrors() bool {
	return v.count(LevelError) > 0
}

// HasWarnings returns true if there are any warning-level issues
func (v *ValidationResult) HasWarnings() bool {
	return v.count(LevelWarning) > 0
}

// Counts returns the number of errors and warnings.
func (v *ValidationResult) Counts() (errors, warnings int) {
	return v.count(LevelError), v.count(LevelWarning)
}

func (v *ValidationResult) count(level string) int {
	n := 0
	for _, issue := range v.Issues {
		if issue.Level == level {
			n++
		}
	}
	return n
}

// Validator validates report documents
type Validator struct {
	strict bool // If true, treat warnings as errors
}

// NewValidator creates a new validator
func NewValidator(strict bool) *Validator {
	return &Validator{strict: strict}
}

// Validate checks doc against defaults, the layout it will be rendered with
// when the document leaves a field unset.
func (v *Validator) Validate(doc *models.Document, defaults models.Layout) *ValidationResult {
	result := &ValidationResult{
		Valid:  true,
		Issues: []ValidationIssue{},
	}

	layout, ok := v.validateLayout(doc, defaults, result)
	v.validateContent(doc, layout, ok, result)
	v.finish(result)
	return result
}

// ValidateLayout checks the title and entries of doc against layout as
// given, ignoring the document's own layout fields. Use it when the final
// layout is known, e.g. after command-line overrides.
func (v *Validator) ValidateLayout(doc *models.Document, layout models.Layout) *ValidationResult {
	result := &ValidationResult{
		Valid:  true,
		Issues: []ValidationIssue{},
	}

	v.validateContent(doc, layout, layout.Validate() == nil, result)
	v.finish(result)
	return result
}

func (v *Validator) validateContent(doc *models.Document, layout models.Layout, layoutOK bool, result *ValidationResult) {
	if strings.TrimSpace(doc.Title) == "" {
		result.addWarning("title", "title is empty")
	} else if layoutOK && !text.Fits(doc.Title, layout.Width, layout.Space) {
		result.addWarning("title", fmt.Sprintf(
			"title (%d characters) does not fit width %d with space %d; it will be printed without a border",
			utf8.RuneCountInString(doc.Title), layout.Width, layout.Space))
	}

	seenLines := make(map[int]bool)
	for i := range doc.Entries {
		v.validateEntry(i, &doc.Entries[i], layout, layoutOK, seenLines, result)
	}
}

func (v *Validator) finish(result *ValidationResult) {
	result.Valid = !result.HasErrors()
	if v.strict && result.HasWarnings() {
		result.Valid = false
	}
}

// validateLayout reports every invalid layout field rather than stopping at
// the first, then returns the merged layout when all fields are valid.
func (v *Validator) validateLayout(doc *models.Document, defaults models.Layout, result *ValidationResult) (models.Layout, bool) {
	before := len(result.Issues)

	if doc.Width < 0 {
		result.addError("width", fmt.Sprintf("width must not be negative (got %d)", doc.Width))
	}
	if doc.Space != nil && *doc.Space < 0 {
		result.addError("space", fmt.Sprintf("space must not be negative (got %d)", *doc.Space))
	}
	if doc.MaxLength < 0 {
		result.addError("max-length", fmt.Sprintf("max-length must not be negative (got %d)", doc.MaxLength))
	}
	if doc.Fill != "" {
		if _, err := text.ParseFill(doc.Fill); err != nil {
			result.addError("fill", fmt.Sprintf("fill %q must be exactly one printable character", doc.Fill))
		}
	}
	if len(result.Issues) > before {
		return models.Layout{}, false
	}

	layout, err := doc.Layout(defaults)
	if err != nil {
		result.addError("layout", err.Error())
		return models.Layout{}, false
	}
	return layout, true
}

func (v *Validator) validateEntry(i int, e *models.Entry, layout models.Layout, layoutOK bool, seen map[int]bool, result *ValidationResult) {
	key := fmt.Sprintf("entries[%d]", i)

	if e.Line < 0 {
		result.addError(key, fmt.Sprintf("line must not be negative (got %d)", e.Line))
	} else if seen[e.Line] {
		result.addWarning(key, fmt.Sprintf("duplicate line %d", e.Line))
	}
	seen[e.Line] = true

	if strings.TrimSpace(e.Kind) == "" {
		result.addError(key, "kind is required")
	}

	if !layoutOK {
		return
	}
	value := models.FormatValue(e.Value)
	if n := utf8.RuneCountInString(value); n > layout.MaxLength {
		result.addWarning(key, fmt.Sprintf("value (%d characters) will be shortened to %d", n, layout.MaxLength))
	}
}

// addError adds an error-level issue
func (v *ValidationResult) addError(key, message string) {
	v.Issues = append(v.Issues, ValidationIssue{
		Level:   LevelError,
		Key:     key,
		Message: message,
	})
}

// addWarning adds a warning-level issue
func (v *ValidationResult) addWarning(key, message string) {
	v.Issues = append(v.Issues, ValidationIssue{
		Level:   LevelWarning,
		Key:     key,
		Message: message,
	})
}
