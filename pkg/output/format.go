package output

import (
	"fmt"
	"slices"
	"strings"
)

// Format represents a supported output format.
type Format string

const (
	FormatSimple Format = "simple"
	FormatJSON   Format = "json"
	FormatYAML   Format = "yaml"
	FormatTable  Format = "table"
	FormatTree   Format = "tree"
)

var allFormats = []Format{
	FormatSimple,
	FormatJSON,
	FormatYAML,
	FormatTable,
	FormatTree,
}

// AllFormats returns a copy of all supported formats.
func AllFormats() []Format {
	return slices.Clone(allFormats)
}

// String returns the string representation.
func (f Format) String() string {
	return string(f)
}

// IsValid checks if the format is supported.
func (f Format) IsValid() bool {
	return slices.Contains(allFormats, f)
}

// IsStructured reports whether the format is meant for machines (json, yaml).
// Informational logging is suppressed for structured formats.
func (f Format) IsStructured() bool {
	return f == FormatJSON || f == FormatYAML
}

// ParseFormat parses a string into Format, validating it.
func ParseFormat(s string) (Format, error) {
	return NormalizeFormat(s, allFormats)
}

// NormalizeFormat validates requested against the formats a command supports.
// An empty request selects FormatSimple.
func NormalizeFormat(requested string, allowed []Format) (Format, error) {
	if requested == "" {
		requested = string(FormatSimple)
	}
	f := Format(strings.ToLower(strings.TrimSpace(requested)))
	if slices.Contains(allowed, f) {
		return f, nil
	}
	return "", fmt.Errorf("invalid output format: %s (use %s)", requested, joinFormats(allowed))
}

func joinFormats(formats []Format) string {
	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}
