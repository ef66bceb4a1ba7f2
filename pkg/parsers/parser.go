// Package parsers loads report documents from YAML and JSON files.
package parsers

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/kazuma-desu/banner/pkg/models"
)

// Parser reads a report file into a Document.
type Parser interface {
	Parse(path string) (*models.Document, error)

	// FormatName returns the name of the format this parser handles
	FormatName() string
}

// Registry maintains a mapping of format types to their parsers
type Registry struct {
	parsers map[models.FormatType]Parser
}

// NewRegistry creates a new parser registry with default parsers
func NewRegistry() *Registry {
	r := &Registry{
		parsers: make(map[models.FormatType]Parser),
	}

	r.Register(models.FormatYAML, &YAMLParser{})
	r.Register(models.FormatJSON, &JSONParser{})

	return r
}

// Register adds a parser to the registry
func (r *Registry) Register(format models.FormatType, parser Parser) {
	r.parsers[format] = parser
}

// GetParser returns the parser for the specified format
func (r *Registry) GetParser(format models.FormatType) (Parser, error) {
	parser, ok := r.parsers[format]
	if !ok {
		return nil, fmt.Errorf("no parser registered for format: %s", format)
	}
	return parser, nil
}

// DetectFormat picks a format from the file extension.
func (r *Registry) DetectFormat(path string) (models.FormatType, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return models.FormatYAML, nil
	case ".json":
		return models.FormatJSON, nil
	default:
		return "", fmt.Errorf("cannot detect format of %s: use a .yaml, .yml or .json file or pass --format", path)
	}
}

// Load parses path with the parser for format, detecting the format from
// the extension when format is FormatAuto or empty.
func (r *Registry) Load(path string, format models.FormatType) (*models.Document, error) {
	if format == "" || format == models.FormatAuto {
		detected, err := r.DetectFormat(path)
		if err != nil {
			return nil, err
		}
		format = detected
	}

	parser, err := r.GetParser(format)
	if err != nil {
		return nil, err
	}
	return parser.Parse(path)
}
