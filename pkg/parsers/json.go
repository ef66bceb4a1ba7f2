package parsers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/kazuma-desu/banner/pkg/models"
)

type JSONParser struct{}

func (p *JSONParser) FormatName() string {
	return "json"
}

// Parse decodes path as a single JSON object. Unknown fields are rejected.
func (p *JSONParser) Parse(path string) (*models.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyDocument
	}

	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()

	var doc models.Document
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	return &doc, nil
}
