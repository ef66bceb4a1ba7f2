package parsers

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kazuma-desu/banner/pkg/logger"
	"github.com/kazuma-desu/banner/pkg/models"
)

// ErrEmptyDocument is returned for files without any document content.
var ErrEmptyDocument = errors.New("report file is empty")

type YAMLParser struct{}

func (p *YAMLParser) FormatName() string {
	return "yaml"
}

// Parse decodes the first YAML document in path. Unknown fields are rejected
// and further documents are ignored with a warning.
func (p *YAMLParser) Parse(path string) (*models.Document, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)

	var doc models.Document
	if err := decoder.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDocument
		}
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	var extra yaml.Node
	if err := decoder.Decode(&extra); err == nil {
		logger.Log.Warnw("YAML file contains multiple documents, only the first is used", "file", path)
	}

	return &doc, nil
}
