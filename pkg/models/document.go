package models

// Entry is a single report row.
type Entry struct {
	Line  int    `yaml:"line" json:"line"`
	Kind  string `yaml:"kind" json:"kind"`
	Value any    `yaml:"value" json:"value"`
}

// Document is a report loaded from a YAML or JSON file.
// Zero-valued layout fields fall back to configured defaults.
type Document struct {
	Title     string  `yaml:"title" json:"title"`
	Width     int     `yaml:"width,omitempty" json:"width,omitempty"`
	Fill      string  `yaml:"fill,omitempty" json:"fill,omitempty"`
	Space     *int    `yaml:"space,omitempty" json:"space,omitempty"`
	MaxLength int     `yaml:"max-length,omitempty" json:"max-length,omitempty"`
	Entries   []Entry `yaml:"entries" json:"entries"`
}

// FormatType represents the type of report file format
type FormatType string

const (
	FormatAuto FormatType = "auto"
	FormatYAML FormatType = "yaml"
	FormatJSON FormatType = "json"
)

// IsValid checks if the format type is valid
func (f FormatType) IsValid() bool {
	switch f {
	case FormatAuto, FormatYAML, FormatJSON:
		return true
	default:
		return false
	}
}
