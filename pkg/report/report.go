// Package report renders section reports: a covered title line followed by
// one formatted line per entry, with long values shortened.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/kazuma-desu/banner/pkg/models"
	"github.com/kazuma-desu/banner/pkg/output"
	"github.com/kazuma-desu/banner/pkg/text"
)

// SupportedFormats lists the output formats Render accepts.
var SupportedFormats = []output.Format{
	output.FormatSimple,
	output.FormatJSON,
	output.FormatYAML,
	output.FormatTable,
	output.FormatTree,
}

// Banner returns title covered according to layout.
func Banner(title string, layout models.Layout) string {
	return text.CoverString(title, layout.Width, layout.Fill, layout.Space)
}

// Rule returns a line of layout.Width fill characters.
func Rule(layout models.Layout) string {
	if layout.Width <= 0 {
		return ""
	}
	return strings.Repeat(string(layout.Fill), layout.Width)
}

// FormatEntry renders e as "LLLL: kind         'value'", with the value
// shortened to maxLength characters.
func FormatEntry(e models.Entry, maxLength int) string {
	return fmt.Sprintf("%04d: %-12s '%s'", e.Line, e.Kind, text.ShortString(models.FormatValue(e.Value), maxLength))
}

// EntryView is the structured form of an entry.
type EntryView struct {
	Line    int    `json:"line" yaml:"line"`
	Kind    string `json:"kind" yaml:"kind"`
	Value   string `json:"value" yaml:"value"`
	Display string `json:"display" yaml:"display"`
}

// LayoutView is the structured form of a layout.
type LayoutView struct {
	Width     int    `json:"width" yaml:"width"`
	Fill      string `json:"fill" yaml:"fill"`
	Space     int    `json:"space" yaml:"space"`
	MaxLength int    `json:"maxLength" yaml:"max-length"`
}

// View is the structured form of a rendered report.
type View struct {
	Title   string      `json:"title" yaml:"title"`
	Banner  string      `json:"banner" yaml:"banner"`
	Layout  LayoutView  `json:"layout" yaml:"layout"`
	Entries []EntryView `json:"entries" yaml:"entries"`
}

// NewView builds the structured form of doc.
func NewView(doc *models.Document, layout models.Layout) View {
	v := View{
		Title:  doc.Title,
		Banner: Banner(doc.Title, layout),
		Layout: LayoutView{
			Width:     layout.Width,
			Fill:      string(layout.Fill),
			Space:     layout.Space,
			MaxLength: layout.MaxLength,
		},
		Entries: make([]EntryView, len(doc.Entries)),
	}
	for i, e := range doc.Entries {
		value := models.FormatValue(e.Value)
		v.Entries[i] = EntryView{
			Line:    e.Line,
			Kind:    e.Kind,
			Value:   value,
			Display: text.ShortString(value, layout.MaxLength),
		}
	}
	return v
}

// Renderer writes documents in one output format.
type Renderer struct {
	Layout models.Layout
	Format output.Format
	// Styled applies lipgloss styles to simple output.
	Styled bool
}

// Render writes doc to w.
func (r *Renderer) Render(w io.Writer, doc *models.Document) error {
	switch r.Format {
	case output.FormatSimple, "":
		return r.renderSimple(w, doc)
	case output.FormatJSON, output.FormatYAML:
		return output.Write(w, r.Format, NewView(doc, r.Layout))
	case output.FormatTable:
		return r.renderTable(w, doc)
	case output.FormatTree:
		return r.renderTree(w, doc)
	default:
		return fmt.Errorf("unsupported report format: %s", r.Format)
	}
}

func (r *Renderer) renderSimple(w io.Writer, doc *models.Document) error {
	banner := Banner(doc.Title, r.Layout)
	rule := Rule(r.Layout)
	if r.Styled {
		banner = output.BannerStyle.Render(banner)
		rule = output.RuleStyle.Render(rule)
	}

	var b strings.Builder
	b.WriteString(banner)
	b.WriteByte('\n')
	for _, e := range doc.Entries {
		b.WriteString(FormatEntry(e, r.Layout.MaxLength))
		b.WriteByte('\n')
	}
	if rule != "" {
		b.WriteString(rule)
		b.WriteByte('\n')
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func (r *Renderer) renderTable(w io.Writer, doc *models.Document) error {
	rows := make([][]string, len(doc.Entries))
	for i, e := range doc.Entries {
		rows[i] = []string{
			fmt.Sprintf("%04d", e.Line),
			e.Kind,
			text.ShortString(models.FormatValue(e.Value), r.Layout.MaxLength),
		}
	}

	table := output.RenderTable(output.TableConfig{
		Headers: []string{"LINE", "KIND", "VALUE"},
		Rows:    rows,
	})

	_, err := fmt.Fprintf(w, "%s\n%s\n", Banner(doc.Title, r.Layout), table)
	return err
}

// renderTree groups entries by kind, in order of first appearance.
func (r *Renderer) renderTree(w io.Writer, doc *models.Document) error {
	var groups []output.TreeGroup
	index := make(map[string]int)

	for _, e := range doc.Entries {
		i, ok := index[e.Kind]
		if !ok {
			i = len(groups)
			index[e.Kind] = i
			groups = append(groups, output.TreeGroup{Name: e.Kind})
		}
		leaf := fmt.Sprintf("%04d %s", e.Line, text.ShortString(models.FormatValue(e.Value), r.Layout.MaxLength))
		groups[i].Leaves = append(groups[i].Leaves, leaf)
	}

	_, err := fmt.Fprintln(w, output.RenderTree(Banner(doc.Title, r.Layout), groups))
	return err
}
