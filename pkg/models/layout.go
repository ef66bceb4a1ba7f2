package models

import (
	"fmt"

	"github.com/kazuma-desu/banner/pkg/text"
)

// Built-in layout defaults.
const (
	DefaultWidth     = 40
	DefaultFill      = '='
	DefaultSpace     = 1
	DefaultMaxLength = 32
)

// Layout controls how banners and entry values are drawn.
type Layout struct {
	Width     int
	Fill      rune
	Space     int
	MaxLength int
}

// DefaultLayout returns the built-in layout.
func DefaultLayout() Layout {
	return Layout{
		Width:     DefaultWidth,
		Fill:      DefaultFill,
		Space:     DefaultSpace,
		MaxLength: DefaultMaxLength,
	}
}

// Validate checks every field against the text package contract.
func (l Layout) Validate() error {
	if _, err := text.Cover("", l.Width, l.Fill, l.Space); err != nil {
		return err
	}
	if _, err := text.Short("", l.MaxLength); err != nil {
		return fmt.Errorf("max-length: %w", err)
	}
	return nil
}

// Layout merges the document's own layout fields over defaults.
// Zero width, empty fill, nil space and zero max-length keep the default.
func (d *Document) Layout(defaults Layout) (Layout, error) {
	l := defaults
	if d.Width != 0 {
		l.Width = d.Width
	}
	if d.Fill != "" {
		fill, err := text.ParseFill(d.Fill)
		if err != nil {
			return Layout{}, fmt.Errorf("invalid fill: %w", err)
		}
		l.Fill = fill
	}
	if d.Space != nil {
		l.Space = *d.Space
	}
	if d.MaxLength != 0 {
		l.MaxLength = d.MaxLength
	}
	if err := l.Validate(); err != nil {
		return Layout{}, err
	}
	return l, nil
}
