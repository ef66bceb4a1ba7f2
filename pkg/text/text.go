// Package text provides the string helpers behind banner lines and
// shortened report values.
package text

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ErrInvalidArgument is wrapped by every validation error in this package.
var ErrInvalidArgument = errors.New("invalid argument")

var (
	ErrNegativeWidth  = fmt.Errorf("%w: width must not be negative", ErrInvalidArgument)
	ErrNegativeSpace  = fmt.Errorf("%w: space must not be negative", ErrInvalidArgument)
	ErrNegativeLength = fmt.Errorf("%w: length must not be negative", ErrInvalidArgument)
	ErrInvalidFill    = fmt.Errorf("%w: fill must be exactly one printable character", ErrInvalidArgument)
)

// CoverString centers s inside a line of width characters: a run of fill,
// space blanks, s, space blanks and another run of fill. When the budget is
// odd the right run is one longer than the left.
//
// If s and its spacing do not leave room for any fill, s is returned
// unchanged. Negative width or space also return s unchanged; use Cover to
// get an error instead. Any rune is accepted as fill.
func CoverString(s string, width int, fill rune, space int) string {
	if width < 0 || space < 0 {
		return s
	}

	contentLen := utf8.RuneCountInString(s)
	if contentLen+space*2 >= width {
		return s
	}

	budget := width - contentLen - space*2
	left := budget / 2
	right := budget - left

	pad := strings.Repeat(" ", space)
	f := string(fill)

	var b strings.Builder
	b.Grow(len(s) + space*2 + budget*len(f))
	b.WriteString(strings.Repeat(f, left))
	b.WriteString(pad)
	b.WriteString(s)
	b.WriteString(pad)
	b.WriteString(strings.Repeat(f, right))
	return b.String()
}

// Cover is CoverString with argument validation. Besides rejecting negative
// width and space, it only accepts printable fill runes.
func Cover(s string, width int, fill rune, space int) (string, error) {
	if width < 0 {
		return "", fmt.Errorf("%w (got %d)", ErrNegativeWidth, width)
	}
	if space < 0 {
		return "", fmt.Errorf("%w (got %d)", ErrNegativeSpace, space)
	}
	if !validFill(fill) {
		return "", fmt.Errorf("%w (got %q)", ErrInvalidFill, fill)
	}
	return CoverString(s, width, fill, space), nil
}

// Fits reports whether s with space blanks on each side leaves room for
// fill characters within width.
func Fits(s string, width, space int) bool {
	return utf8.RuneCountInString(s)+space*2 < width
}

// ShortString returns the first length characters of s when s is longer
// than length, and s itself otherwise. Characters are counted as runes.
// A negative length returns s unchanged; use Short to get an error instead.
func ShortString(s string, length int) string {
	if length < 0 {
		return s
	}
	if length >= utf8.RuneCountInString(s) {
		return s
	}

	// Walk to the byte offset of the length-th rune without converting the
	// whole string.
	i := 0
	for offset := range s {
		if i == length {
			return s[:offset]
		}
		i++
	}
	return s
}

// Short is ShortString with argument validation.
func Short(s string, length int) (string, error) {
	if length < 0 {
		return "", fmt.Errorf("%w (got %d)", ErrNegativeLength, length)
	}
	return ShortString(s, length), nil
}

// ParseFill converts s into a fill rune. s must hold exactly one printable
// character.
func ParseFill(s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%w (got %q)", ErrInvalidFill, s)
	}
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size == 1 {
		return 0, fmt.Errorf("%w (got %q)", ErrInvalidFill, s)
	}
	if !validFill(r) {
		return 0, fmt.Errorf("%w (got %q)", ErrInvalidFill, s)
	}
	return r, nil
}

func validFill(r rune) bool {
	return utf8.ValidRune(r) && unicode.IsPrint(r)
}
