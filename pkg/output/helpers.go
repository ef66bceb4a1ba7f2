package output

import (
	"strings"
	"unicode/utf8"

	"github.com/kazuma-desu/banner/pkg/text"
)

// Truncate shortens s to maxLen characters, ending in "..." when something
// was cut. Newlines are escaped first.
// If maxLen <= 0, returns empty string.
// If maxLen <= 3, returns the first maxLen characters without "...".
func Truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	s = strings.ReplaceAll(s, "\n", "\\n")
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return text.ShortString(s, maxLen)
	}
	return text.ShortString(s, maxLen-3) + "..."
}
