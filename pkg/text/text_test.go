package text

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoverString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		width    int
		fill     rune
		space    int
		expected string
	}{
		{
			name:     "odd budget puts extra fill on the right",
			input:    "TITLE",
			width:    20,
			fill:     '=',
			space:    1,
			expected: "====== TITLE =======",
		},
		{
			name:     "even budget splits evenly",
			input:    "TITLE",
			width:    21,
			fill:     '=',
			space:    1,
			expected: "======= TITLE =======",
		},
		{
			name:     "does not fit returns input",
			input:    "LONGTITLE",
			width:    10,
			fill:     '=',
			space:    2,
			expected: "LONGTITLE",
		},
		{
			name:     "exact fit without fill returns input",
			input:    "abc",
			width:    5,
			fill:     '-',
			space:    1,
			expected: "abc",
		},
		{
			name:     "zero space",
			input:    "ab",
			width:    6,
			fill:     '*',
			space:    0,
			expected: "**ab**",
		},
		{
			name:     "zero width returns input",
			input:    "x",
			width:    0,
			fill:     '=',
			space:    0,
			expected: "x",
		},
		{
			name:     "empty input is all fill and spacing",
			input:    "",
			width:    6,
			fill:     '#',
			space:    1,
			expected: "##  ##",
		},
		{
			name:     "budget of one goes right",
			input:    "ab",
			width:    3,
			fill:     '=',
			space:    0,
			expected: "ab=",
		},
		{
			name:     "multi-byte content counted by character",
			input:    "héllo",
			width:    11,
			fill:     '=',
			space:    1,
			expected: "== héllo ==",
		},
		{
			name:     "multi-byte fill",
			input:    "ok",
			width:    6,
			fill:     '─',
			space:    0,
			expected: "──ok──",
		},
		{
			name:     "negative width returns input",
			input:    "x",
			width:    -3,
			fill:     '=',
			space:    0,
			expected: "x",
		},
		{
			name:     "negative space returns input",
			input:    "x",
			width:    10,
			fill:     '=',
			space:    -1,
			expected: "x",
		},
		{
			name:     "control fill is repeated",
			input:    "x",
			width:    6,
			fill:     '\t',
			space:    0,
			expected: "\t\tx\t\t\t",
		},
		{
			name:     "format character fill is repeated",
			input:    "x",
			width:    6,
			fill:     '\u200d',
			space:    0,
			expected: "\u200d\u200dx\u200d\u200d\u200d",
		},
		{
			name:     "replacement character fill is repeated",
			input:    "x",
			width:    6,
			fill:     '\uFFFD',
			space:    0,
			expected: "\uFFFD\uFFFDx\uFFFD\uFFFD\uFFFD",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CoverString(tt.input, tt.width, tt.fill, tt.space))
		})
	}
}

func TestCoverString_Properties(t *testing.T) {
	inputs := []string{"", "a", "TITLE", "hello world", "日本語"}

	for _, s := range inputs {
		for width := 0; width <= 30; width++ {
			for space := 0; space <= 4; space++ {
				got := CoverString(s, width, '=', space)
				contentLen := utf8.RuneCountInString(s)

				if contentLen+2*space >= width {
					assert.Equal(t, s, got, "s=%q width=%d space=%d", s, width, space)
					continue
				}

				require.Equal(t, width, utf8.RuneCountInString(got), "s=%q width=%d space=%d", s, width, space)
				if s == "" && space == 0 {
					assert.Equal(t, strings.Repeat("=", width), got)
					continue
				}

				pad := strings.Repeat(" ", space)
				idx := strings.Index(got, pad+s+pad)
				require.GreaterOrEqual(t, idx, 0, "content not flanked by spacing: %q", got)

				left := got[:idx]
				right := got[idx+len(pad+s+pad):]
				assert.Equal(t, strings.Repeat("=", len(left)), left)
				assert.Equal(t, strings.Repeat("=", len(right)), right)

				budget := width - contentLen - 2*space
				if budget%2 == 1 {
					assert.Equal(t, len(left)+1, len(right), "got %q", got)
				} else {
					assert.Equal(t, len(left), len(right), "got %q", got)
				}
			}
		}
	}
}

func TestCover(t *testing.T) {
	t.Run("valid input matches CoverString", func(t *testing.T) {
		got, err := Cover("TITLE", 20, '=', 1)
		require.NoError(t, err)
		assert.Equal(t, CoverString("TITLE", 20, '=', 1), got)
	})

	tests := []struct {
		name    string
		width   int
		fill    rune
		space   int
		wantErr error
	}{
		{"negative width", -1, '=', 1, ErrNegativeWidth},
		{"negative space", 10, '=', -2, ErrNegativeSpace},
		{"control fill", 10, '\t', 1, ErrInvalidFill},
		{"format character fill", 10, '\u200d', 1, ErrInvalidFill},
		{"surrogate fill", 10, 0xD800, 1, ErrInvalidFill},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Cover("x", tt.width, tt.fill, tt.space)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestCover_AcceptsReplacementCharacter(t *testing.T) {
	got, err := Cover("x", 6, '\uFFFD', 0)
	require.NoError(t, err)
	assert.Equal(t, "\uFFFD\uFFFDx\uFFFD\uFFFD\uFFFD", got)
}

func TestFits(t *testing.T) {
	assert.True(t, Fits("TITLE", 20, 1))
	assert.False(t, Fits("LONGTITLE", 10, 2))
	assert.False(t, Fits("abc", 5, 1))
	assert.True(t, Fits("", 1, 0))
}

func TestShortString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		length   int
		expected string
	}{
		{"truncated", "hello world", 5, "hello"},
		{"shorter than length", "hi", 5, "hi"},
		{"exact length", "hello", 5, "hello"},
		{"zero length", "hello", 0, ""},
		{"empty input", "", 3, ""},
		{"multi-byte counted by character", "héllo wörld", 7, "héllo w"},
		{"cjk", "日本語テキスト", 3, "日本語"},
		{"emoji", "🎉🎊🎁🎄", 2, "🎉🎊"},
		{"negative length returns input", "hello", -1, "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ShortString(tt.input, tt.length))
		})
	}
}

func TestShortString_Properties(t *testing.T) {
	inputs := []string{"", "a", "hello world", "日本語テキスト", "mixed ascii と 日本語"}

	for _, s := range inputs {
		runes := []rune(s)
		for length := 0; length <= len(runes)+2; length++ {
			got := ShortString(s, length)
			if length >= len(runes) {
				assert.Equal(t, s, got)
				continue
			}
			assert.Equal(t, length, utf8.RuneCountInString(got))
			assert.Equal(t, string(runes[:length]), got)
			assert.True(t, strings.HasPrefix(s, got))
		}
	}
}

func TestShort(t *testing.T) {
	got, err := Short("hello world", 5)
	require.NoError(t, err)
	assert.Equal(t, "hello", got)

	_, err = Short("hello", -1)
	assert.ErrorIs(t, err, ErrNegativeLength)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestParseFill(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    rune
		wantErr bool
	}{
		{"ascii", "=", '=', false},
		{"space", " ", ' ', false},
		{"box drawing", "─", '─', false},
		{"empty", "", 0, true},
		{"two characters", "==", 0, true},
		{"newline", "\n", 0, true},
		{"invalid utf8", "\xff", 0, true},
		{"replacement character", "\uFFFD", '\uFFFD', false},
		{"zero width joiner", "\u200d", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFill(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidFill)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func BenchmarkCoverString(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = CoverString("TITLE", 80, '=', 1)
	}
}
