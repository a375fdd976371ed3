package width

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		w     int
		want  string
	}{
		{name: "split", input: "123456789", w: 5, want: "12345\n6789"},
		{name: "zero width", input: "abc", w: 0, want: "abc"},
		{name: "exact multiple", input: "abcdef", w: 3, want: "abc\ndef"},
		{name: "fits", input: "abc", w: 5, want: "abc"},
		{name: "one per line", input: "abc", w: 1, want: "a\nb\nc"},
		{name: "empty", input: "", w: 3, want: ""},
		{name: "cyrillic", input: "Добры вечар", w: 5, want: "Добры\n веча\nр"},
	}

	for _, mm := range measurers {
		for _, tt := range tests {
			t.Run(mm.name+"/"+tt.name, func(t *testing.T) {
				t.Parallel()
				assert.Equal(t, tt.want, Wrap(mm.m, tt.input, tt.w))
			})
		}
	}
}

func TestWrap_Escapes(t *testing.T) {
	t.Parallel()

	s := "\x1b[32m123456789\x1b[0m"
	assert.Equal(t, "\x1b[32m12345\n6789\x1b[0m", Wrap(ANSI{}, s, 5))
}

func TestWrap_WideCharacters(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "你好\n世界", Wrap(ANSI{}, "你好世界", 4))
	assert.Equal(t, "你\n好", Wrap(ANSI{}, "你好", 3))
	// Narrower than a single glyph still makes progress.
	assert.Equal(t, "你\n好", Wrap(ANSI{}, "你好", 1))
	// Leading escapes travel with the first glyph instead of a line of their own.
	assert.Equal(t, "\x1b[31m你\n好", Wrap(ANSI{}, "\x1b[31m你好", 1))
	assert.Equal(t, "\x1b[31m你\x1b[0m\x1b[1m\n好", Wrap(ANSI{}, "\x1b[31m你\x1b[0m\x1b[1m好", 1))
	assert.Equal(t, "\U0001F1FA\U0001F1F8\n\U0001F1FA\U0001F1F8", Wrap(ANSI{}, "\U0001F1FA\U0001F1F8\U0001F1FA\U0001F1F8", 3))
}

func TestWrap_ExistingNewlines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		w     int
		want  string
	}{
		{name: "line boundary kept", input: "ab\ncd", w: 2, want: "ab\ncd"},
		{name: "each line wrapped", input: "abcd\nefg", w: 2, want: "ab\ncd\nef\ng"},
		{name: "empty line kept", input: "ab\n\ncd", w: 5, want: "ab\n\ncd"},
		{name: "trailing newline", input: "abc\n", w: 2, want: "ab\nc\n"},
		{name: "rewrap is stable", input: "Hello\n...", w: 5, want: "Hello\n..."},
	}

	for _, mm := range measurers {
		for _, tt := range tests {
			t.Run(mm.name+"/"+tt.name, func(t *testing.T) {
				t.Parallel()
				got := Wrap(mm.m, tt.input, tt.w)
				assert.Equal(t, tt.want, got)
				assert.Equal(t, got, Wrap(mm.m, got, tt.w))
			})
		}
	}
}

func TestWrap_Properties(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"123456789",
		"Bonjour le monde",
		"Добры вечар",
		"\x1b[31mHello\x1b[0m \x1b[1mWorld\x1b[0m!!!",
		"ab\x1b[3",
	}

	for _, mm := range measurers {
		for _, s := range inputs {
			for w := 1; w <= 8; w++ {
				lines := Lines(mm.m, s, w)
				require.NotEmpty(t, lines)
				for _, line := range lines {
					assert.LessOrEqual(t, mm.m.Width(line), w, "%s: line %q of %q", mm.name, line, s)
				}
				assert.Equal(t, s, strings.Join(lines, ""), "%s: round trip of %q", mm.name, s)
				assert.Equal(t, strings.Join(lines, "\n"), Wrap(mm.m, s, w))
			}
		}
	}
}
