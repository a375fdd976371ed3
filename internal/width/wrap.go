package width

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Wrap hard-wraps s into lines of at most w visible columns joined by "\n".
// A zero width leaves s untouched.
func Wrap(m Measurer, s string, w int) string {
	if w <= 0 {
		return s
	}
	return strings.Join(Lines(m, s, w), "\n")
}

// Lines splits s into consecutive chunks of at most w visible columns.
// Existing newlines end a line and are not part of any chunk, so an empty
// source line stays an empty chunk. Escape sequences stay in the chunk
// whose span contains them. A single grapheme wider than w gets a line of
// its own.
func Lines(m Measurer, s string, w int) []string {
	if w <= 0 || s == "" {
		return []string{s}
	}
	var lines []string
	for _, seg := range strings.Split(s, "\n") {
		lines = append(lines, splitLine(m, seg, w)...)
	}
	return lines
}

func splitLine(m Measurer, s string, w int) []string {
	if s == "" {
		return []string{""}
	}
	var lines []string
	for s != "" {
		n := m.Span(s, w)
		if n < len(s) && m.Width(s[:n]) == 0 {
			// Nothing visible fits; take the next cluster anyway.
			cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(s[n:], -1)
			n += len(cluster)
			if n < len(s) {
				n += m.Span(s[n:], 0)
			}
		}
		lines = append(lines, s[:n])
		s = s[n:]
	}
	return lines
}
