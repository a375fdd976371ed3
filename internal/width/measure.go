// Package width measures and reshapes cell content to a visible width.
//
// Content may carry terminal escape sequences and multi-byte code points.
// Every offset produced here lands on a code-point boundary and outside of
// any escape sequence, so s[:offset] is always safe to emit.
package width

import (
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Measurer counts visible columns and maps a visible count to a byte offset.
type Measurer interface {
	// Width returns the visible width of s.
	Width(s string) int
	// Span returns the byte offset of the longest prefix of s whose
	// visible width does not exceed n. It returns len(s) when s fits.
	Span(s string, n int) int
}

// Plain treats every code point as one visible column, escape bytes included.
type Plain struct{}

// Width returns the number of code points in s.
func (Plain) Width(s string) int {
	return utf8.RuneCountInString(s)
}

// Span returns the byte length of the first n code points of s.
func (Plain) Span(s string, n int) int {
	if n <= 0 {
		return 0
	}
	for i := range s {
		if n == 0 {
			return i
		}
		n--
	}
	return len(s)
}

// ANSI skips escape sequences and weighs each grapheme cluster by its
// display width.
type ANSI struct{}

// Width returns the display width of s ignoring escape sequences.
func (ANSI) Width(s string) int {
	if isPlainASCII(s) {
		return len(s)
	}
	w := 0
	for i := 0; i < len(s); {
		if s[i] == esc {
			i = skipEscape(s, i)
			continue
		}
		cluster, cw := nextCluster(s[i:])
		w += cw
		i += len(cluster)
	}
	return w
}

// Span returns the end of the longest prefix of s that is at most n columns
// wide. Escape sequences directly after the last included cluster belong to
// the prefix.
func (ANSI) Span(s string, n int) int {
	if isPlainASCII(s) {
		if n < 0 {
			return 0
		}
		return min(n, len(s))
	}
	col := 0
	i := skipEscapes(s, 0)
	for i < len(s) {
		cluster, cw := nextCluster(s[i:])
		if col+cw > n {
			return i
		}
		col += cw
		i = skipEscapes(s, i+len(cluster))
	}
	return len(s)
}

// nextCluster returns the grapheme cluster at the start of s, cut short
// at the first escape byte, and its display width. The width is the whole
// cluster's, so emoji presentation sequences and flags count as two.
func nextCluster(s string) (string, int) {
	cluster, _, cw, _ := uniseg.FirstGraphemeClusterInString(s, -1)
	for j := 1; j < len(cluster); j++ {
		if cluster[j] == esc {
			cluster = cluster[:j]
			cw = uniseg.StringWidth(cluster)
			break
		}
	}
	return cluster, cw
}

// isPlainASCII reports whether s holds only printable ASCII.
func isPlainASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if b := s[i]; b < 0x20 || b > 0x7E {
			return false
		}
	}
	return true
}
