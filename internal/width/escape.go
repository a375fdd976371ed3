package width

import "strings"

const esc = '\x1b'

// skipEscape returns the index of the first byte after the escape sequence
// starting at s[i]. Unterminated sequences run to the end of s.
func skipEscape(s string, i int) int {
	if i >= len(s) || s[i] != esc {
		return i
	}
	i++
	if i >= len(s) {
		return i
	}

	switch s[i] {
	case '[':
		// CSI: parameters then a final byte in 0x40-0x7E.
		i++
		for i < len(s) {
			if b := s[i]; b >= 0x40 && b <= 0x7E {
				return i + 1
			}
			i++
		}
		return i
	case ']':
		// OSC: terminated by BEL or ST.
		i++
		for i < len(s) {
			if s[i] == '\x07' {
				return i + 1
			}
			if s[i] == esc && i+1 < len(s) && s[i+1] == '\\' {
				return i + 2
			}
			i++
		}
		return i
	case '(', ')':
		if i+1 < len(s) {
			return i + 2
		}
		return i + 1
	case 'P', '_', '^', 'X':
		// DCS, APC, PM, SOS: terminated by ST.
		i++
		for i < len(s) {
			if s[i] == esc && i+1 < len(s) && s[i+1] == '\\' {
				return i + 2
			}
			i++
		}
		return i
	default:
		return i + 1
	}
}

// skipEscapes skips a run of consecutive escape sequences starting at s[i].
func skipEscapes(s string, i int) int {
	for i < len(s) && s[i] == esc {
		i = skipEscape(s, i)
	}
	return i
}

// Strip removes every escape sequence from s.
func Strip(s string) string {
	if !strings.ContainsRune(s, esc) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		if s[i] == esc {
			i = skipEscape(s, i)
			continue
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}
