package width

// Truncate cuts s down to max visible columns and appends suffix. The
// suffix is written verbatim and does not count against max. When s already
// fits, it is returned unchanged and no suffix is added.
func Truncate(m Measurer, s string, max int, suffix string) string {
	if m.Width(s) <= max {
		return s
	}
	return s[:m.Span(s, max)] + suffix
}
