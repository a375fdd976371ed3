package ui

import (
	"regexp"

	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"
)

// FuzzyMatch reports whether query matches target as a case-insensitive
// regexp. Queries that are not valid regexps are matched fuzzily.
func FuzzyMatch(target, query string) bool {
	if re, err := regexp.Compile("(?i)" + query); err == nil {
		return re.MatchString(target)
	}
	return len(fuzzy.Find(query, []string{target})) > 0
}

// Color palette
var (
	ColorAccent  = lipgloss.Color("#4ecca3")
	ColorDim     = lipgloss.Color("#555555")
	ColorSuccess = lipgloss.Color("#4ecca3")
	ColorError   = lipgloss.Color("#e94560")
	ColorMatch   = lipgloss.Color("#f0a500")
)

// Text styles
var (
	AccentText = lipgloss.NewStyle().Foreground(ColorAccent)
	DimText    = lipgloss.NewStyle().Foreground(ColorDim)
	ErrorText  = lipgloss.NewStyle().Foreground(ColorError)
	NullText   = lipgloss.NewStyle().Foreground(ColorDim).Italic(true)
	MatchText  = lipgloss.NewStyle().Foreground(ColorMatch).Bold(true)
)

// HeaderStyle colors the header row and the title.
var HeaderStyle = lipgloss.NewStyle().
	Foreground(ColorAccent).
	Bold(true)

// Status bar
var (
	StatusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#333333")).
			Foreground(lipgloss.Color("#cccccc")).
			Padding(0, 1)

	StatusErrorStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("#333333")).
				Foreground(ColorError).
				Padding(0, 1)

	StatusSuccessStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("#333333")).
				Foreground(ColorSuccess).
				Padding(0, 1)
)

// Search styles
var (
	SearchInput = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)
	SearchLabel = lipgloss.NewStyle().
			Foreground(ColorAccent)
)
