package grid

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Style describes the frame drawn around and between cells.
//
// Border.Left doubles as the column separator inside a row, the Middle*
// parts draw the line under the header row, and the Top*/Bottom* parts draw
// the outer frame.
type Style struct {
	Name   string
	Border lipgloss.Border
	Top    bool
	Bottom bool
	Header bool
	Sides  bool
}

var (
	// Markdown renders a GitHub-flavored Markdown table.
	Markdown = Style{
		Name: "markdown",
		Border: lipgloss.Border{
			Top:         "-",
			Left:        "|",
			Right:       "|",
			MiddleLeft:  "|",
			Middle:      "|",
			MiddleRight: "|",
		},
		Header: true,
		Sides:  true,
	}

	// ASCII draws a +---+ frame.
	ASCII = Style{
		Name: "ascii",
		Border: lipgloss.Border{
			Top:          "-",
			Bottom:       "-",
			Left:         "|",
			Right:        "|",
			TopLeft:      "+",
			TopRight:     "+",
			BottomLeft:   "+",
			BottomRight:  "+",
			MiddleLeft:   "+",
			MiddleRight:  "+",
			Middle:       "+",
			MiddleTop:    "+",
			MiddleBottom: "+",
		},
		Top:    true,
		Bottom: true,
		Header: true,
		Sides:  true,
	}

	// Rounded draws box-drawing characters with rounded corners.
	Rounded = Style{Name: "rounded", Border: lipgloss.RoundedBorder(), Top: true, Bottom: true, Header: true, Sides: true}

	// Normal draws square box-drawing characters.
	Normal = Style{Name: "normal", Border: lipgloss.NormalBorder(), Top: true, Bottom: true, Header: true, Sides: true}

	// Double draws double-line box-drawing characters.
	Double = Style{Name: "double", Border: lipgloss.DoubleBorder(), Top: true, Bottom: true, Header: true, Sides: true}

	// Blank separates columns with a space and draws nothing else.
	Blank = Style{Name: "blank", Border: lipgloss.Border{Left: " "}}
)

var styles = []Style{Markdown, ASCII, Rounded, Normal, Double, Blank}

// StyleNames lists the names accepted by LookupStyle.
func StyleNames() []string {
	names := make([]string, len(styles))
	for i, s := range styles {
		names[i] = s.Name
	}
	return names
}

// LookupStyle returns the style registered under name.
func LookupStyle(name string) (Style, error) {
	for _, s := range styles {
		if strings.EqualFold(s.Name, name) {
			return s, nil
		}
	}
	return Style{}, fmt.Errorf("unknown style %q (want one of %s)", name, strings.Join(StyleNames(), ", "))
}

// ParseAlignment maps "left", "center" and "right" to a lipgloss position.
func ParseAlignment(s string) (lipgloss.Position, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "left":
		return lipgloss.Left, nil
	case "center", "centre":
		return lipgloss.Center, nil
	case "right":
		return lipgloss.Right, nil
	}
	return lipgloss.Left, fmt.Errorf("unknown alignment %q", s)
}
