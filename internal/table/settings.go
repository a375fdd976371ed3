package table

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"cli-table/internal/grid"
	"cli-table/internal/width"
)

// Settings is a declarative bundle of the options the CLI and the viewer
// expose. Zero Truncate, Wrap and Increase values are disabled.
type Settings struct {
	Style    grid.Style
	Align    lipgloss.Position
	Target   grid.Entity
	Truncate int
	Suffix   string
	Wrap     int
	Increase int
	Measurer width.Measurer
}

// DefaultSettings renders Markdown, left aligned, with nothing constrained.
func DefaultSettings() Settings {
	return Settings{Style: grid.Markdown, Align: lipgloss.Left, Target: grid.All(), Suffix: "..."}
}

// Options translates s into table options: style and alignment first, then
// truncation and wrapping of the target cells, then widening.
func (s Settings) Options() ([]TableOption, error) {
	if s.Truncate < 0 || s.Wrap < 0 {
		return nil, fmt.Errorf("widths must not be negative (truncate %d, wrap %d)", s.Truncate, s.Wrap)
	}
	opts := []TableOption{Style(s.Style), Align(s.Align)}

	var cellOpts []CellOption
	if s.Truncate > 0 {
		cellOpts = append(cellOpts, TruncateTo(s.Truncate).Suffix(s.Suffix).Measure(s.Measurer))
	}
	if s.Wrap > 0 {
		cellOpts = append(cellOpts, WrapTo(s.Wrap).Measure(s.Measurer))
	}
	if len(cellOpts) > 0 {
		opts = append(opts, Modify(s.Target).With(cellOpts...))
	}

	if s.Increase != 0 {
		inc, err := IncreaseBy(s.Increase)
		if err != nil {
			return nil, err
		}
		opts = append(opts, inc)
	}
	return opts, nil
}

// Apply builds the options and applies them to t.
func (s Settings) Apply(t *Table) error {
	opts, err := s.Options()
	if err != nil {
		return err
	}
	t.With(opts...)
	return nil
}

// Describe summarizes the active settings for status lines.
func (s Settings) Describe() string {
	trunc, wrap, inc := "off", "off", "off"
	if s.Truncate > 0 {
		trunc = fmt.Sprintf("%d%s", s.Truncate, s.Suffix)
	}
	if s.Wrap > 0 {
		wrap = fmt.Sprint(s.Wrap)
	}
	if s.Increase > 0 {
		inc = width.Percent(s.Increase).String()
	}
	mode := "ansi"
	if _, ok := measurer(s.Measurer).(width.Plain); ok {
		mode = "plain"
	}
	return fmt.Sprintf("truncate %s | wrap %s | widen %s | %s | %s | %s", trunc, wrap, inc, s.Target, s.Style.Name, mode)
}
