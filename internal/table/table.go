// Package table builds grids from records and applies options to them.
package table

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"cli-table/internal/grid"
)

// Table is a grid under construction. Options passed to With are applied
// immediately and in order, so each sees the effects of the previous ones.
type Table struct {
	grid *grid.Grid
}

// New builds a table whose first record is the header row.
func New(records [][]string) *Table {
	return &Table{grid: grid.FromRecords(records)}
}

// FromColumns builds a table from a header and data rows.
func FromColumns(header []string, rows [][]string) *Table {
	records := make([][]string, 0, len(rows)+1)
	records = append(records, header)
	records = append(records, rows...)
	return New(records)
}

// ReadCSV builds a table from comma-separated input. Records may have
// differing field counts.
func ReadCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	return New(records), nil
}

// With applies opts in order and returns t.
func (t *Table) With(opts ...TableOption) *Table {
	for _, opt := range opts {
		opt.ChangeTable(t)
	}
	return t
}

// Grid exposes the underlying grid.
func (t *Table) Grid() *grid.Grid { return t.grid }

// Shape returns the number of rows and columns, header included.
func (t *Table) Shape() (rows, cols int) { return t.grid.Count() }

// Width returns the current rendered width.
func (t *Table) Width() int { return t.grid.TotalWidth() }

// String renders the table.
func (t *Table) String() string { return t.grid.String() }

// Style sets the frame style.
func Style(s grid.Style) TableOption {
	return TableOptionFunc(func(t *Table) { t.grid.SetStyle(s) })
}

// Align sets the horizontal alignment of every cell.
func Align(p lipgloss.Position) TableOption {
	return TableOptionFunc(func(t *Table) { t.grid.SetAlignment(p) })
}
