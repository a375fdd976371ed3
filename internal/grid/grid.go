// Package grid stores table cells and renders them as framed text.
package grid

import (
	"github.com/charmbracelet/lipgloss"
)

// Grid is a row-major store of cell contents plus the settings used to
// render them. Row 0 is the header row.
type Grid struct {
	cells    [][]string
	cols     int
	style    Style
	align    lipgloss.Position
	minWidth int
}

// New returns an empty rows x cols grid.
func New(rows, cols int) *Grid {
	cells := make([][]string, rows)
	for i := range cells {
		cells[i] = make([]string, cols)
	}
	return &Grid{cells: cells, cols: cols, style: Markdown, align: lipgloss.Left}
}

// FromRecords copies records into a grid. Short rows are padded with empty
// cells so that every row has as many columns as the longest one.
func FromRecords(records [][]string) *Grid {
	cols := 0
	for _, rec := range records {
		cols = max(cols, len(rec))
	}
	g := New(len(records), cols)
	for r, rec := range records {
		copy(g.cells[r], rec)
	}
	return g
}

// Count returns the number of rows and columns.
func (g *Grid) Count() (rows, cols int) {
	return len(g.cells), g.cols
}

// CellContent returns the content at (row, col), or "" outside the grid.
func (g *Grid) CellContent(row, col int) string {
	if !g.inBounds(row, col) {
		return ""
	}
	return g.cells[row][col]
}

// SetCellContent overwrites the content at (row, col). Writes outside the
// grid are ignored.
func (g *Grid) SetCellContent(row, col int, content string) {
	if !g.inBounds(row, col) {
		return
	}
	g.cells[row][col] = content
}

// Records returns a copy of all cell contents.
func (g *Grid) Records() [][]string {
	out := make([][]string, len(g.cells))
	for i, row := range g.cells {
		out[i] = append([]string(nil), row...)
	}
	return out
}

// SetStyle sets the frame style.
func (g *Grid) SetStyle(s Style) { g.style = s }

// Style returns the frame style.
func (g *Grid) Style() Style { return g.style }

// SetAlignment sets the horizontal alignment of every cell.
func (g *Grid) SetAlignment(p lipgloss.Position) { g.align = p }

// SetMinWidth asks the renderer to spread columns until the table is at
// least w columns wide. It never shrinks the table.
func (g *Grid) SetMinWidth(w int) { g.minWidth = max(w, 0) }

// MinWidth returns the requested minimum total width.
func (g *Grid) MinWidth() int { return g.minWidth }

func (g *Grid) inBounds(row, col int) bool {
	return row >= 0 && row < len(g.cells) && col >= 0 && col < g.cols
}
