package table

import (
	"cli-table/internal/grid"
	"cli-table/internal/width"
)

// Truncate limits cells to a visible width, appending a suffix to the cells
// it cuts. The zero suffix cuts silently.
type Truncate struct {
	width  int
	suffix string
	m      width.Measurer
}

// TruncateTo returns a Truncate limiting cells to w visible columns.
func TruncateTo(w int) Truncate {
	return Truncate{width: max(w, 0)}
}

// Suffix sets the text appended after a cut.
func (t Truncate) Suffix(s string) Truncate {
	t.suffix = s
	return t
}

// Measure overrides the measurer chosen at build time.
func (t Truncate) Measure(m width.Measurer) Truncate {
	t.m = m
	return t
}

// ChangeCell truncates the content at (row, col).
func (t Truncate) ChangeCell(c Cells, row, col int) {
	content := c.CellContent(row, col)
	if out := width.Truncate(measurer(t.m), content, t.width, t.suffix); out != content {
		c.SetCellContent(row, col, out)
	}
}

// ChangeTable truncates every cell.
func (t Truncate) ChangeTable(tb *Table) {
	Modify(grid.All()).With(t).ChangeTable(tb)
}

// Wrap hard-wraps cells into lines of a fixed visible width.
type Wrap struct {
	width int
	m     width.Measurer
}

// WrapTo returns a Wrap splitting cells every w visible columns. A zero
// width leaves cells alone.
func WrapTo(w int) Wrap {
	return Wrap{width: max(w, 0)}
}

// Measure overrides the measurer chosen at build time.
func (w Wrap) Measure(m width.Measurer) Wrap {
	w.m = m
	return w
}

// ChangeCell wraps the content at (row, col).
func (w Wrap) ChangeCell(c Cells, row, col int) {
	content := c.CellContent(row, col)
	if out := width.Wrap(measurer(w.m), content, w.width); out != content {
		c.SetCellContent(row, col, out)
	}
}

// ChangeTable wraps every cell.
func (w Wrap) ChangeTable(tb *Table) {
	Modify(grid.All()).With(w).ChangeTable(tb)
}

// Increase grows a table to a percentage of its current rendered width.
// The grid spreads the extra columns; cell contents are not touched.
type Increase struct {
	p width.Percent
}

// IncreaseBy validates p and returns the option.
func IncreaseBy(p int) (Increase, error) {
	pct, err := width.NewPercent(p)
	if err != nil {
		return Increase{}, err
	}
	return Increase{p: pct}, nil
}

// Target returns the width derived from ref.
func (i Increase) Target(ref int) int {
	return i.p.Of(ref)
}

// ChangeTable asks the grid for at least Target(current width) columns.
func (i Increase) ChangeTable(t *Table) {
	if target := i.Target(t.Width()); target > t.grid.MinWidth() {
		t.grid.SetMinWidth(target)
	}
}

func measurer(m width.Measurer) width.Measurer {
	if m == nil {
		return width.Default
	}
	return m
}
