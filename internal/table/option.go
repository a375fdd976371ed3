package table

import (
	"cli-table/internal/grid"
	"cli-table/internal/log"
)

// Cells is the accessor a CellOption works through.
type Cells interface {
	CellContent(row, col int) string
	SetCellContent(row, col int, content string)
}

// CellOption rewrites the content of a single cell. Implementations read
// only (row, col) and write it at most once, and only when it changes.
type CellOption interface {
	ChangeCell(c Cells, row, col int)
}

// TableOption changes a whole table.
type TableOption interface {
	ChangeTable(t *Table)
}

// TableOptionFunc adapts a function to TableOption.
type TableOptionFunc func(t *Table)

// ChangeTable calls f(t).
func (f TableOptionFunc) ChangeTable(t *Table) { f(t) }

// Modifier applies cell options to the cells an entity selects.
type Modifier struct {
	entity grid.Entity
	opts   []CellOption
}

// Modify starts a modifier for the cells selected by e.
func Modify(e grid.Entity) Modifier {
	return Modifier{entity: e}
}

// With appends cell options. The receiver is left untouched.
func (m Modifier) With(opts ...CellOption) Modifier {
	m.opts = append(append([]CellOption(nil), m.opts...), opts...)
	return m
}

// ChangeTable visits every selected cell once per option, in option order.
func (m Modifier) ChangeTable(t *Table) {
	rows, cols := t.grid.Count()
	positions := m.entity.Positions(rows, cols)
	cells := &countingCells{Cells: t.grid}
	for _, opt := range m.opts {
		for _, p := range positions {
			opt.ChangeCell(cells, p.Row, p.Col)
		}
	}
	log.Debug("modify %s: %d options, %d cells, %d rewrites", m.entity, len(m.opts), len(positions), cells.writes)
}

type countingCells struct {
	Cells
	writes int
}

func (c *countingCells) SetCellContent(row, col int, content string) {
	c.writes++
	c.Cells.SetCellContent(row, col, content)
}
