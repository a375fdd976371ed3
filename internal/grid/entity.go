package grid

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidEntity is returned when an address expression cannot be parsed.
var ErrInvalidEntity = errors.New("invalid cell address")

type entityKind int

const (
	kindAll entityKind = iota
	kindRow
	kindColumn
	kindCell
)

// Entity selects a set of cells: everything, a row, a column or one cell.
type Entity struct {
	kind entityKind
	row  int
	col  int
}

// Pos is a concrete cell position.
type Pos struct {
	Row int
	Col int
}

// All selects every cell.
func All() Entity { return Entity{kind: kindAll} }

// Row selects every cell of row r.
func Row(r int) Entity { return Entity{kind: kindRow, row: r} }

// Column selects every cell of column c.
func Column(c int) Entity { return Entity{kind: kindColumn, col: c} }

// Cell selects the single cell at (r, c).
func Cell(r, c int) Entity { return Entity{kind: kindCell, row: r, col: c} }

// Positions resolves e against a grid of the given size in row-major order.
// Addresses outside the grid resolve to nothing.
func (e Entity) Positions(rows, cols int) []Pos {
	inRows := func(r int) bool { return r >= 0 && r < rows }
	inCols := func(c int) bool { return c >= 0 && c < cols }

	var out []Pos
	switch e.kind {
	case kindAll:
		out = make([]Pos, 0, rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				out = append(out, Pos{Row: r, Col: c})
			}
		}
	case kindRow:
		if !inRows(e.row) {
			return nil
		}
		for c := 0; c < cols; c++ {
			out = append(out, Pos{Row: e.row, Col: c})
		}
	case kindColumn:
		if !inCols(e.col) {
			return nil
		}
		for r := 0; r < rows; r++ {
			out = append(out, Pos{Row: r, Col: e.col})
		}
	case kindCell:
		if inRows(e.row) && inCols(e.col) {
			out = append(out, Pos{Row: e.row, Col: e.col})
		}
	}
	return out
}

func (e Entity) String() string {
	switch e.kind {
	case kindRow:
		return fmt.Sprintf("row:%d", e.row)
	case kindColumn:
		return fmt.Sprintf("col:%d", e.col)
	case kindCell:
		return fmt.Sprintf("cell:%d,%d", e.row, e.col)
	default:
		return "all"
	}
}

// ParseEntity parses the forms produced by Entity.String: "all", "row:N",
// "col:N" (or "column:N") and "cell:R,C".
func ParseEntity(s string) (Entity, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == "all" {
		return All(), nil
	}

	kind, arg, ok := strings.Cut(s, ":")
	if !ok {
		return Entity{}, fmt.Errorf("%q: %w", s, ErrInvalidEntity)
	}

	switch kind {
	case "row", "col", "column":
		n, err := parseIndex(arg)
		if err != nil {
			return Entity{}, fmt.Errorf("%q: %w", s, err)
		}
		if kind == "row" {
			return Row(n), nil
		}
		return Column(n), nil
	case "cell":
		rs, cs, ok := strings.Cut(arg, ",")
		if !ok {
			return Entity{}, fmt.Errorf("%q: %w", s, ErrInvalidEntity)
		}
		r, err := parseIndex(rs)
		if err != nil {
			return Entity{}, fmt.Errorf("%q: %w", s, err)
		}
		c, err := parseIndex(cs)
		if err != nil {
			return Entity{}, fmt.Errorf("%q: %w", s, err)
		}
		return Cell(r, c), nil
	}
	return Entity{}, fmt.Errorf("%q: %w", s, ErrInvalidEntity)
}

func parseIndex(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0, ErrInvalidEntity
	}
	return n, nil
}
