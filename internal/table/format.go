package table

// Format rewrites cell content with an arbitrary function, e.g. to color it.
type Format func(content string) string

// ChangeCell applies f to the content at (row, col).
func (f Format) ChangeCell(c Cells, row, col int) {
	content := c.CellContent(row, col)
	if out := f(content); out != content {
		c.SetCellContent(row, col, out)
	}
}
