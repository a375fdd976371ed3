package grid

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// cellPadding is the space kept on each side of a cell's content.
const cellPadding = 1

// String renders the grid. Cells spanning several lines grow their row.
func (g *Grid) String() string {
	rows, cols := g.Count()
	if rows == 0 || cols == 0 {
		return ""
	}

	widths := g.spread(g.columnWidths())
	var b strings.Builder

	if g.style.Top {
		b.WriteString(g.rule(widths, g.style.Border.TopLeft, g.style.Border.Top, g.style.Border.MiddleTop, g.style.Border.TopRight))
		b.WriteByte('\n')
	}
	for r := 0; r < rows; r++ {
		g.writeRow(&b, r, widths)
		if r == 0 && rows > 1 && g.style.Header {
			b.WriteString(g.rule(widths, g.style.Border.MiddleLeft, g.style.Border.Top, g.style.Border.Middle, g.style.Border.MiddleRight))
			b.WriteByte('\n')
		}
	}
	if g.style.Bottom {
		b.WriteString(g.rule(widths, g.style.Border.BottomLeft, g.style.Border.Bottom, g.style.Border.MiddleBottom, g.style.Border.BottomRight))
		b.WriteByte('\n')
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// TotalWidth returns the rendered width of the widest line.
func (g *Grid) TotalWidth() int {
	return lipgloss.Width(g.String())
}

// naturalWidth is the width the grid renders at before any spreading.
func (g *Grid) naturalWidth(widths []int) int {
	w := 0
	for _, cw := range widths {
		w += cw + 2*cellPadding
	}
	w += (len(widths) - 1) * lipgloss.Width(g.style.Border.Left)
	if g.style.Sides {
		w += lipgloss.Width(g.style.Border.Left) + lipgloss.Width(g.style.Border.Right)
	}
	return w
}

func (g *Grid) columnWidths() []int {
	widths := make([]int, g.cols)
	for _, row := range g.cells {
		for c, cell := range row {
			widths[c] = max(widths[c], lipgloss.Width(cell))
		}
	}
	return widths
}

// spread hands out the columns missing to reach the minimum width evenly,
// leftmost columns first.
func (g *Grid) spread(widths []int) []int {
	extra := g.minWidth - g.naturalWidth(widths)
	if extra <= 0 || len(widths) == 0 {
		return widths
	}
	each, rest := extra/len(widths), extra%len(widths)
	for i := range widths {
		widths[i] += each
		if i < rest {
			widths[i]++
		}
	}
	return widths
}

func (g *Grid) writeRow(b *strings.Builder, r int, widths []int) {
	lines := make([][]string, g.cols)
	height := 1
	for c, cell := range g.cells[r] {
		lines[c] = strings.Split(cell, "\n")
		height = max(height, len(lines[c]))
	}

	pad := strings.Repeat(" ", cellPadding)
	for i := 0; i < height; i++ {
		if g.style.Sides {
			b.WriteString(g.style.Border.Left)
		}
		for c := range widths {
			if c > 0 {
				b.WriteString(g.style.Border.Left)
			}
			line := ""
			if i < len(lines[c]) {
				line = lines[c][i]
			}
			b.WriteString(pad)
			b.WriteString(lipgloss.PlaceHorizontal(widths[c], g.align, line))
			b.WriteString(pad)
		}
		if g.style.Sides {
			b.WriteString(g.style.Border.Right)
		}
		b.WriteByte('\n')
	}
}

func (g *Grid) rule(widths []int, left, fill, join, right string) string {
	var b strings.Builder
	if g.style.Sides {
		b.WriteString(left)
	}
	for c, w := range widths {
		if c > 0 {
			b.WriteString(join)
		}
		b.WriteString(strings.Repeat(fill, w+2*cellPadding))
	}
	if g.style.Sides {
		b.WriteString(right)
	}
	return b.String()
}
