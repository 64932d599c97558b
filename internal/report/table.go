// Package report renders plain-text output for the CLI.
package report

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const columnGap = "  "

// column is one table column. Numeric columns are right-aligned.
type column struct {
	title   string
	numeric bool
}

// formatTable lays out rows under cols. Cells beyond len(cols) are dropped and
// missing cells render empty. Widths are measured in terminal cells.
func formatTable(cols []column, rows [][]string) []string {
	if len(cols) == 0 {
		return nil
	}
	widths := make([]int, len(cols))
	for i, col := range cols {
		widths[i] = runewidth.StringWidth(col.title)
	}
	for _, row := range rows {
		for i := range cols {
			widths[i] = max(widths[i], runewidth.StringWidth(cellAt(row, i)))
		}
	}

	titles := make([]string, len(cols))
	for i, col := range cols {
		titles[i] = col.title
	}
	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, joinCells(cols, widths, titles))
	for _, row := range rows {
		lines = append(lines, joinCells(cols, widths, row))
	}
	return lines
}

func cellAt(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

func joinCells(cols []column, widths []int, row []string) string {
	cells := make([]string, len(cols))
	for i, col := range cols {
		cell := cellAt(row, i)
		pad := strings.Repeat(" ", max(widths[i]-runewidth.StringWidth(cell), 0))
		if col.numeric {
			cells[i] = pad + cell
		} else {
			cells[i] = cell + pad
		}
	}
	return strings.TrimRight(strings.Join(cells, columnGap), " ")
}
