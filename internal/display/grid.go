package display

import (
	"strings"

	"github.com/harrison/arbor/internal/colorscale"
	"github.com/harrison/arbor/internal/config"
	"github.com/harrison/arbor/internal/listing"
	"github.com/harrison/arbor/internal/models"
)

// Gutter is the minimum space between grid columns
const Gutter = 2

// GridRenderer packs entries into as many equal-width columns as fit the terminal
type GridRenderer struct {
	cfg     *config.DisplayConfig
	palette *Palette
}

// GridLayout returns the column and row count for n cells whose widest
// plain text is maxWidth, on a line of width columns.
// Cell width is maxWidth+Gutter; at least one column is always used.
func GridLayout(n, maxWidth, width int) (cols, rows int) {
	if n == 0 {
		return 0, 0
	}

	cols = width / (maxWidth + Gutter)
	if cols < 1 {
		cols = 1
	}
	rows = (n + cols - 1) / cols
	return cols, rows
}

// Render emits the grid. Entries fill columns top to bottom unless
// Across is set, in which case they fill rows left to right.
// Every cell except the last in its row is padded to the cell width.
func (r *GridRenderer) Render(roots []*models.Entry, scale *colorscale.Context, sum *Summary) []string {
	visible := listing.Visible(roots, r.cfg)
	if len(visible) == 0 {
		return nil
	}

	deco := NewDecorator(r.cfg, r.palette, scale)

	cells := make([]Cell, len(visible))
	maxWidth := 0
	for i, e := range visible {
		sum.Add(e)
		cells[i] = deco.Entry(e)
		maxWidth = max(maxWidth, cells[i].Width)
	}

	cols, rows := GridLayout(len(cells), maxWidth, r.cfg.Width)
	cellWidth := maxWidth + Gutter

	lines := make([]string, 0, rows)
	for row := 0; row < rows; row++ {
		var rowCells []Cell
		for col := 0; col < cols; col++ {
			idx := col*rows + row
			if r.cfg.Across {
				idx = row*cols + col
			}
			if idx < len(cells) {
				rowCells = append(rowCells, cells[idx])
			}
		}

		var b strings.Builder
		for i, c := range rowCells {
			b.WriteString(c.Text)
			if i < len(rowCells)-1 {
				b.WriteString(pad(cellWidth - c.Width))
			}
		}
		lines = append(lines, b.String())
	}

	return lines
}
