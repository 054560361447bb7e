// Package render draws warehouse projections as styled terminal output.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mesh-intelligence/stockyard/pkg/warehouse"
)

var (
	accent = lipgloss.Color("#D97706") // amber
	dim    = lipgloss.Color("#6B7280") // muted gray

	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
	dimStyle    = lipgloss.NewStyle().Foreground(dim)
)

// column headers for the snapshot table.
var headers = [4]string{"SECTION", "ITEM", "QTY", "EXPIRY"}

// Snapshot renders snapshot rows as an aligned table. Expiry values of
// "N/A" are dimmed so perishables stand out.
func Snapshot(rows []warehouse.Row) string {
	if len(rows) == 0 {
		return dimStyle.Render("inventory is empty") + "\n"
	}

	widths := [4]int{len(headers[0]), len(headers[1]), len(headers[2]), len(headers[3])}
	cells := make([][4]string, 0, len(rows))
	for _, row := range rows {
		cell := [4]string{row.Section, row.Item, fmt.Sprintf("%d", row.Quantity), row.Expiry}
		for i, v := range cell {
			if len(v) > widths[i] {
				widths[i] = len(v)
			}
		}
		cells = append(cells, cell)
	}

	var b strings.Builder
	for i, h := range headers {
		b.WriteString(headerStyle.Render(pad(h, widths[i])))
		if i < len(headers)-1 {
			b.WriteString("  ")
		}
	}
	b.WriteString("\n")

	for _, cell := range cells {
		for i, v := range cell {
			padded := pad(v, widths[i])
			if i == 3 && v == warehouse.NoExpiry {
				padded = dimStyle.Render(padded)
			}
			b.WriteString(padded)
			if i < len(cell)-1 {
				b.WriteString("  ")
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Names renders a plain list of names, one per line.
func Names(names []string) string {
	var b strings.Builder
	for _, name := range names {
		b.WriteString(name)
		b.WriteString("\n")
	}
	return b.String()
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
