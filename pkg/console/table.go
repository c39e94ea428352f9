package console

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Table rendering styles
var (
	tableTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#50FA7B")).
			MarginBottom(1)

	tableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#BD93F9")).
				Background(lipgloss.Color("#44475A"))

	tableCellStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8F8F2"))

	tableTotalStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#50FA7B"))

	tableBorderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#6272A4"))

	tableRuleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#44475A"))
)

// TableConfig describes one table: column headers, data rows, and an
// optional title and total row. Rows shorter than the header list render
// their missing cells empty.
type TableConfig struct {
	Headers   []string
	Rows      [][]string
	Title     string
	ShowTotal bool
	TotalRow  []string
}

// RenderTable renders the table as aligned text columns separated by " | ".
// A config without headers renders as nothing.
func RenderTable(config TableConfig) string {
	if len(config.Headers) == 0 {
		return ""
	}

	widths := columnWidths(config)

	var out strings.Builder
	if config.Title != "" {
		out.WriteString(applyStyle(tableTitleStyle, config.Title))
		out.WriteString("\n")
	}

	writeTableRow(&out, config.Headers, widths, tableHeaderStyle)
	writeTableRule(&out, widths)
	for _, row := range config.Rows {
		writeTableRow(&out, row, widths, tableCellStyle)
	}
	if config.ShowTotal && len(config.TotalRow) > 0 {
		writeTableRule(&out, widths)
		writeTableRow(&out, config.TotalRow, widths, tableTotalStyle)
	}
	return out.String()
}

// columnWidths sizes every column to its widest cell, headers and the total
// row included.
func columnWidths(config TableConfig) []int {
	widths := make([]int, len(config.Headers))
	rows := append([][]string{config.Headers}, config.Rows...)
	if config.ShowTotal {
		rows = append(rows, config.TotalRow)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}
	return widths
}

func writeTableRow(out *strings.Builder, cells []string, widths []int, style lipgloss.Style) {
	for i, width := range widths {
		var cell string
		if i < len(cells) {
			cell = cells[i]
		}
		if i > 0 {
			out.WriteString(applyStyle(tableBorderStyle, " | "))
		}
		out.WriteString(applyStyle(style, fmt.Sprintf("%-*s", width, cell)))
	}
	out.WriteString("\n")
}

func writeTableRule(out *strings.Builder, widths []int) {
	for i, width := range widths {
		if i > 0 {
			out.WriteString(applyStyle(tableRuleStyle, " | "))
		}
		out.WriteString(applyStyle(tableRuleStyle, strings.Repeat("-", width)))
	}
	out.WriteString("\n")
}
