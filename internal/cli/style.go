// Package cli provides Cobra command definitions for promptvault.
package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/rodaine/table"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	titleStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
)

// newTable builds a table with the shared header formatting. When color
// is off the headers stay plain.
func newTable(color bool, columns ...interface{}) table.Table {
	tbl := table.New(columns...)
	if color {
		tbl = tbl.WithHeaderFormatter(func(format string, vals ...interface{}) string {
			return headerStyle.Render(fmt.Sprintf(format, vals...))
		})
	}
	return tbl
}

// truncate shortens s to at most n runes for table cells.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}
