package tui

import (
	"fmt"
	"strconv"

	table "github.com/charmbracelet/bubbles/table"

	"linegeom/internal/report"
)

// refreshTable rebuilds the line table from the current result.
func (m *Model) refreshTable() {
	cols, rows := m.buildTable()
	tcols := make([]table.Column, 0, len(cols))
	for i, c := range cols {
		w := 9
		switch i {
		case 0:
			w = 4
		case len(cols) - 1:
			w = 16
		}
		tcols = append(tcols, table.Column{Title: c, Width: w})
	}
	trows := make([]table.Row, 0, len(rows))
	for _, r := range rows {
		trows = append(trows, table.Row(r))
	}
	// Avoid transient mismatch: clear rows, set columns, then set rows
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(tcols)
	m.tbl.SetRows(trows)
	m.tbl.SetHeight(len(trows) + 1)
}

// buildTable returns one row per line: index, coefficients and slope.
func (m *Model) buildTable() ([]string, [][]string) {
	cols := []string{"#", "a", "b", "c", "slope"}
	f := func(v float64) string { return strconv.FormatFloat(v, 'g', 6, 64) }
	rows := make([][]string, 0, len(m.lines))
	for i, l := range m.lines {
		rows = append(rows, []string{fmt.Sprintf("%d", i+1), f(l.A()), f(l.B()), f(l.C()), report.SlopeText(l)})
	}
	return cols, rows
}
