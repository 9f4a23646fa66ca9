package tui

import (
	"strings"

	"linegeom/internal/canvas"
	"linegeom/internal/geom"
	"linegeom/internal/report"
)

func (m Model) isShape() bool {
	return m.action == actionShapeFile || m.action == actionShapeCustom
}

// compare switches to the result screen for a pair of lines.
func (m *Model) compare(l1, l2 geom.Line) {
	m.lines = []geom.Line{l1, l2}
	m.rel = geom.ClassifyRelationship(l1, l2)
	m.quad = geom.Quadrilateral{}
	m.verdict = report.Relationship(m.rel)
	m.paint()
	m.screen = screenResult
	m.refreshTable()
	m.status = "lines are " + m.rel.Kind.String()
}

// analyze switches to the result screen for a four-line set.
func (m *Model) analyze(lines []geom.Line) {
	q, err := geom.ClassifyQuadrilateral(lines)
	if err != nil {
		m.status = "shape error: " + err.Error()
		return
	}
	m.lines = append([]geom.Line(nil), lines...)
	m.rel = geom.Relationship{}
	m.quad = q
	m.verdict = report.Shape(lines, q)
	m.paint()
	m.screen = screenResult
	m.refreshTable()
	m.status = "shape: " + q.Shape.String()
}

// draw puts the current result onto p.
func (m Model) draw(p canvas.Plotter) {
	if m.isShape() {
		canvas.DrawQuadrilateral(p, m.lines, m.quad)
		return
	}
	if len(m.lines) == 2 {
		canvas.DrawRelationship(p, m.lines[0], m.lines[1])
	}
}

// paint renders the current result once; View and hover read the cache.
func (m *Model) paint() {
	m.plot = canvas.New(m.canvasOpts...)
	m.draw(m.plot)
	b := canvas.NewBraille(m.canvasOpts...)
	m.draw(b)
	m.gridView = strings.TrimSuffix(m.plot.String(), "\n")
	m.hiresView = boxStyle.Render(b.String())
}

// renderGrid returns the bordered ASCII grid, or the braille view when
// hi-res is on.
func (m Model) renderGrid() string {
	if m.hires {
		return m.hiresView
	}
	return m.gridView
}

// cellToXY converts a screen cell inside the grid to logical coordinates.
func (m Model) cellToXY(sx, sy int) (float64, float64, bool) {
	if m.screen != screenResult || m.hires || m.plot == nil {
		return 0, 0, false
	}
	c := m.plot
	w, h := c.Size()
	col := sx - m.gridOriginX()
	row := sy - gridOriginY
	if col < 0 || col >= w || row < 0 || row >= h {
		return 0, 0, false
	}
	x, y := c.FromScreen(col, row)
	return x, y, true
}

// The grid sits under the header, inside a one-cell border.
const gridOriginY = headerHeight + 1

func (m Model) gridOriginX() int {
	if m.showSidebar {
		return sidebarWidth + 1 + 1
	}
	return 1
}
