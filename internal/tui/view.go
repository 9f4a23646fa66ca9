package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	sidebarWidth = 28
	headerHeight = 1
	footerHeight = 2
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	contentWidth := max(10, m.width)
	contentHeight := max(4, m.height-headerHeight-footerHeight)

	header := titleStyle.Render(" linegeom ─ lines & quadrilaterals ")
	header = lipgloss.NewStyle().Width(contentWidth).Render(header)

	content := m.renderScreen()
	var body string
	if m.showSidebar {
		sidebar := lipgloss.NewStyle().Width(sidebarWidth).Render(m.files.View())
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", content)
	} else {
		body = content
	}
	body = lipgloss.NewStyle().MaxWidth(contentWidth).Height(contentHeight).MaxHeight(contentHeight).Render(body)

	status := dimStyle.Render(" " + m.status + " ")
	if strings.Contains(m.status, "error") {
		status = errStyle.Render(" " + m.status + " ")
	}
	coords := ""
	if m.hovering {
		coords = dimStyle.Render(fmt.Sprintf("  x=%.3f y=%.3f  ", m.hoverX, m.hoverY))
	}
	left := lipgloss.JoinHorizontal(lipgloss.Bottom, status, coords)
	footer := lipgloss.JoinVertical(lipgloss.Left, left, m.renderHelp())
	footer = lipgloss.NewStyle().Width(contentWidth).Render(footer)

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(contentWidth).Height(m.height).Render(ui)
}

// renderScreen draws the area right of the sidebar.
func (m Model) renderScreen() string {
	switch m.screen {
	case screenPickSet, screenPickLines:
		return m.picker.View()
	case screenInput:
		title := "Compare Custom Lines"
		if m.isShape() {
			title = "Create and Analyze Custom Shape"
		}
		hint := dimStyle.Render(fmt.Sprintf("%d lines, one per row as a b c  (enter submits, esc cancels)", m.wantLines()))
		return lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render(title), hint, "", m.ta.View())
	case screenResult:
		return m.renderResult()
	default:
		return m.menu.View()
	}
}

func (m Model) renderResult() string {
	grid := m.renderGrid()
	var side []string
	side = append(side, reportStyle.Render(m.verdict))
	if m.showTable {
		side = append(side, boxStyle.Render(m.tbl.View()))
	}
	right := lipgloss.JoinVertical(lipgloss.Left, side...)
	return lipgloss.JoinHorizontal(lipgloss.Top, grid, " ", right)
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	var keys []string
	switch {
	case m.showSidebar:
		keys = []string{"↑↓ move", "/ filter", "Enter load", "Tab close"}
	case m.screen == screenInput:
		keys = []string{"Enter next/submit", "Esc cancel"}
	case m.screen == screenResult:
		keys = []string{"b hi-res", "t table", "Enter again", "Esc menu", "Tab files", "h help", "q quit"}
	case m.screen == screenMenu:
		keys = []string{"↑↓ move", "Enter select", "Tab files", "h help", "q quit"}
	default:
		keys = []string{"↑↓ move", "Enter select", "Esc back", "h help", "q quit"}
	}
	return dimStyle.Render("  " + strings.Join(keys, "  "))
}
