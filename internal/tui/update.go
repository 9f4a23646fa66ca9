package tui

import (
	"fmt"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"linegeom/internal/geom"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil
	case tea.MouseMsg:
		if x, y, ok := m.cellToXY(msg.X, msg.Y); ok {
			m.hovering = true
			m.hoverX, m.hoverY = x, y
		} else {
			m.hovering = false
		}
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		// The sidebar owns the keyboard while it is open.
		if m.showSidebar {
			return m.updateSidebar(msg)
		}
		if m.screen == screenInput {
			return m.updateInput(msg)
		}
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "tab":
			m.showSidebar = true
			m.refreshDir()
			m.resize()
			return m, nil
		case "h":
			m.helpVisible = !m.helpVisible
			return m, nil
		}
		switch m.screen {
		case screenMenu:
			return m.updateMenu(msg)
		case screenPickSet:
			return m.updatePickSet(msg)
		case screenPickLines:
			return m.updatePickLines(msg)
		case screenResult:
			return m.updateResult(msg)
		}
	}
	return m, nil
}

func (m Model) updateSidebar(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.files.FilterState() != list.Filtering {
		switch msg.String() {
		case "tab", "esc":
			m.showSidebar = false
			return m, nil
		case "enter":
			if it, ok := m.files.SelectedItem().(fileItem); ok {
				m.showSidebar = false
				m.toMenu()
				m.loadPath(it.path)
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.files, cmd = m.files.Update(msg)
	return m, cmd
}

func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() != "enter" {
		var cmd tea.Cmd
		m.menu, cmd = m.menu.Update(msg)
		return m, cmd
	}
	it, ok := m.menu.SelectedItem().(menuItem)
	if !ok {
		return m, nil
	}
	m.action = it.act
	switch it.act {
	case actionExit:
		return m, tea.Quit
	case actionCompareFile, actionShapeFile:
		if len(m.sets) == 0 {
			if m.loadErr != nil {
				m.status = "load error: " + m.loadErr.Error()
			} else {
				m.status = "no line sets loaded (tab opens the file list)"
			}
			return m, nil
		}
		m.picker = newList("Select a Line Set", setItems(m.sets))
		m.resize()
		m.screen = screenPickSet
		m.status = fmt.Sprintf("%d line sets", len(m.sets))
	case actionCompareCustom, actionShapeCustom:
		m.ta.SetValue("")
		m.ta.Placeholder = fmt.Sprintf("%d lines, one per row: a b c", m.wantLines())
		m.ta.Focus()
		m.screen = screenInput
		m.status = fmt.Sprintf("enter %d lines as a b c", m.wantLines())
	}
	return m, nil
}

func (m Model) updatePickSet(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.toMenu()
		return m, nil
	case "enter":
		it, ok := m.picker.SelectedItem().(setItem)
		if !ok {
			return m, nil
		}
		m.setIdx = it.idx
		if m.isShape() {
			m.analyze(it.set)
			return m, nil
		}
		m.first = -1
		m.picker = newList(fmt.Sprintf("Line Set %d: choose the first line", it.idx+1), lineItems(it.set))
		m.resize()
		m.screen = screenPickLines
		m.status = "choose the first line"
		return m, nil
	}
	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	return m, cmd
}

func (m Model) updatePickLines(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.first = -1
		m.picker = newList("Select a Line Set", setItems(m.sets))
		m.picker.Select(m.setIdx)
		m.resize()
		m.screen = screenPickSet
		return m, nil
	case "enter":
		it, ok := m.picker.SelectedItem().(lineItem)
		if !ok {
			return m, nil
		}
		if m.first < 0 {
			m.first = it.idx
			m.picker.Title = fmt.Sprintf("Line Set %d: choose the second line", m.setIdx+1)
			m.status = fmt.Sprintf("first line: %d", it.idx+1)
			return m, nil
		}
		if it.idx == m.first {
			m.status = "choose two different lines"
			return m, nil
		}
		set := m.sets[m.setIdx]
		m.compare(set[m.first], set[it.idx])
		m.first = -1
		return m, nil
	}
	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	return m, cmd
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.ta.Blur()
		m.toMenu()
		return m, nil
	case "enter":
		lines, err := geom.ParseLines(m.ta.Value())
		if err != nil {
			m.status = "input error: " + err.Error()
			return m, nil
		}
		want := m.wantLines()
		switch {
		case len(lines) < want:
			// Still typing: let the textarea take the newline.
		case len(lines) > want:
			m.status = fmt.Sprintf("input error: got %d lines, want %d", len(lines), want)
			return m, nil
		default:
			m.ta.Blur()
			if m.isShape() {
				m.analyze(lines)
			} else {
				m.compare(lines[0], lines[1])
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.ta, cmd = m.ta.Update(msg)
	return m, cmd
}

func (m Model) updateResult(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.toMenu()
	case "b":
		m.hires = !m.hires
		m.status = fmt.Sprintf("hi-res: %v", m.hires)
	case "t":
		m.showTable = !m.showTable
		m.status = fmt.Sprintf("table: %v", m.showTable)
	case "enter":
		// Run the same menu action again.
		switch m.action {
		case actionCompareFile:
			m.first = -1
			m.picker = newList(fmt.Sprintf("Line Set %d: choose the first line", m.setIdx+1), lineItems(m.sets[m.setIdx]))
			m.resize()
			m.screen = screenPickLines
		case actionShapeFile:
			m.picker = newList("Select a Line Set", setItems(m.sets))
			m.picker.Select(m.setIdx)
			m.resize()
			m.screen = screenPickSet
		default:
			m.ta.SetValue("")
			m.ta.Focus()
			m.screen = screenInput
		}
		m.hovering = false
	}
	return m, nil
}

func (m *Model) toMenu() {
	m.screen = screenMenu
	m.first = -1
	m.hovering = false
	m.status = "main menu"
}

// wantLines is how many lines a custom entry needs.
func (m Model) wantLines() int {
	if m.isShape() {
		return 4
	}
	return 2
}

// resize fits the lists to the terminal.
func (m *Model) resize() {
	if m.width == 0 || m.height == 0 {
		return
	}
	h := max(6, m.height-headerHeight-footerHeight)
	w := max(20, m.width)
	if m.showSidebar {
		m.files.SetSize(sidebarWidth-2, h-2)
		w = max(20, w-sidebarWidth-1)
	}
	m.menu.SetSize(min(w, 60), h)
	m.picker.SetSize(min(w, 80), h)
	m.ta.SetWidth(min(w-2, 60))
}
