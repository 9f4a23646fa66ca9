package tui

import (
	"fmt"

	list "github.com/charmbracelet/bubbles/list"

	"linegeom/internal/geom"
)

type menuItem struct {
	title, desc string
	act         action
}

func (i menuItem) Title() string       { return i.title }
func (i menuItem) Description() string { return i.desc }
func (i menuItem) FilterValue() string { return i.title }

func menuItems() []list.Item {
	return []list.Item{
		menuItem{"Compare Lines from File", "pick a set, then two of its lines", actionCompareFile},
		menuItem{"Show Shapes from File", "classify the quadrilateral of a set", actionShapeFile},
		menuItem{"Compare Custom Lines", "enter two lines as a b c", actionCompareCustom},
		menuItem{"Create and Analyze Custom Shape", "enter four lines as a b c", actionShapeCustom},
		menuItem{"Exit", "leave linegeom", actionExit},
	}
}

type setItem struct {
	idx int
	set geom.LineSet
}

func (i setItem) Title() string { return fmt.Sprintf("Line Set %d", i.idx+1) }
func (i setItem) Description() string {
	if len(i.set) == 0 {
		return ""
	}
	return fmt.Sprintf("%s, ... (%d lines)", i.set[0], len(i.set))
}
func (i setItem) FilterValue() string { return i.Title() }

type lineItem struct {
	idx  int
	line geom.Line
}

func (i lineItem) Title() string       { return fmt.Sprintf("Line %d: %s", i.idx+1, i.line) }
func (i lineItem) Description() string { return i.line.Slope().String() }
func (i lineItem) FilterValue() string { return i.Title() }

func setItems(sets []geom.LineSet) []list.Item {
	items := make([]list.Item, 0, len(sets))
	for i, s := range sets {
		items = append(items, setItem{idx: i, set: s})
	}
	return items
}

func lineItems(set geom.LineSet) []list.Item {
	items := make([]list.Item, 0, len(set))
	for i, l := range set {
		items = append(items, lineItem{idx: i, line: l})
	}
	return items
}
