package tui

import (
	"os"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"linegeom/internal/canvas"
	"linegeom/internal/geom"
)

type screen int

const (
	screenMenu screen = iota
	screenPickSet
	screenPickLines
	screenInput
	screenResult
)

type action int

const (
	actionCompareFile action = iota
	actionShapeFile
	actionCompareCustom
	actionShapeCustom
	actionExit
)

type Model struct {
	width  int
	height int

	showSidebar bool
	helpVisible bool

	status string

	// File explorer
	cwd     string
	files   list.Model
	selPath string

	// Data
	sets    []geom.LineSet
	loadErr error

	screen screen
	action action
	menu   list.Model
	picker list.Model
	setIdx int
	first  int // first chosen line when comparing, -1 when none

	// coefficient entry
	ta textarea.Model

	// result
	lines   []geom.Line
	rel     geom.Relationship
	quad    geom.Quadrilateral
	verdict string
	hires   bool

	// rendered once per result
	plot      *canvas.Canvas
	gridView  string
	hiresView string

	// mouse hover over the grid, in logical coordinates
	hovering       bool
	hoverX, hoverY float64

	// line table
	showTable bool
	tbl       table.Model

	canvasOpts []canvas.Option
}

func New(opts ...canvas.Option) Model {
	m := Model{
		helpVisible: true,
		status:      "linegeom ready",
		first:       -1,
		canvasOpts:  opts,
	}
	m.cwd, _ = os.Getwd()
	// file list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.files = list.New(nil, d, 0, 0)
	m.files.Title = "Files"
	m.files.SetShowHelp(false)
	m.files.SetShowStatusBar(false)
	m.files.SetFilteringEnabled(true)

	m.menu = newList("Main Menu", menuItems())
	m.picker = newList("", nil)

	// textarea setup
	m.ta = textarea.New()
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)

	m.tbl = table.New(table.WithFocused(false))
	m.tbl.SetHeight(6)
	m.refreshDir()
	return m
}

// NewWithPath preloads a line data file at launch.
func NewWithPath(path string, opts ...canvas.Option) Model {
	m := New(opts...)
	m.loadPath(path)
	return m
}

func (m Model) Init() tea.Cmd { return nil }

func newList(title string, items []list.Item) list.Model {
	d := list.NewDefaultDelegate()
	l := list.New(items, d, 40, 16)
	l.Title = title
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	return l
}
