package tui

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	list "github.com/charmbracelet/bubbles/list"

	"linegeom/internal/geom"
)

type fileItem struct {
	title, desc string
	path        string
}

func (f fileItem) Title() string       { return f.title }
func (f fileItem) Description() string { return f.desc }
func (f fileItem) FilterValue() string { return f.title }

// dataExts are the extensions the sidebar offers.
var dataExts = map[string]bool{".txt": true, ".dat": true, ".csv": true}

func (m *Model) refreshDir() {
	entries, err := os.ReadDir(m.cwd)
	if err != nil {
		m.status = "read dir error: " + err.Error()
		return
	}
	var items []list.Item
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if dataExts[ext] {
			items = append(items, fileItem{title: name, desc: ext, path: filepath.Join(m.cwd, name)})
		}
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].(fileItem).Title() < items[j].(fileItem).Title() })
	m.files.SetItems(items)
	if len(items) == 0 {
		m.status = "no line data files in current directory"
	}
}

// loadPath replaces the loaded line sets. A failed load keeps nothing, the
// way a truncated data file is fatal for that source.
func (m *Model) loadPath(p string) {
	m.selPath = p
	sets, err := geom.LoadLineSets(p)
	if err != nil {
		m.sets, m.loadErr = nil, err
		m.status = "load error: " + err.Error()
		log.Printf("load %s: %v", p, err)
		return
	}
	m.sets, m.loadErr = sets, nil
	m.status = "loaded: " + filepath.Base(p) + fmt.Sprintf("  sets=%d", len(sets))
	log.Printf("loaded %s: %d sets", p, len(sets))
}
