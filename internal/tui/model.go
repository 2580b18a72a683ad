package tui

import (
	"sort"
	"strings"

	"github.com/spf13/afero"

	"github.com/michaelscutari/fspath/internal/entry"
	"github.com/michaelscutari/fspath/internal/listing"
	"github.com/michaelscutari/fspath/internal/pathutil"

	tea "github.com/charmbracelet/bubbletea"
)

// SortColumn represents the current sort field.
type SortColumn int

const (
	SortByName SortColumn = iota
	SortBySize
	SortByTime
)

func (s SortColumn) String() string {
	switch s {
	case SortBySize:
		return "size"
	case SortByTime:
		return "time"
	default:
		return "name"
	}
}

// kindCycle is the order in which "t" steps through kind filters.
var kindCycle = []entry.Kind{0, entry.KindDir, entry.KindFile, entry.KindSymlink}

// Model holds the TUI state.
type Model struct {
	fs           afero.Fs
	docRoot      *pathutil.DocumentRoot
	currentPath  string
	opts         listing.Options
	allEntries   []entry.Entry
	entries      []entry.Entry
	cursor       int
	sort         SortColumn
	kindIdx      int
	width        int
	height       int
	filter       string
	filterActive bool
	err          error
}

// NewModel creates a browser for dir. docRoot may be nil, in which case no
// URL paths are shown.
func NewModel(fs afero.Fs, dir string, docRoot *pathutil.DocumentRoot) *Model {
	return &Model{
		fs:          fs,
		docRoot:     docRoot,
		currentPath: pathutil.Join(dir),
		sort:        SortByName,
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.loadEntries(m.currentPath)
}

type entriesLoadedMsg struct {
	path    string
	entries []entry.Entry
	err     error
}

func (m *Model) loadEntries(path string) tea.Cmd {
	opts := m.opts
	sortBy := m.sort
	return func() tea.Msg {
		l, err := listing.List(m.fs, pathutil.Seg(path), opts)
		if err != nil {
			return entriesLoadedMsg{path: path, err: err}
		}

		entries, err := l.Collect()
		if err != nil {
			return entriesLoadedMsg{path: path, err: err}
		}
		sortEntries(entries, sortBy)

		return entriesLoadedMsg{
			path:    l.Path(),
			entries: entries,
		}
	}
}

// sortEntries orders entries by column, keeping "." and ".." on top.
func sortEntries(entries []entry.Entry, by SortColumn) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.IsDot() != b.IsDot() {
			return a.IsDot()
		}
		switch by {
		case SortBySize:
			if a.Size != b.Size {
				return a.Size > b.Size
			}
		case SortByTime:
			if !a.ModTime.Equal(b.ModTime) {
				return a.ModTime.After(b.ModTime)
			}
		}
		return a.Name < b.Name
	})
}

// parentPath returns the directory above p.
func parentPath(p string) string {
	if p == "/" {
		return p
	}
	parent := pathutil.Join(p, "..")
	if parent != "/" {
		parent = strings.TrimSuffix(parent, "/")
	}
	return parent
}

// canEnter reports whether e can be browsed into.
func (m *Model) canEnter(e entry.Entry) bool {
	switch e.Kind {
	case entry.KindDir:
		return e.Name != "."
	case entry.KindSymlink:
		isDir, err := afero.IsDir(m.fs, e.Path)
		return err == nil && isDir
	}
	return false
}

// urlPath returns the URL path of e under the document root.
func (m *Model) urlPath(e entry.Entry) (string, bool) {
	if m.docRoot == nil {
		return "", false
	}
	return m.docRoot.URLPath(m.fs, pathutil.Seg(e.Path))
}

func (m *Model) helpLine() string {
	if m.filterActive {
		return "Type to filter | Enter: apply | Esc: clear | q: quit"
	}
	return "↑/↓ move | Enter: open | Backspace: up | n/s/m: sort | t: kind | .: dot entries | /: filter | q: quit"
}

func (m *Model) setEntries(entries []entry.Entry) {
	m.allEntries = entries
	m.applyFilter()
}

func (m *Model) applyFilter() {
	if m.filter == "" {
		m.entries = m.allEntries
	} else {
		filtered := make([]entry.Entry, 0, len(m.allEntries))
		needle := strings.ToLower(m.filter)
		for _, e := range m.allEntries {
			if strings.Contains(strings.ToLower(e.Name), needle) {
				filtered = append(filtered, e)
			}
		}
		m.entries = filtered
	}
	m.cursor = 0
}
