// Package tui is an interactive terminal browser over the errors extracted
// from one Xcode build log.
package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// Status is the loading state of the browser.
type Status int

const (
	StatusLoading Status = iota
	StatusReady
	StatusFailed
)

// LoadFunc produces the log to browse. It runs off the UI goroutine.
type LoadFunc func() (logPath string, errs []string, err error)

// LoadedMsg carries the result of a LoadFunc.
type LoadedMsg struct {
	LogPath string
	Errors  []string
	Err     error
}

// MainModel is the Bubble Tea model of the browser: a diagnostics list on
// the left and the selected diagnostic on the right.
type MainModel struct {
	load   LoadFunc
	status Status
	err    error

	items          []Item
	listView       View
	detailViewport viewport.Model
	header         Header
	progress       ProgressModel
	keys           keyMap
	styles         *StyleConfig

	width         int
	height        int
	ready         bool
	detailFocused bool
	searchMode    bool
	searchQuery   string
}

// NewMainModel creates a browser that loads its content with load.
func NewMainModel(load LoadFunc) MainModel {
	styles := DefaultStyles()
	return MainModel{
		load:           load,
		status:         StatusLoading,
		listView:       NewView(styles),
		detailViewport: viewport.New(0, 0),
		header:         NewHeaderWithStyles("", 0, nil, styles),
		progress:       NewProgressModel("Extracting errors"),
		keys:           defaultKeyMap(),
		styles:         styles,
	}
}

// Init starts loading and the spinner.
func (m MainModel) Init() tea.Cmd {
	load := m.load
	return tea.Batch(SpinnerTick(), func() tea.Msg {
		path, errs, err := load()
		return LoadedMsg{LogPath: path, Errors: errs, Err: err}
	})
}

// Update handles messages and updates the model state.
func (m MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.resizeComponents()
		return m, nil

	case LoadedMsg:
		m.progress = m.progress.Done()
		if msg.Err != nil {
			m.status = StatusFailed
			m.err = msg.Err
			return m, nil
		}
		m.status = StatusReady
		m.items = NewItems(msg.Errors)
		m.header = NewHeaderWithStyles(msg.LogPath, len(m.items), distinctFiles(m.items), m.styles)
		m.resizeComponents()
		m.applyFilter()
		return m, nil

	case SpinnerTickMsg:
		var cmd tea.Cmd
		m.progress, cmd = m.progress.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.searchMode {
			return m.updateSearch(msg), nil
		}
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m MainModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}
	if m.status != StatusReady {
		return m, nil
	}

	if m.detailFocused {
		if key.Matches(msg, m.keys.Back) {
			m.detailFocused = false
			return m, nil
		}
		var cmd tea.Cmd
		m.detailViewport, cmd = m.detailViewport.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Open):
		if m.listView.Len() > 0 {
			m.detailFocused = true
		}
		return m, nil
	case key.Matches(msg, m.keys.Search):
		m.searchMode = true
		m.header.SetSearch(m.searchQuery, true)
		return m, nil
	case key.Matches(msg, m.keys.Filter):
		m.header.CycleFilter()
		m.applyFilter()
		return m, nil
	case key.Matches(msg, m.keys.Back):
		if m.searchQuery != "" {
			m.searchQuery = ""
			m.header.SetSearch("", false)
			m.applyFilter()
		}
		return m, nil
	}

	before, _ := m.listView.SelectedItem()
	var cmd tea.Cmd
	m.listView, cmd = m.listView.Update(msg)
	if after, _ := m.listView.SelectedItem(); after.Rank != before.Rank {
		m.updateDetailContent()
	}
	return m, cmd
}

// updateSearch edits the query while search mode is on. Enter keeps the
// query, esc clears it.
func (m MainModel) updateSearch(msg tea.KeyMsg) MainModel {
	switch msg.Type {
	case tea.KeyEnter:
		m.searchMode = false
	case tea.KeyEsc:
		m.searchMode = false
		m.searchQuery = ""
	case tea.KeyBackspace:
		if r := []rune(m.searchQuery); len(r) > 0 {
			m.searchQuery = string(r[:len(r)-1])
		}
	case tea.KeyRunes, tea.KeySpace:
		m.searchQuery += string(msg.Runes)
	default:
		return m
	}
	m.header.SetSearch(m.searchQuery, m.searchMode)
	m.applyFilter()
	return m
}
