package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fiziktedavi/fizyo/pkg/fizyo"
	"github.com/fiziktedavi/fizyo/pkg/fizyo/router"
)

// model renders the current route as a placeholder screen plus the bottom
// bar. Navigation state lives in the app's router; the model only keeps the
// cursor of the screen on top.
type model struct {
	app    *fizyo.App
	keys   keyMap
	help   help.Model
	styles styles

	width     int
	height    int
	entryKey  string // stack entry the cursor belongs to
	cursor    int
	status    string
	statusErr bool
}

func newModel(app *fizyo.App) model {
	m := model{
		app:    app,
		keys:   defaultKeyMap(),
		help:   help.New(),
		styles: newStyles(defaultTheme()),
	}
	m.syncCursor()
	return m
}

func (m model) router() *router.Router {
	return m.app.Router
}

// Init implements tea.Model.
func (m model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		m.status, m.statusErr = "", false

		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Up):
			m.moveCursor(-1)
		case key.Matches(msg, m.keys.Down):
			m.moveCursor(1)
		case key.Matches(msg, m.keys.Activate):
			m.activate()
		case key.Matches(msg, m.keys.Back):
			if !m.router().Back() {
				m.status = "already on the first screen"
			}
		case key.Matches(msg, m.keys.Tabs):
			m.selectTab(int(msg.String()[0] - '1'))
		}

		m.syncCursor()
		return m, nil
	}
	return m, nil
}

func (m *model) current() (router.Entry, screen) {
	entry, _ := m.router().Current()
	return entry, screenFor(entry)
}

func (m *model) moveCursor(delta int) {
	_, s := m.current()
	n := len(s.actions)
	if n == 0 {
		return
	}
	m.cursor = (m.cursor + delta + n) % n
	m.router().SetResume(&screenResume{Cursor: m.cursor})
}

func (m *model) activate() {
	entry, s := m.current()
	if m.cursor < 0 || m.cursor >= len(s.actions) {
		return
	}
	a := s.actions[m.cursor]
	fizyo.GetLogger().Debug("action", "route", entry.Path, "label", a.label)
	if err := a.run(m.router()); err != nil {
		m.status, m.statusErr = err.Error(), true
	}
}

func (m *model) selectTab(index int) {
	if !m.app.NavBar.Visible() {
		m.status = "tabs are hidden on this screen"
		return
	}
	if err := m.app.NavBar.Select(m.router(), index); err != nil {
		m.status, m.statusErr = err.Error(), true
	}
}

// syncCursor restores the cursor from the top entry's resume state whenever
// the top entry changes.
func (m *model) syncCursor() {
	entry, s := m.current()
	if entry.Key == m.entryKey {
		return
	}
	m.entryKey = entry.Key
	m.cursor = 0
	if resume, ok := entry.Resume.(*screenResume); ok && resume.Cursor < len(s.actions) {
		m.cursor = resume.Cursor
	}
}

// View implements tea.Model.
func (m model) View() string {
	entry, s := m.current()
	st := m.styles

	var b strings.Builder
	b.WriteString(st.Header.Render(fmt.Sprintf("fizyo · %s · depth %d", entry.Path, m.router().Depth())))
	b.WriteString("\n")

	content := []string{st.Title.Render(s.title)}
	for _, line := range s.body {
		content = append(content, st.Body.Render(line))
	}
	if len(s.actions) > 0 {
		content = append(content, "")
	}
	for i, a := range s.actions {
		if i == m.cursor {
			content = append(content, st.Selected.Render("› "+a.label))
		} else {
			content = append(content, st.Action.Render(a.label))
		}
	}
	box := st.Box
	if m.width > 4 {
		box = box.Width(m.width - 2)
	}
	b.WriteString(box.Render(lipgloss.JoinVertical(lipgloss.Left, content...)))
	b.WriteString("\n")

	if m.status != "" {
		if m.statusErr {
			b.WriteString(st.StatusErr.Render(m.status))
		} else {
			b.WriteString(st.Status.Render(m.status))
		}
		b.WriteString("\n")
	}

	if m.app.NavBar.Visible() {
		b.WriteString(m.renderBar())
		b.WriteString("\n")
	}

	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m model) renderBar() string {
	bar := m.app.NavBar
	active := bar.ActiveIndex()
	tabs := make([]string, 0, len(bar.Items()))
	for i, item := range bar.Items() {
		selected := i == active
		label := fmt.Sprintf("%s %d %s", item.Icon(selected), i+1, item.Caption())
		if selected {
			tabs = append(tabs, m.styles.TabActive.Render(label))
		} else {
			tabs = append(tabs, m.styles.Tab.Render(label))
		}
	}
	return m.styles.Bar.Render(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
}
